package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/project/incident-report/internal/core/domain"
	"github.com/project/incident-report/internal/core/ports"
)

type stubIncidentService struct {
	reportFn       func(ctx context.Context, input ports.ReportIncidentInput) (*domain.Incident, error)
	listFn         func(ctx context.Context) ([]*domain.Incident, error)
	getFn          func(ctx context.Context, id string) (*domain.Incident, error)
	updateStatusFn func(ctx context.Context, id, status string) (*domain.Incident, error)
}

func (s *stubIncidentService) Report(ctx context.Context, input ports.ReportIncidentInput) (*domain.Incident, error) {
	return s.reportFn(ctx, input)
}

func (s *stubIncidentService) List(ctx context.Context) ([]*domain.Incident, error) {
	return s.listFn(ctx)
}

func (s *stubIncidentService) Get(ctx context.Context, id string) (*domain.Incident, error) {
	return s.getFn(ctx, id)
}

func (s *stubIncidentService) UpdateStatus(ctx context.Context, id, status string) (*domain.Incident, error) {
	return s.updateStatusFn(ctx, id, status)
}

func TestIncidentHandler_Report_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubIncidentService{
		reportFn: func(ctx context.Context, input ports.ReportIncidentInput) (*domain.Incident, error) {
			if input.Title != "Power outage" || input.Description != "Block without power" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Incident{
				ID:          "INC-00000001",
				Title:       input.Title,
				Description: input.Description,
				Status:      domain.StatusReported,
				CreatedAt:   now,
			}, nil
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/incidents",
		strings.NewReader(`{"title":"Power outage","description":"Block without power"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Report(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp incidentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "INC-00000001" || resp.Status != domain.StatusReported {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestIncidentHandler_Report_MissingTitle(t *testing.T) {
	stub := &stubIncidentService{
		reportFn: func(ctx context.Context, input ports.ReportIncidentInput) (*domain.Incident, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/incidents",
		strings.NewReader(`{"description":"no title"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Report(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIncidentHandler_List(t *testing.T) {
	stub := &stubIncidentService{
		listFn: func(ctx context.Context) ([]*domain.Incident, error) {
			return []*domain.Incident{
				{ID: "INC-00000001", Title: "a", Status: domain.StatusReported},
				{ID: "INC-00000002", Title: "b", Status: "Resolved"},
			}, nil
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/incidents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []incidentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 incidents, got %d", len(resp))
	}
}

func TestIncidentHandler_Get_NotFound(t *testing.T) {
	stub := &stubIncidentService{
		getFn: func(ctx context.Context, id string) (*domain.Incident, error) {
			return nil, domain.ErrIncidentNotFound
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("INC-MISSING0")

	_ = handler.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestIncidentHandler_UpdateStatus_StripsJSONQuotes(t *testing.T) {
	stub := &stubIncidentService{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Incident, error) {
			if status != "Resolved" {
				t.Fatalf("expected quotes to be stripped, got %q", status)
			}
			return &domain.Incident{ID: id, Status: status}, nil
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`"Resolved"`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("INC-00000001")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp incidentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "Resolved" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestIncidentHandler_UpdateStatus_EmptyBody(t *testing.T) {
	stub := &stubIncidentService{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Incident, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("INC-00000001")

	_ = handler.UpdateStatus(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIncidentHandler_UpdateStatus_NotFound(t *testing.T) {
	stub := &stubIncidentService{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Incident, error) {
			return nil, domain.ErrIncidentNotFound
		},
	}
	handler := NewIncidentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader("Resolved"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("INC-MISSING0")

	_ = handler.UpdateStatus(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
