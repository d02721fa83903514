package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/project/incident-report/internal/api/metrics"
	"github.com/project/incident-report/internal/core/domain"
	"github.com/project/incident-report/internal/core/ports"
)

// IncidentHandler handles HTTP requests for incident operations.
type IncidentHandler struct {
	service ports.IncidentService
}

func NewIncidentHandler(service ports.IncidentService) *IncidentHandler {
	return &IncidentHandler{service: service}
}

// Report handles POST /api/incidents.
//
// @Summary      Report a new incident
// @Tags         incidents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reportIncidentRequest  true  "Incident details"
// @Success      200   {object}  incidentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/incidents [post]
func (h *IncidentHandler) Report(c echo.Context) error {
	var req reportIncidentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	incident, err := h.service.Report(c.Request().Context(), ports.ReportIncidentInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.IncidentsReportedTotal.Inc()
	return c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// List handles GET /api/incidents.
//
// @Summary      List all incidents
// @Tags         incidents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   incidentResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/incidents [get]
func (h *IncidentHandler) List(c echo.Context) error {
	incidents, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]incidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		resp = append(resp, toIncidentResponse(incident))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/incidents/:id.
//
// @Summary      Get an incident by id
// @Tags         incidents
// @Produce      json
// @Param        id   path      string  true  "Incident id (e.g. INC-7A8B9C2D)"
// @Success      200  {object}  incidentResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/incidents/{id} [get]
func (h *IncidentHandler) Get(c echo.Context) error {
	incident, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrIncidentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "incident not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// UpdateStatus handles PATCH /api/incidents/:id/status. The body is the raw
// status text; surrounding JSON quotes are stripped when a client sends it as
// a JSON string.
//
// @Summary      Update an incident's status
// @Tags         incidents
// @Accept       plain
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Incident id"
// @Param        body  body      string  true  "New status"
// @Success      200   {object}  incidentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/incidents/{id}/status [patch]
func (h *IncidentHandler) UpdateStatus(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	status := strings.Trim(strings.TrimSpace(string(body)), `"`)
	if status == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "status is required"})
	}

	incident, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, domain.ErrIncidentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "incident not found"})
		}
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(status).Inc()
	return c.JSON(http.StatusOK, toIncidentResponse(incident))
}
