package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/project/incident-report/internal/core/domain"
	"github.com/project/incident-report/internal/core/ports"
)

// IncidentService is a thin pass-through over the repository: incidents carry
// no workflow rules beyond the server-assigned defaults at creation.
type IncidentService struct {
	repo   ports.IncidentRepository
	logger zerolog.Logger
}

func NewIncidentService(repo ports.IncidentRepository, logger zerolog.Logger) *IncidentService {
	return &IncidentService{repo: repo, logger: logger}
}

// Report persists a new incident with a generated id, status "Reported" and
// the current time.
func (s *IncidentService) Report(ctx context.Context, input ports.ReportIncidentInput) (*domain.Incident, error) {
	incident := &domain.Incident{
		ID:          generateIncidentID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusReported,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		s.logger.Error().Err(err).Msg("failed to create incident")
		return nil, err
	}

	s.logger.Info().Str("incident_id", incident.ID).Msg("incident reported")
	return incident, nil
}

func (s *IncidentService) List(ctx context.Context) ([]*domain.Incident, error) {
	return s.repo.FindAll(ctx)
}

func (s *IncidentService) Get(ctx context.Context, id string) (*domain.Incident, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus overwrites the status of an existing incident.
func (s *IncidentService) UpdateStatus(ctx context.Context, id, status string) (*domain.Incident, error) {
	incident, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("incident_id", id).Str("status", status).Msg("incident status updated")
	return incident, nil
}

// generateIncidentID returns a unique public identifier in the format INC-XXXXXXXX.
func generateIncidentID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("INC-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("INC-%08X", b)
}
