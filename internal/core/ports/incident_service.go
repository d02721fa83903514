package ports

import (
	"context"

	"github.com/project/incident-report/internal/core/domain"
)

// ReportIncidentInput carries the caller-supplied fields of a new incident.
// Id, status and creation time are assigned by the service.
type ReportIncidentInput struct {
	Title       string
	Description string
}

// IncidentService defines use-case operations for incidents.
type IncidentService interface {
	Report(ctx context.Context, input ReportIncidentInput) (*domain.Incident, error)
	List(ctx context.Context) ([]*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Incident, error)
}
