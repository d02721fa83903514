package ports

import (
	"context"

	"github.com/project/incident-report/internal/core/domain"
)

// IncidentRepository defines persistence operations for incidents.
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	FindAll(ctx context.Context) ([]*domain.Incident, error)
	FindByID(ctx context.Context, id string) (*domain.Incident, error)
	// UpdateStatus overwrites the status of the incident with the given id
	// and returns the updated record.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Incident, error)
}
