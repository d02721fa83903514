package handler

import (
	"time"

	"github.com/project/incident-report/internal/core/domain"
)

type reportIncidentRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// incidentResponse is the transport view of an incident. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type incidentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toIncidentResponse(incident *domain.Incident) incidentResponse {
	return incidentResponse{
		ID:          incident.ID,
		Title:       incident.Title,
		Description: incident.Description,
		Status:      incident.Status,
		CreatedAt:   incident.CreatedAt,
	}
}
