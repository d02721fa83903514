package domain

import (
	"errors"
	"time"
)

// StatusReported is assigned to every incident at creation. Later values
// ("In Progress", "Resolved", ...) are free text overwritten by admins.
const StatusReported = "Reported"

var ErrIncidentNotFound = errors.New("incident not found")
var ErrForbidden = errors.New("access forbidden")

// Incident is a reported incident record. It is only ever mutated through
// status updates and is never deleted.
type Incident struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
