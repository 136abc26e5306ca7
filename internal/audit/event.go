package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActionAvailabilityRegistered = "availability_registered"
	ActionAvailabilityUpdated    = "availability_updated"
	ActionAvailabilityDeleted    = "availability_deleted"
	ActionSessionBooked          = "session_booked"
	ActionSessionConflict        = "session_conflict"
)

type Event struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	Action         string    `json:"action"`
	Day            string    `json:"day,omitempty"`
	Metadata       any       `json:"metadata,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Sink receives dispatched events. Sinks run on the dispatcher's worker
// goroutine, one event at a time.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}
