package entities

import (
	"github.com/google/uuid"
)

// Doctor represents a doctor record as persisted in the doctors collection.
// AvailableDays keeps the submitted comma-separated weekday list and
// ConsultationFee keeps the submitted string; both are validated before any
// write, never reformatted.
type Doctor struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Specialization  string    `json:"specialization"`
	AvailableDays   string    `json:"availableDays"`
	AvailableTime   string    `json:"availableTime"`
	ConsultationFee string    `json:"consultationFee,omitempty"`
}
