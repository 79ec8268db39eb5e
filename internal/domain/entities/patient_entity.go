package entities

import (
	"github.com/google/uuid"
)

// Patient represents a patient record as persisted in the patients collection.
// The ID is assigned server-side at creation and never changes afterwards.
type Patient struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Age     int       `json:"age"`
	Phone   string    `json:"phone"`
	Address string    `json:"address,omitempty"`
}
