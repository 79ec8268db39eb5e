package repositories

import (
	"context"

	"hospital-records-service/internal/domain/entities"
)

// PatientStoreContract is the load/replace abstraction over the persisted
// patients collection. Load always returns the full collection in insertion
// order; Replace overwrites it wholesale. There are no partial updates.
type PatientStoreContract interface {
	Load(ctx context.Context) ([]entities.Patient, error)
	Replace(ctx context.Context, patients []entities.Patient) error
}
