package services

import (
	"context"

	"github.com/google/uuid"

	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/domain/entities"
)

// PatientServiceContract defines the validated-write operations over the
// patients collection. Failures come back as the typed errors in the domain
// package: *domain.ValidationError and *domain.DuplicateError carry the
// rejected form for redisplay, domain.ErrNotFound reports a missing id, and
// *domain.StorageError reports a load or replace failure.
type PatientServiceContract interface {
	// Add creates a patient from a submitted form. The duplicate check on
	// normalized name+phone runs before format validation and wins over it.
	Add(ctx context.Context, form dtos.PatientForm) (*entities.Patient, error)
	// List returns the whole collection in insertion order.
	List(ctx context.Context) ([]entities.Patient, error)
	// Search filters the collection by a partial criteria map; an empty map
	// returns everything.
	Search(ctx context.Context, criteria map[string]string) ([]entities.Patient, error)
	// Get fetches one record by id, for edit-form display.
	Get(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	// Edit replaces the record's mutable fields in place. A form action of
	// "delete" removes the record instead, skipping validation.
	Edit(ctx context.Context, id uuid.UUID, form dtos.PatientForm) (*entities.Patient, error)
	// Delete removes one record by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
