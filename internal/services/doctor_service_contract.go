package services

import (
	"context"

	"github.com/google/uuid"

	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/domain/entities"
)

// DoctorServiceContract defines the validated-write operations over the
// doctors collection. Doctors have no duplicate check and no search; that
// asymmetry with patients is deliberate (see DESIGN.md).
type DoctorServiceContract interface {
	Add(ctx context.Context, form dtos.DoctorForm) (*entities.Doctor, error)
	List(ctx context.Context) ([]entities.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Doctor, error)
	Edit(ctx context.Context, id uuid.UUID, form dtos.DoctorForm) (*entities.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
