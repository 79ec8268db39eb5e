package repositories

import (
	"context"

	"hospital-records-service/internal/domain/entities"
)

// DoctorStoreContract is the load/replace abstraction over the persisted
// doctors collection, mirroring PatientStoreContract.
type DoctorStoreContract interface {
	Load(ctx context.Context) ([]entities.Doctor, error)
	Replace(ctx context.Context, doctors []entities.Doctor) error
}
