package services

import (
	"context"
	"sync/atomic"

	"hospital-records-service/internal/domain/entities"
	"hospital-records-service/internal/domain/repositories"
)

// Compile-time checks that the mocks implement the store contracts.
var (
	_ repositories.PatientStoreContract = (*MockPatientStore)(nil)
	_ repositories.DoctorStoreContract  = (*MockDoctorStore)(nil)
)

// MockPatientStore is a func-field mock of PatientStoreContract. Tests set
// only the behavior they care about; unset funcs behave like an empty store.
type MockPatientStore struct {
	LoadFunc    func(ctx context.Context) ([]entities.Patient, error)
	ReplaceFunc func(ctx context.Context, patients []entities.Patient) error

	LoadCallCount    int32
	ReplaceCallCount int32
}

func (m *MockPatientStore) Load(ctx context.Context) ([]entities.Patient, error) {
	atomic.AddInt32(&m.LoadCallCount, 1)
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return []entities.Patient{}, nil
}

func (m *MockPatientStore) Replace(ctx context.Context, patients []entities.Patient) error {
	atomic.AddInt32(&m.ReplaceCallCount, 1)
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, patients)
	}
	return nil
}

// MockDoctorStore is the doctor-side twin of MockPatientStore.
type MockDoctorStore struct {
	LoadFunc    func(ctx context.Context) ([]entities.Doctor, error)
	ReplaceFunc func(ctx context.Context, doctors []entities.Doctor) error

	LoadCallCount    int32
	ReplaceCallCount int32
}

func (m *MockDoctorStore) Load(ctx context.Context) ([]entities.Doctor, error) {
	atomic.AddInt32(&m.LoadCallCount, 1)
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return []entities.Doctor{}, nil
}

func (m *MockDoctorStore) Replace(ctx context.Context, doctors []entities.Doctor) error {
	atomic.AddInt32(&m.ReplaceCallCount, 1)
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, doctors)
	}
	return nil
}
