package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hospital-records-service/internal/domain"
	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/domain/entities"
	"hospital-records-service/internal/domain/repositories"
	"hospital-records-service/internal/validation"
)

// DoctorServiceImpl implements DoctorServiceContract. Doctors get no
// duplicate check: two identical doctor records are accepted, unlike
// patients.
type DoctorServiceImpl struct {
	store  repositories.DoctorStoreContract
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewDoctorService creates a new instance of DoctorServiceImpl.
func NewDoctorService(store repositories.DoctorStoreContract, logger zerolog.Logger) DoctorServiceContract {
	return &DoctorServiceImpl{
		store:  store,
		logger: logger.With().Str("service", "doctors").Logger(),
	}
}

// Add creates a doctor record from a submitted form.
func (s *DoctorServiceImpl) Add(ctx context.Context, form dtos.DoctorForm) (*entities.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctors, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if msgs := validation.ValidateDoctor(form); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs, Attempted: form}
	}

	record := buildDoctor(uuid.New(), form)
	doctors = append(doctors, record)
	if err := s.store.Replace(ctx, doctors); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", record.ID.String()).Msg("doctor added")
	return &record, nil
}

// List returns the whole collection in insertion order.
func (s *DoctorServiceImpl) List(ctx context.Context) ([]entities.Doctor, error) {
	return s.store.Load(ctx)
}

// Get fetches one record by id.
func (s *DoctorServiceImpl) Get(ctx context.Context, id uuid.UUID) (*entities.Doctor, error) {
	doctors, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Edit validates the replacement fields and swaps them in at the record's
// existing position, preserving its id.
func (s *DoctorServiceImpl) Edit(ctx context.Context, id uuid.UUID, form dtos.DoctorForm) (*entities.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctors, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfDoctor(doctors, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	if msgs := validation.ValidateDoctor(form); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs, Attempted: form}
	}

	updated := buildDoctor(id, form)
	doctors[idx] = updated
	if err := s.store.Replace(ctx, doctors); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id.String()).Msg("doctor updated")
	return &updated, nil
}

// Delete removes the record with the given id. A missing id reports
// domain.ErrNotFound and leaves the persisted collection untouched.
func (s *DoctorServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctors, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOfDoctor(doctors, id)
	if idx < 0 {
		return domain.ErrNotFound
	}

	doctors = append(doctors[:idx], doctors[idx+1:]...)
	if err := s.store.Replace(ctx, doctors); err != nil {
		return err
	}

	s.logger.Info().Str("id", id.String()).Msg("doctor deleted")
	return nil
}

func indexOfDoctor(doctors []entities.Doctor, id uuid.UUID) int {
	for i := range doctors {
		if doctors[i].ID == id {
			return i
		}
	}
	return -1
}

func buildDoctor(id uuid.UUID, form dtos.DoctorForm) entities.Doctor {
	return entities.Doctor{
		ID:              id,
		Name:            form.Name,
		Specialization:  form.Specialization,
		AvailableDays:   form.AvailableDays,
		AvailableTime:   form.AvailableTime,
		ConsultationFee: form.ConsultationFee,
	}
}
