package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hospital-records-service/internal/domain"
	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/domain/entities"
	"hospital-records-service/internal/domain/repositories"
	"hospital-records-service/internal/validation"
)

// PatientServiceImpl implements PatientServiceContract on top of an injected
// store. Every mutating operation holds the service mutex across its whole
// load-mutate-replace sequence, so concurrent requests against the patients
// collection cannot lose updates to each other within this process.
type PatientServiceImpl struct {
	store  repositories.PatientStoreContract
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewPatientService creates a new instance of PatientServiceImpl.
func NewPatientService(store repositories.PatientStoreContract, logger zerolog.Logger) PatientServiceContract {
	return &PatientServiceImpl{
		store:  store,
		logger: logger.With().Str("service", "patients").Logger(),
	}
}

// Add creates a patient record from a submitted form. The duplicate check on
// normalized name+phone runs first and short-circuits validation.
func (s *PatientServiceImpl) Add(ctx context.Context, form dtos.PatientForm) (*entities.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	duplicates := validation.FindMatches(patients, map[string]string{
		"name":  form.Name,
		"phone": form.Phone,
	})
	if len(duplicates) > 0 {
		s.logger.Info().Str("name", form.Name).Msg("rejected duplicate patient")
		return nil, &domain.DuplicateError{
			Message:   validation.MsgPatientDuplicate,
			Attempted: form,
		}
	}

	if msgs := validation.ValidatePatient(form); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs, Attempted: form}
	}

	record := buildPatient(uuid.New(), form)
	patients = append(patients, record)
	if err := s.store.Replace(ctx, patients); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", record.ID.String()).Msg("patient added")
	return &record, nil
}

// List returns the whole collection in insertion order.
func (s *PatientServiceImpl) List(ctx context.Context) ([]entities.Patient, error) {
	return s.store.Load(ctx)
}

// Search filters the collection by a partial criteria map. An empty map (or
// one whose values are all blank) returns every record unfiltered.
func (s *PatientServiceImpl) Search(ctx context.Context, criteria map[string]string) ([]entities.Patient, error) {
	patients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return validation.FindMatches(patients, criteria), nil
}

// Get fetches one record by id.
func (s *PatientServiceImpl) Get(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	patients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Edit replaces the record's mutable fields at its existing position. When
// the form's action is "delete" the record is removed instead and validation
// is skipped entirely.
func (s *PatientServiceImpl) Edit(ctx context.Context, id uuid.UUID, form dtos.PatientForm) (*entities.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfPatient(patients, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	if form.Action == "delete" {
		removed := patients[idx]
		patients = append(patients[:idx], patients[idx+1:]...)
		if err := s.store.Replace(ctx, patients); err != nil {
			return nil, err
		}
		s.logger.Info().Str("id", id.String()).Msg("patient removed via edit action")
		return &removed, nil
	}

	if msgs := validation.ValidatePatient(form); len(msgs) > 0 {
		// The redisplay payload is the attempted update, not the stored record.
		return nil, &domain.ValidationError{Messages: msgs, Attempted: form}
	}

	updated := buildPatient(id, form)
	patients[idx] = updated
	if err := s.store.Replace(ctx, patients); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id.String()).Msg("patient updated")
	return &updated, nil
}

// Delete removes the record with the given id. A missing id reports
// domain.ErrNotFound and leaves the persisted collection untouched.
func (s *PatientServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOfPatient(patients, id)
	if idx < 0 {
		return domain.ErrNotFound
	}

	patients = append(patients[:idx], patients[idx+1:]...)
	if err := s.store.Replace(ctx, patients); err != nil {
		return err
	}

	s.logger.Info().Str("id", id.String()).Msg("patient deleted")
	return nil
}

func indexOfPatient(patients []entities.Patient, id uuid.UUID) int {
	for i := range patients {
		if patients[i].ID == id {
			return i
		}
	}
	return -1
}

// buildPatient materializes a validated form into a record. The age parse
// cannot fail here: ValidatePatient has already accepted it.
func buildPatient(id uuid.UUID, form dtos.PatientForm) entities.Patient {
	age, _ := strconv.Atoi(strings.TrimSpace(form.Age))
	return entities.Patient{
		ID:      id,
		Name:    form.Name,
		Age:     age,
		Phone:   form.Phone,
		Address: form.Address,
	}
}
