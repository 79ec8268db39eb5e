package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"hospital-records-service/internal/domain"
	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/domain/entities"
	"hospital-records-service/internal/domain/repositories"
	"hospital-records-service/internal/validation"
)

func newDoctorService(store repositories.DoctorStoreContract) DoctorServiceContract {
	return NewDoctorService(store, zerolog.Nop())
}

func amyLeeForm() dtos.DoctorForm {
	return dtos.DoctorForm{
		Name:            "Amy Lee",
		Specialization:  "Cardiology",
		AvailableDays:   "Monday,Wednesday",
		AvailableTime:   "9-5",
		ConsultationFee: "100",
	}
}

func TestDoctorService_AddAndList(t *testing.T) {
	store := repositories.NewMemoryStore[entities.Doctor]()
	svc := newDoctorService(store)
	ctx := context.Background()

	record, err := svc.Add(ctx, amyLeeForm())
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, "Cardiology", record.Specialization)

	doctors, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, *record, doctors[0])
}

func TestDoctorService_LowercaseWeekdayRejected(t *testing.T) {
	store := repositories.NewMemoryStore[entities.Doctor]()
	svc := newDoctorService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, amyLeeForm())
	assert.NoError(t, err)

	form := amyLeeForm()
	form.AvailableDays = "monday"
	_, err = svc.Add(ctx, form)

	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Messages, validation.MsgDoctorDaysFormat)
	assert.Equal(t, form, valErr.Attempted)

	doctors, _ := svc.List(ctx)
	assert.Len(t, doctors, 1)
}

func TestDoctorService_NoDuplicateCheck(t *testing.T) {
	// Unlike patients, identical doctors are accepted.
	store := repositories.NewMemoryStore[entities.Doctor]()
	svc := newDoctorService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, amyLeeForm())
	assert.NoError(t, err)
	_, err = svc.Add(ctx, amyLeeForm())
	assert.NoError(t, err)

	doctors, _ := svc.List(ctx)
	assert.Len(t, doctors, 2)
}

func TestDoctorService_EditPreservesIDAndPosition(t *testing.T) {
	store := repositories.NewMemoryStore[entities.Doctor]()
	svc := newDoctorService(store)
	ctx := context.Background()

	first, _ := svc.Add(ctx, amyLeeForm())
	second, _ := svc.Add(ctx, dtos.DoctorForm{
		Name: "Bob Gray", Specialization: "Dermatology", AvailableDays: "Friday", AvailableTime: "10-4",
	})

	form := amyLeeForm()
	form.Specialization = "Neurology"
	updated, err := svc.Edit(ctx, first.ID, form)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Neurology", updated.Specialization)

	doctors, _ := svc.List(ctx)
	assert.Len(t, doctors, 2)
	assert.Equal(t, *updated, doctors[0])
	assert.Equal(t, *second, doctors[1])
}

func TestDoctorService_EditValidationFailure(t *testing.T) {
	store := repositories.NewMemoryStore[entities.Doctor]()
	svc := newDoctorService(store)
	ctx := context.Background()

	record, _ := svc.Add(ctx, amyLeeForm())

	form := amyLeeForm()
	form.ConsultationFee = "lots"
	_, err := svc.Edit(ctx, record.ID, form)

	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Messages, validation.MsgDoctorFee)

	doctors, _ := svc.List(ctx)
	assert.Equal(t, "100", doctors[0].ConsultationFee)
}

func TestDoctorService_EditAndDeleteNotFound(t *testing.T) {
	svc := newDoctorService(repositories.NewMemoryStore[entities.Doctor]())
	ctx := context.Background()

	_, err := svc.Edit(ctx, uuid.New(), amyLeeForm())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDoctorService_DeleteMissingIDDoesNotRewrite(t *testing.T) {
	store := &MockDoctorStore{
		LoadFunc: func(ctx context.Context) ([]entities.Doctor, error) {
			return []entities.Doctor{{ID: uuid.New(), Name: "Amy Lee"}}, nil
		},
	}
	svc := newDoctorService(store)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 0, store.ReplaceCallCount)
}

func TestDoctorService_DeleteRemovesRecord(t *testing.T) {
	store := repositories.NewMemoryStore[entities.Doctor]()
	svc := newDoctorService(store)
	ctx := context.Background()

	first, _ := svc.Add(ctx, amyLeeForm())
	assert.NoError(t, svc.Delete(ctx, first.ID))

	doctors, _ := svc.List(ctx)
	assert.Empty(t, doctors)
}
