package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospital-records-service/internal/domain/dtos"
)

func validDoctorForm() dtos.DoctorForm {
	return dtos.DoctorForm{
		Name:            "Amy Lee",
		Specialization:  "Cardiology",
		AvailableDays:   "Monday,Wednesday",
		AvailableTime:   "9-5",
		ConsultationFee: "100",
	}
}

func TestValidateDoctor_ValidFormHasNoErrors(t *testing.T) {
	assert.Empty(t, ValidateDoctor(validDoctorForm()))
}

func TestValidateDoctor_LowercaseWeekdayRejected(t *testing.T) {
	form := validDoctorForm()
	form.AvailableDays = "monday"
	assert.Contains(t, ValidateDoctor(form), MsgDoctorDaysFormat)
}

func TestValidateDoctor_DayTokensAreTrimmed(t *testing.T) {
	form := validDoctorForm()
	form.AvailableDays = "Monday, Wednesday , Friday"
	assert.Empty(t, ValidateDoctor(form))
}

func TestValidateDoctor_MissingDaysUsesRequiredMessage(t *testing.T) {
	form := validDoctorForm()
	form.AvailableDays = ""
	errs := ValidateDoctor(form)
	assert.Contains(t, errs, MsgDoctorDaysRequired)
	assert.NotContains(t, errs, MsgDoctorDaysFormat)
}

func TestValidateDoctor_MalformedDayList(t *testing.T) {
	for _, days := range []string{"Funday", "Monday;Tuesday", "Monday,", "Mon"} {
		form := validDoctorForm()
		form.AvailableDays = days
		assert.Contains(t, ValidateDoctor(form), MsgDoctorDaysFormat, "days %q should be rejected", days)
	}
}

func TestValidateDoctor_RequiredFields(t *testing.T) {
	errs := ValidateDoctor(dtos.DoctorForm{})
	assert.Contains(t, errs, MsgDoctorName)
	assert.Contains(t, errs, MsgDoctorSpecialization)
	assert.Contains(t, errs, MsgDoctorDaysRequired)
	assert.Contains(t, errs, MsgDoctorTime)
	// An absent fee is fine.
	assert.NotContains(t, errs, MsgDoctorFee)
}

func TestValidateDoctor_FeeMustBeNumericWhenPresent(t *testing.T) {
	form := validDoctorForm()
	form.ConsultationFee = "free"
	assert.Contains(t, ValidateDoctor(form), MsgDoctorFee)

	form.ConsultationFee = "99.50"
	assert.Empty(t, ValidateDoctor(form))

	form.ConsultationFee = ""
	assert.Empty(t, ValidateDoctor(form))
}

func TestValidateDoctor_NameMustBeLettersAndSpaces(t *testing.T) {
	form := validDoctorForm()
	form.Name = "Dr. Amy"
	assert.Contains(t, ValidateDoctor(form), MsgDoctorName)
}
