package validation

import (
	"regexp"
	"strconv"
	"strings"

	"hospital-records-service/internal/domain/dtos"
)

const (
	MsgDoctorName           = "Name must contain only letters and spaces."
	MsgDoctorSpecialization = "Specialization is required."
	MsgDoctorDaysRequired   = "Available days are required."
	MsgDoctorDaysFormat     = "Available days must be valid weekdays (e.g., Monday, Tuesday). (Capital First Letter and split using ',' )"
	MsgDoctorTime           = "Available time is required."
	MsgDoctorFee            = "Consultation fee must be a number."
)

// weekday tokens must match case-exactly: "monday" is rejected.
var weekday = regexp.MustCompile(`^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)$`)

// ValidateDoctor checks a candidate doctor form against every field rule and
// reports all violations. It never mutates the form.
func ValidateDoctor(form dtos.DoctorForm) []string {
	var errs []string

	if form.Name == "" || !lettersAndSpaces.MatchString(form.Name) {
		errs = append(errs, MsgDoctorName)
	}

	if form.Specialization == "" {
		errs = append(errs, MsgDoctorSpecialization)
	}

	if form.AvailableDays == "" {
		errs = append(errs, MsgDoctorDaysRequired)
	} else if !validWeekdayList(form.AvailableDays) {
		errs = append(errs, MsgDoctorDaysFormat)
	}

	if form.AvailableTime == "" {
		errs = append(errs, MsgDoctorTime)
	}

	if form.ConsultationFee != "" {
		if _, err := strconv.ParseFloat(strings.TrimSpace(form.ConsultationFee), 64); err != nil {
			errs = append(errs, MsgDoctorFee)
		}
	}

	return errs
}

func validWeekdayList(days string) bool {
	for _, day := range strings.Split(days, ",") {
		if !weekday.MatchString(strings.TrimSpace(day)) {
			return false
		}
	}
	return true
}
