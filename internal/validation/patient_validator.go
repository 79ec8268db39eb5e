package validation

import (
	"regexp"
	"strconv"
	"strings"

	"hospital-records-service/internal/domain/dtos"
)

const (
	// MsgPatientName is reported when the name rule fails.
	MsgPatientName = "Name must contain only letters and spaces, and be at least 2 characters long."
	// MsgPatientAge is reported when the age rule fails.
	MsgPatientAge = "Age is invalid."
	// MsgPatientPhone is reported when the phone rule fails.
	MsgPatientPhone = "Phone number is invalid."
	// MsgPatientDuplicate rejects an add whose name and phone match an
	// existing record.
	MsgPatientDuplicate = "A patient with this name and phone number already exists."
)

var (
	lettersAndSpaces = regexp.MustCompile(`^[A-Za-z\s]+$`)
	tenDigits        = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidatePatient checks a candidate patient form against every field rule
// and reports all violations, not just the first. It never mutates the form.
func ValidatePatient(form dtos.PatientForm) []string {
	var errs []string

	if len(form.Name) < 2 || !lettersAndSpaces.MatchString(form.Name) {
		errs = append(errs, MsgPatientName)
	}

	age, err := strconv.Atoi(strings.TrimSpace(form.Age))
	if form.Age == "" || err != nil || age < 0 || age > 120 {
		errs = append(errs, MsgPatientAge)
	}

	if !tenDigits.MatchString(form.Phone) || allSameDigit(form.Phone) {
		errs = append(errs, MsgPatientPhone)
	}

	return errs
}

// allSameDigit reports whether s is one digit repeated. Go's regexp engine
// has no negative lookahead, so the "not 10 of the same digit" half of the
// phone rule is a plain scan.
func allSameDigit(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
