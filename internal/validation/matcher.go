package validation

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"hospital-records-service/internal/domain/entities"
)

var foldCaser = cases.Fold()

// Normalize prepares a textual field for equality comparison: surrounding
// whitespace is trimmed and the result is case-folded.
func Normalize(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// FindMatches filters patients by a partial criteria map. Criteria whose
// value is blank after trimming are dropped; a record matches when every
// remaining criterion equals the stored field under Normalize. An empty
// criteria map matches everything, so searching with no filters lists the
// whole collection in order. A criteria key with no corresponding stored
// field never matches.
func FindMatches(existing []entities.Patient, criteria map[string]string) []entities.Patient {
	cleaned := make(map[string]string, len(criteria))
	for key, value := range criteria {
		if norm := Normalize(value); norm != "" {
			cleaned[key] = norm
		}
	}
	if len(cleaned) == 0 {
		return existing
	}

	matched := make([]entities.Patient, 0, len(existing))
	for _, patient := range existing {
		if matchesAll(patient, cleaned) {
			matched = append(matched, patient)
		}
	}
	return matched
}

func matchesAll(patient entities.Patient, criteria map[string]string) bool {
	for key, want := range criteria {
		stored, ok := patientField(patient, key)
		if !ok || Normalize(stored) != want {
			return false
		}
	}
	return true
}

// patientField resolves a criteria key to the record's stored value. The
// second return is false when the field is absent on the record, which counts
// as a non-match rather than an error.
func patientField(patient entities.Patient, key string) (string, bool) {
	switch key {
	case "id":
		if patient.ID == uuid.Nil {
			return "", false
		}
		return patient.ID.String(), true
	case "name":
		return patient.Name, true
	case "age":
		return strconv.Itoa(patient.Age), true
	case "phone":
		return patient.Phone, true
	case "address":
		return patient.Address, true
	default:
		return "", false
	}
}
