package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an identifier-addressed operation targets a
// record that does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// ValidationError carries every field rule the candidate record violated,
// together with the rejected input so a form can be redisplayed. It is
// recoverable and scoped to the operation that raised it.
type ValidationError struct {
	Messages  []string
	Attempted any
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// DuplicateError rejects a patient add whose normalized name and phone match
// an existing record. It takes precedence over validation and carries the
// rejected input under the same redisplay contract.
type DuplicateError struct {
	Message   string
	Attempted any
}

func (e *DuplicateError) Error() string {
	return e.Message
}

// StorageError wraps a read or write failure against a persisted collection.
// A missing file is not a StorageError; it reads as an empty collection.
type StorageError struct {
	Op  string // "load" or "replace"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
