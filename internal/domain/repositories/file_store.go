package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"hospital-records-service/internal/domain"
	"hospital-records-service/internal/domain/entities"
)

// Compile-time checks that the file store satisfies both store contracts.
var (
	_ PatientStoreContract = (*JSONFileStore[entities.Patient])(nil)
	_ DoctorStoreContract  = (*JSONFileStore[entities.Doctor])(nil)
)

// JSONFileStore persists a collection as a pretty-printed JSON array in a
// single file. A missing file reads as an empty collection; any other read or
// write failure surfaces as a *domain.StorageError rather than being logged
// and swallowed.
type JSONFileStore[T any] struct {
	path   string
	logger zerolog.Logger
}

// NewJSONFileStore creates a file store backed by the given path. The file is
// not created until the first Replace.
func NewJSONFileStore[T any](path string, logger zerolog.Logger) *JSONFileStore[T] {
	return &JSONFileStore[T]{
		path:   path,
		logger: logger.With().Str("store", filepath.Base(path)).Logger(),
	}
}

// Load reads and decodes the full collection.
func (s *JSONFileStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read collection file")
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Error().Err(err).Msg("failed to decode collection file")
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Replace atomically overwrites the collection file. The new contents are
// written to a temp file in the same directory and renamed over the original,
// so readers never observe a partial write.
func (s *JSONFileStore[T]) Replace(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return &domain.StorageError{Op: "replace", Err: err}
	}

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "replace", Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error().Err(err).Msg("failed to create data directory")
		return &domain.StorageError{Op: "replace", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create temp file")
		return &domain.StorageError{Op: "replace", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.logger.Error().Err(err).Msg("failed to write collection file")
		return &domain.StorageError{Op: "replace", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "replace", Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.logger.Error().Err(err).Msg("failed to replace collection file")
		return &domain.StorageError{Op: "replace", Err: err}
	}
	return nil
}
