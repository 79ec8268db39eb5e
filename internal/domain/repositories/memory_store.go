package repositories

import (
	"context"
	"sync"

	"hospital-records-service/internal/domain/entities"
)

var (
	_ PatientStoreContract = (*MemoryStore[entities.Patient])(nil)
	_ DoctorStoreContract  = (*MemoryStore[entities.Doctor])(nil)
)

// MemoryStore keeps a collection in process memory. It backs tests and
// ephemeral runs; semantics match the file store (Load returns the full
// collection, Replace overwrites it) without touching disk.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	records []T
}

// NewMemoryStore creates an empty in-memory store, optionally seeded.
func NewMemoryStore[T any](seed ...T) *MemoryStore[T] {
	s := &MemoryStore[T]{records: []T{}}
	if len(seed) > 0 {
		s.records = append(s.records, seed...)
	}
	return s
}

func (s *MemoryStore[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore[T]) Replace(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]T, len(records))
	copy(s.records, records)
	return nil
}
