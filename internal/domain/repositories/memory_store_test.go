package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hospital-records-service/internal/domain/entities"
)

func TestMemoryStore_LoadReturnsIsolatedCopy(t *testing.T) {
	store := NewMemoryStore[entities.Patient](
		entities.Patient{ID: uuid.New(), Name: "Jane Roe"},
	)
	ctx := context.Background()

	first, err := store.Load(ctx)
	assert.NoError(t, err)
	first[0].Name = "mutated"

	second, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Jane Roe", second[0].Name, "callers must not share backing storage")
}

func TestMemoryStore_ReplaceOverwritesWholeCollection(t *testing.T) {
	store := NewMemoryStore[entities.Doctor](
		entities.Doctor{ID: uuid.New(), Name: "Amy Lee"},
		entities.Doctor{ID: uuid.New(), Name: "Bob Gray"},
	)
	ctx := context.Background()

	replacement := []entities.Doctor{{ID: uuid.New(), Name: "Cara Day"}}
	assert.NoError(t, store.Replace(ctx, replacement))

	got, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestMemoryStore_StartsEmpty(t *testing.T) {
	store := NewMemoryStore[entities.Patient]()
	got, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, got)
}
