package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hospital-records-service/internal/domain"
	"hospital-records-service/internal/domain/entities"
)

var (
	_ PatientStoreContract = (*GormStore[entities.Patient])(nil)
	_ DoctorStoreContract  = (*GormStore[entities.Doctor])(nil)
)

// collectionRow holds one whole collection as a JSON document, keyed by
// collection name. Storing the document rather than one row per record keeps
// the load/replace contract exact: insertion order survives and Replace stays
// all-or-nothing inside a single transaction.
type collectionRow struct {
	Name string `gorm:"primaryKey;size:64"`
	Data []byte `gorm:"not null"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// GormStore is the database-backed store, selected with STORE_DRIVER=postgres.
type GormStore[T any] struct {
	db     *gorm.DB
	name   string
	logger zerolog.Logger
}

// NewGormStore migrates the collections table and returns a store scoped to
// the named collection.
func NewGormStore[T any](db *gorm.DB, name string, logger zerolog.Logger) (*GormStore[T], error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	return &GormStore[T]{
		db:     db,
		name:   name,
		logger: logger.With().Str("store", name).Logger(),
	}, nil
}

func (s *GormStore[T]) Load(ctx context.Context) ([]T, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", s.name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []T{}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load collection row")
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	var records []T
	if err := json.Unmarshal(row.Data, &records); err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *GormStore[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return &domain.StorageError{Op: "replace", Err: err}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).Create(&collectionRow{Name: s.name, Data: data}).Error
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to replace collection row")
		return &domain.StorageError{Op: "replace", Err: err}
	}
	return nil
}
