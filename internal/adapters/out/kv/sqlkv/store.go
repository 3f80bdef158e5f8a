package sqlkv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"grabgo/internal/core/ports"
	"grabgo/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ ports.KeyValueStore = (*GormStore)(nil)

// GormStore implements ports.KeyValueStore on top of a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the SQLite file at path, creating the parent directory if
// needed, and migrates the slot table. Use ":memory:" for a throwaway database.
func Open(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection also keeps ":memory:" shared.
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&SlotDTO{}); err != nil {
		return nil, fmt.Errorf("migrate slots: %w", err)
	}

	return db, nil
}

// NewGormStore creates a store over an already migrated connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value stored under key.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var dto SlotDTO
	if err := s.db.WithContext(ctx).First(&dto, "slot_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("key", key)
		}
		return nil, err
	}

	return dto.Value, nil
}

// Put inserts or replaces the value stored under key.
func (s *GormStore) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	dto := SlotDTO{Key: key, Value: value}
	if dto.Value == nil {
		dto.Value = []byte{}
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
}
