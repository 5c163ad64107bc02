package theme

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is one stored theme preference.
type Preference struct {
	Key       string    `gorm:"primaryKey;column:pref_key;type:varchar(128)"`
	Mode      string    `gorm:"column:mode;type:varchar(16);not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Preference) TableName() string {
	return "theme_preferences"
}

// DatabaseStore keeps preferences in the theme_preferences table.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a DatabaseStore. Call Migrate before first use on a fresh database.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Migrate creates or updates the preferences table.
func (s *DatabaseStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Preference{}); err != nil {
		return fmt.Errorf("failed to migrate theme preferences: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Get(ctx context.Context, key string) (Mode, error) {
	var p Preference
	err := s.db.WithContext(ctx).Where("pref_key = ?", key).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Automatic, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read theme preference: %w", err)
	}
	return modeOrDefault(p.Mode), nil
}

func (s *DatabaseStore) Set(ctx context.Context, key string, mode Mode) error {
	p := Preference{Key: key, Mode: string(mode), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pref_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"mode", "updated_at"}),
		}).
		Create(&p).Error
	if err != nil {
		return fmt.Errorf("failed to write theme preference: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("pref_key = ?", key).Delete(&Preference{}).Error; err != nil {
		return fmt.Errorf("failed to delete theme preference: %w", err)
	}
	return nil
}
