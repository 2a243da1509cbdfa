package prefs

import (
	"context"
	"errors"

	"catalog-manager/feature/prefs/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service persists storefront preferences as key/value pairs.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new preference service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// Migrate ensures the preferences table exists.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Preference{})
}

// Get returns the preference stored under key, or nil when absent.
func (s *Service) Get(ctx context.Context, key string) (*models.Preference, error) {
	var pref models.Preference
	err := s.db.WithContext(ctx).First(&pref, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Set stores value under key, replacing any previous value.
func (s *Service) Set(ctx context.Context, key, value string) (*models.Preference, error) {
	pref := models.Preference{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Delete removes the preference stored under key. Missing keys are not an error.
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&models.Preference{}, "`key` = ?", key).Error
}
