package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
)

// settingsService manages the system settings singleton.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// Get returns the settings row, creating it with defaults on first access.
func (s *settingsService) Get() (*models.SystemSettings, error) {
	var settings models.SystemSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.SystemSettings{
			InflationRateLow:    1.5,
			InflationRateMedium: 2.5,
			InflationRateHigh:   4,
			BasicModeYears:      10,
			AdvancedModeYears:   30,
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// Update overwrites the singleton's tunable fields.
func (s *settingsService) Update(update *models.SystemSettings) (*models.SystemSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"inflation_rate_low":    update.InflationRateLow,
		"inflation_rate_medium": update.InflationRateMedium,
		"inflation_rate_high":   update.InflationRateHigh,
		"basic_mode_years":      update.BasicModeYears,
		"advanced_mode_years":   update.AdvancedModeYears,
	}
	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}
