package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
)

// holdingTypeService handles holding-type business logic.
type holdingTypeService struct {
	db *gorm.DB
}

// NewHoldingTypeService creates a new HoldingTypeServicer.
func NewHoldingTypeService(db *gorm.DB) HoldingTypeServicer {
	return &holdingTypeService{db: db}
}

// SeedDefaults creates the default holding types for a new user.
func (s *holdingTypeService) SeedDefaults(userID string) error {
	types := []models.HoldingType{
		{UserID: userID, Name: "Personal"},
		{UserID: userID, Name: "Joint"},
		{UserID: userID, Name: "Trust"},
	}
	if err := s.db.Create(&types).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateHoldingType creates a user-defined holding type.
func (s *holdingTypeService) CreateHoldingType(userID string, ht *models.HoldingType) (*models.HoldingType, error) {
	ht.ID = ""
	ht.UserID = userID
	if err := s.db.Create(ht).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ht, nil
}

// GetUserHoldingTypes lists the user's holding types.
func (s *holdingTypeService) GetUserHoldingTypes(userID string) ([]models.HoldingType, error) {
	var types []models.HoldingType
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return types, nil
}

// GetHoldingTypeByID retrieves one of the user's holding types.
func (s *holdingTypeService) GetHoldingTypeByID(userID, typeID string) (*models.HoldingType, error) {
	var ht models.HoldingType
	if err := s.db.Where("id = ? AND user_id = ?", typeID, userID).First(&ht).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ht, nil
}

// UpdateHoldingType updates name, country and tax settings.
func (s *holdingTypeService) UpdateHoldingType(userID, typeID string, update *models.HoldingType) (*models.HoldingType, error) {
	ht, err := s.GetHoldingTypeByID(userID, typeID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         update.Name,
		"country_code": update.CountryCode,
		"tax_settings": update.TaxSettings,
	}
	if err := s.db.Model(ht).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetHoldingTypeByID(userID, typeID)
}

// DeleteHoldingType removes a holding type that no holding references.
func (s *holdingTypeService) DeleteHoldingType(userID, typeID string) error {
	ht, err := s.GetHoldingTypeByID(userID, typeID)
	if err != nil {
		return err
	}

	var holdings int64
	if err := s.db.Model(&models.Holding{}).Where("holding_type_id = ?", typeID).Count(&holdings).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if holdings > 0 {
		return apperrors.ErrHoldingTypeInUse
	}

	if err := s.db.Delete(ht).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
