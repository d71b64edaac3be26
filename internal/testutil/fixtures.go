package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"prospect/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Mode:     models.UserModeBasic,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAssetClass creates an asset class with medium growth tiers.
func CreateTestAssetClass(t *testing.T, db *gorm.DB, userID, name string) *models.AssetClass {
	t.Helper()

	low, medium, high := 2.0, 5.0, 8.0
	class := &models.AssetClass{
		UserID:           userID,
		Name:             name,
		GrowthRateLow:    &low,
		GrowthRateMedium: &medium,
		GrowthRateHigh:   &high,
	}
	if err := db.Create(class).Error; err != nil {
		t.Fatalf("failed to create test asset class: %v", err)
	}
	return class
}

// CreateTestLiabilityClass creates an asset class flagged as a liability
// grouping.
func CreateTestLiabilityClass(t *testing.T, db *gorm.DB, userID string) *models.AssetClass {
	t.Helper()

	class := &models.AssetClass{
		UserID:      userID,
		Name:        fmt.Sprintf("Loans %d", nextID()),
		IsLiability: true,
	}
	if err := db.Create(class).Error; err != nil {
		t.Fatalf("failed to create test liability class: %v", err)
	}
	return class
}

// CreateTestHoldingType creates a holding type.
func CreateTestHoldingType(t *testing.T, db *gorm.DB, userID string) *models.HoldingType {
	t.Helper()

	ht := &models.HoldingType{
		UserID:      userID,
		Name:        fmt.Sprintf("Personal %d", nextID()),
		CountryCode: "AU",
	}
	if err := db.Create(ht).Error; err != nil {
		t.Fatalf("failed to create test holding type: %v", err)
	}
	return ht
}

// CreateTestHolding creates a plain asset holding with the given value.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID, classID, typeID string, value float64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:        userID,
		AssetClassID:  classID,
		HoldingTypeID: typeID,
		Kind:          models.HoldingKindOther,
		Name:          fmt.Sprintf("Holding %d", nextID()),
		Value:         value,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestLiability creates a liability holding with the given balance.
func CreateTestLiability(t *testing.T, db *gorm.DB, userID, classID, typeID string, balance float64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:        userID,
		AssetClassID:  classID,
		HoldingTypeID: typeID,
		Kind:          models.HoldingKindLoan,
		Name:          fmt.Sprintf("Liability %d", nextID()),
		Value:         balance,
		IsLiability:   true,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test liability: %v", err)
	}
	return holding
}
