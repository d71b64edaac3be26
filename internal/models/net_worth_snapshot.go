package models

import (
	"time"

	"prospect/internal/uuid"

	"gorm.io/gorm"
)

// NetWorthSnapshot is a point-in-time record of a user's balance sheet.
// Immutable time-series data, so no Base embed and no soft deletes.
type NetWorthSnapshot struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string    `gorm:"type:uuid;not null;index" json:"user_id"`
	RecordedAt       time.Time `gorm:"not null" json:"recorded_at"`
	TotalAssets      float64   `gorm:"not null" json:"total_assets"`
	TotalLiabilities float64   `gorm:"not null" json:"total_liabilities"`
	NetWorth         float64   `gorm:"not null" json:"net_worth"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (n *NetWorthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New()
	}
	return nil
}
