package models

import "time"

// UserMode selects the interface mode, which drives projection defaults.
type UserMode string

const (
	UserModeBasic    UserMode = "basic"
	UserModeAdvanced UserMode = "advanced"
)

// User represents the user model in the database
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Mode                UserMode   `gorm:"not null;default:'basic'" json:"mode"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	AssetClasses []AssetClass  `gorm:"foreignKey:UserID" json:"asset_classes,omitempty"`
	HoldingTypes []HoldingType `gorm:"foreignKey:UserID" json:"holding_types,omitempty"`
	Holdings     []Holding     `gorm:"foreignKey:UserID" json:"holdings,omitempty"`
}
