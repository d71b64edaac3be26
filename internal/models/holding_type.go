package models

// HoldingType is a legal/ownership grouping (e.g. Personal, Joint, Trust)
// used as a breakdown dimension in projections. TaxSettings is an opaque
// JSON document consumed only by the (external) tax layer.
type HoldingType struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	CountryCode string `gorm:"size:2" json:"country_code"`
	TaxSettings string `gorm:"type:text" json:"tax_settings,omitempty"`

	// Relationships
	Holdings []Holding `gorm:"foreignKey:HoldingTypeID" json:"holdings,omitempty"`
}
