package models

// SystemSettings is a singleton row holding system-wide projection defaults.
// Inflation tiers are percentages.
type SystemSettings struct {
	Base
	InflationRateLow    float64 `gorm:"default:1.5" json:"inflation_rate_low"`
	InflationRateMedium float64 `gorm:"default:2.5" json:"inflation_rate_medium"`
	InflationRateHigh   float64 `gorm:"default:4" json:"inflation_rate_high"`
	BasicModeYears      int     `gorm:"default:10" json:"basic_mode_years"`
	AdvancedModeYears   int     `gorm:"default:30" json:"advanced_mode_years"`
}
