package models

// AssetClass is a category of holdings (e.g. Real Estate, Cash, Shares)
// carrying the default growth and yield rates a holding falls back to when it
// does not override them. Rates are stored as percentages.
type AssetClass struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	IsLiability bool   `gorm:"default:false" json:"is_liability"`

	// Growth-rate scenarios (percent). Nil means "use the built-in default".
	GrowthRateLow    *float64 `json:"growth_rate_low,omitempty"`
	GrowthRateMedium *float64 `json:"growth_rate_medium,omitempty"`
	GrowthRateHigh   *float64 `json:"growth_rate_high,omitempty"`

	// DefaultIncomeYield (percent) applies to holdings with no yield override.
	DefaultIncomeYield *float64 `json:"default_income_yield,omitempty"`

	// Relationships
	ExpenseCategories []ExpenseCategory `gorm:"foreignKey:AssetClassID" json:"expense_categories,omitempty"`
	Holdings          []Holding         `gorm:"foreignKey:AssetClassID" json:"holdings,omitempty"`
}
