package models

// ExpenseFrequency is how often a recurring expense falls due.
type ExpenseFrequency string

const (
	FrequencyDaily      ExpenseFrequency = "daily"
	FrequencyWeekly     ExpenseFrequency = "weekly"
	FrequencyFortnight  ExpenseFrequency = "fortnightly"
	FrequencyMonthly    ExpenseFrequency = "monthly"
	FrequencyQuarterly  ExpenseFrequency = "quarterly"
	FrequencySemiAnnual ExpenseFrequency = "semi-annual"
	FrequencyAnnually   ExpenseFrequency = "annually"
)

// frequencyMultipliers is the fixed table converting a frequency to
// occurrences per year.
var frequencyMultipliers = map[ExpenseFrequency]float64{
	FrequencyDaily:      365,
	FrequencyWeekly:     52,
	FrequencyFortnight:  26,
	FrequencyMonthly:    12,
	FrequencyQuarterly:  4,
	FrequencySemiAnnual: 2,
	FrequencyAnnually:   1,
}

// Multiplier returns the annual occurrence count for the frequency, and
// whether the frequency is recognized.
func (f ExpenseFrequency) Multiplier() (float64, bool) {
	m, ok := frequencyMultipliers[f]
	return m, ok
}

// ExpenseCategory is a template entry on an asset class, used to prompt for
// the usual expenses of holdings in that class (rates, insurance, fees).
type ExpenseCategory struct {
	Base
	AssetClassID string `gorm:"type:uuid;not null;index" json:"asset_class_id"`
	Name         string `gorm:"not null" json:"name"`
}

// RecurringExpense is one recurring cost attached to a holding. AnnualTotal
// is computed once at write time from the frequency multiplier table; the
// projection engine reads it as-is and never re-validates it.
type RecurringExpense struct {
	Base
	HoldingID   string           `gorm:"type:uuid;not null;index" json:"holding_id"`
	CategoryID  *string          `gorm:"type:uuid" json:"category_id,omitempty"`
	Name        string           `gorm:"not null" json:"name"`
	Amount      float64          `gorm:"not null" json:"amount"`
	Frequency   ExpenseFrequency `gorm:"not null" json:"frequency"`
	AnnualTotal float64          `gorm:"not null" json:"annual_total"`
	Notes       string           `json:"notes,omitempty"`
}
