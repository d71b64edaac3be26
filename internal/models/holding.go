package models

import "time"

// HoldingKind tags a holding with its behavioural variant. It is decided at
// data entry and drives income derivation; class-name matching survives only
// as a fallback for records created before the tag existed.
type HoldingKind string

const (
	HoldingKindProperty   HoldingKind = "property"
	HoldingKindCash       HoldingKind = "cash"
	HoldingKindShares     HoldingKind = "shares"
	HoldingKindEmployment HoldingKind = "employment"
	HoldingKindLoan       HoldingKind = "loan"
	HoldingKindOther      HoldingKind = "other"
)

// PaymentFrequency is how often a recurring payment arrives.
type PaymentFrequency string

const (
	PayWeekly      PaymentFrequency = "weekly"
	PayFortnightly PaymentFrequency = "fortnightly"
	PayMonthly     PaymentFrequency = "monthly"
	PayAnnually    PaymentFrequency = "annually"
)

// PeriodsPerYear returns the number of payments per year for a frequency.
// Unknown frequencies default to monthly.
func (f PaymentFrequency) PeriodsPerYear() float64 {
	switch f {
	case PayWeekly:
		return 52
	case PayFortnightly:
		return 26
	case PayAnnually:
		return 1
	default:
		return 12
	}
}

// Holding is the envelope for a single tracked asset or liability. Variant
// specific data lives in the per-kind payload records below, selected by
// Kind, so a cash account cannot carry bedrooms and a salary cannot carry a
// loan term.
type Holding struct {
	Base
	UserID        string      `gorm:"type:uuid;not null;index" json:"user_id"`
	AssetClassID  string      `gorm:"type:uuid;not null" json:"asset_class_id"`
	HoldingTypeID string      `gorm:"type:uuid;not null" json:"holding_type_id"`
	Kind          HoldingKind `gorm:"not null;default:'other'" json:"kind"`
	Name          string      `gorm:"not null" json:"name"`

	// Value is stored positive for liabilities too; IsLiability controls the
	// sign convention applied by the projection engine.
	Value         float64    `gorm:"not null;default:0" json:"value"`
	PurchasePrice *float64   `json:"purchase_price,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`

	// Overrides (percent). Nil falls back to the asset class defaults.
	GrowthRate  *float64 `json:"growth_rate,omitempty"`
	IncomeYield *float64 `json:"income_yield,omitempty"`

	// InterestRate (percent) is income-bearing for cash holdings and growth
	// for freeform debts. It stays on the envelope because it is shared by
	// two kinds.
	InterestRate *float64 `json:"interest_rate,omitempty"`

	IsHidden    bool `gorm:"default:false" json:"is_hidden"`
	IsLiability bool `gorm:"default:false" json:"is_liability"`

	// Per-kind payloads (one-to-one, optional)
	Property   *PropertyDetails   `gorm:"foreignKey:HoldingID" json:"property,omitempty"`
	Loan       *LoanDetails       `gorm:"foreignKey:HoldingID" json:"loan,omitempty"`
	Shares     *ShareDetails      `gorm:"foreignKey:HoldingID" json:"shares,omitempty"`
	Employment *EmploymentDetails `gorm:"foreignKey:HoldingID" json:"employment,omitempty"`

	Expenses []RecurringExpense `gorm:"foreignKey:HoldingID" json:"expenses,omitempty"`

	// Relationships
	AssetClass  AssetClass  `gorm:"foreignKey:AssetClassID" json:"asset_class,omitempty"`
	HoldingType HoldingType `gorm:"foreignKey:HoldingTypeID" json:"holding_type,omitempty"`
}

// PropertyDetails carries rental and embedded-mortgage data for property
// holdings.
type PropertyDetails struct {
	Base
	HoldingID       string           `gorm:"type:uuid;not null;uniqueIndex" json:"holding_id"`
	IsRental        bool             `gorm:"default:false" json:"is_rental"`
	RentalIncome    float64          `gorm:"default:0" json:"rental_income"`
	RentalFrequency PaymentFrequency `gorm:"default:'monthly'" json:"rental_frequency"`
	VacancyRate     *float64         `json:"vacancy_rate,omitempty"` // percent

	// Embedded mortgage. When set, its amortizing payment is part of the
	// holding's annual expenses.
	HasMortgage        bool    `gorm:"default:false" json:"has_mortgage"`
	MortgageAmount     float64 `gorm:"default:0" json:"mortgage_amount"`
	MortgageRate       float64 `gorm:"default:0" json:"mortgage_rate"` // percent
	MortgageTermMonths int     `gorm:"default:0" json:"mortgage_term_months"`
}

// LoanDetails carries amortization data for structured loan liabilities.
// A liability without a LoanDetails record is treated as a freeform debt and
// projected by compound growth instead of amortization.
type LoanDetails struct {
	Base
	HoldingID      string     `gorm:"type:uuid;not null;uniqueIndex" json:"holding_id"`
	OriginalAmount float64    `gorm:"not null" json:"original_amount"`
	InterestRate   float64    `gorm:"not null" json:"interest_rate"` // percent
	TermMonths     int        `gorm:"not null" json:"term_months"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	Payment        *float64   `json:"payment,omitempty"` // monthly, overrides the computed payment
}

// ShareDetails carries listed-security data for share holdings.
type ShareDetails struct {
	Base
	HoldingID     string            `gorm:"type:uuid;not null;uniqueIndex" json:"holding_id"`
	Ticker        string            `json:"ticker"`
	Quantity      float64           `gorm:"default:0" json:"quantity"`
	CurrentPrice  float64           `gorm:"default:0" json:"current_price"`
	DividendYield *float64          `json:"dividend_yield,omitempty"` // percent
	Dividends     []DividendPayment `gorm:"foreignKey:ShareDetailsID" json:"dividends,omitempty"`
}

// DividendPayment is one historical dividend receipt. Used to derive income
// when no dividend yield is set.
type DividendPayment struct {
	Base
	ShareDetailsID string    `gorm:"type:uuid;not null;index" json:"share_details_id"`
	Amount         float64   `gorm:"not null" json:"amount"`
	PaidAt         time.Time `gorm:"not null" json:"paid_at"`
}

// BonusType selects how an employment bonus is computed.
type BonusType string

const (
	BonusTypeFixed      BonusType = "fixed"
	BonusTypePercentage BonusType = "percentage"
	BonusTypeMixed      BonusType = "mixed"
)

// EmploymentDetails carries salary data for employment/income holdings.
type EmploymentDetails struct {
	Base
	HoldingID       string           `gorm:"type:uuid;not null;uniqueIndex" json:"holding_id"`
	BaseSalary      float64          `gorm:"not null" json:"base_salary"`
	SalaryFrequency PaymentFrequency `gorm:"default:'annually'" json:"salary_frequency"`
	BonusType       BonusType        `gorm:"default:'fixed'" json:"bonus_type"`
	BonusAmount     float64          `gorm:"default:0" json:"bonus_amount"`
	BonusPercent    float64          `gorm:"default:0" json:"bonus_percent"` // percent of annual salary
	BonusLikelihood *float64         `json:"bonus_likelihood,omitempty"`     // percent, scales the bonus when < 100
}
