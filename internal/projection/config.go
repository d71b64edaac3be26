// Package projection implements the multi-year balance sheet projection
// engine: growth-rate resolution, per-holding income and expense derivation,
// and the year-by-year simulation of asset, liability and cashflow series.
// The package is pure computation over in-memory data; it performs no I/O
// and is safe for concurrent use.
package projection

import "prospect/internal/models"

// Scenario selects which asset-class growth-rate tier applies.
type Scenario string

const (
	ScenarioLow    Scenario = "low"
	ScenarioMedium Scenario = "medium"
	ScenarioHigh   Scenario = "high"
	ScenarioCustom Scenario = "custom"
)

// Period is a named projection horizon.
type Period string

const (
	PeriodAnnually    Period = "annually"
	PeriodFiveYears   Period = "5-years"
	PeriodTenYears    Period = "10-years"
	PeriodTwentyYears Period = "20-years"
	PeriodThirtyYears Period = "30-years"
	PeriodRetirement  Period = "retirement"
)

// Years maps the named period to an explicit year count. Retirement uses a
// fixed long horizon; a retirement-age-aware horizon needs data this system
// does not collect.
func (p Period) Years() int {
	switch p {
	case PeriodAnnually:
		return 1
	case PeriodFiveYears:
		return 5
	case PeriodTenYears:
		return 10
	case PeriodTwentyYears:
		return 20
	case PeriodThirtyYears:
		return 30
	case PeriodRetirement:
		return 40
	default:
		return 10
	}
}

// Config holds the assumptions for one projection run. It is built per
// request from system defaults merged with caller overrides and is not
// mutated by the engine.
type Config struct {
	// InflationRate in percent. When > 0 the nominal result series are
	// discounted into present-dollar terms as a post-pass.
	InflationRate float64  `json:"inflation_rate"`
	Scenario      Scenario `json:"scenario"`

	IncludeIncome   bool `json:"include_income"`
	IncludeExpenses bool `json:"include_expenses"`

	Period         Period `json:"period"`
	YearsToProject int    `json:"years_to_project"`

	// ReinvestIncome adds the prior year's income, compounded at the
	// holding's own growth rate, to the projected asset value.
	ReinvestIncome bool `json:"reinvest_income"`

	// Non-empty allow-lists restrict the projection universe.
	EnabledAssetClasses []string `json:"enabled_asset_classes,omitempty"`
	EnabledHoldingTypes []string `json:"enabled_holding_types,omitempty"`

	IncludeHidden      bool `json:"include_hidden"`
	ExcludeLiabilities bool `json:"exclude_liabilities"`

	// CalculateAfterTax is accepted and echoed but no tax engine exists
	// behind it; values are always pre-tax.
	CalculateAfterTax bool `json:"calculate_after_tax"`
}

// Horizon returns the effective number of years to project: the explicit
// count when set, otherwise the named period's count.
func (c Config) Horizon() int {
	if c.YearsToProject > 0 {
		return c.YearsToProject
	}
	return c.Period.Years()
}

// DefaultConfig derives the default projection configuration from system
// settings and the user's interface mode. Advanced mode projects further out
// and turns the after-tax flag on.
func DefaultConfig(settings models.SystemSettings, mode models.UserMode) Config {
	inflation := settings.InflationRateMedium
	if inflation == 0 {
		inflation = 2.5
	}

	cfg := Config{
		InflationRate:   inflation,
		Scenario:        ScenarioMedium,
		IncludeIncome:   true,
		IncludeExpenses: true,
		Period:          PeriodTenYears,
		ReinvestIncome:  false,
		IncludeHidden:   false,
	}

	if mode == models.UserModeAdvanced {
		cfg.YearsToProject = settings.AdvancedModeYears
		if cfg.YearsToProject == 0 {
			cfg.YearsToProject = 30
		}
		cfg.Period = PeriodThirtyYears
		cfg.CalculateAfterTax = true
	} else {
		cfg.YearsToProject = settings.BasicModeYears
		if cfg.YearsToProject == 0 {
			cfg.YearsToProject = 10
		}
	}

	return cfg
}
