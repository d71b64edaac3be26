package projection

import "prospect/internal/models"

// Built-in growth rate fallbacks (decimals) for asset classes that leave a
// scenario tier unset, and the hard default used when no class is available.
const (
	defaultGrowthLow    = 0.02
	defaultGrowthMedium = 0.05
	defaultGrowthHigh   = 0.08
	defaultGrowthRate   = 0.05
)

// ResolveGrowthRate returns the effective annual growth rate for a holding
// as a decimal. Preference order: holding override, class scenario default,
// hard default. The rate is constant across the projection horizon.
func ResolveGrowthRate(h *models.Holding, class *models.AssetClass, scenario Scenario) float64 {
	if h.GrowthRate != nil {
		return *h.GrowthRate / 100
	}
	if class == nil {
		return defaultGrowthRate
	}

	switch scenario {
	case ScenarioLow:
		return classRate(class.GrowthRateLow, defaultGrowthLow)
	case ScenarioHigh:
		return classRate(class.GrowthRateHigh, defaultGrowthHigh)
	default:
		// Medium and custom both read the medium tier; custom scenarios are
		// expressed through holding-level overrides.
		return classRate(class.GrowthRateMedium, defaultGrowthMedium)
	}
}

// ResolveIncomeYield returns the effective income yield for a holding as a
// decimal: holding override, class default, else zero.
func ResolveIncomeYield(h *models.Holding, class *models.AssetClass) float64 {
	if h.IncomeYield != nil {
		return *h.IncomeYield / 100
	}
	if class != nil && class.DefaultIncomeYield != nil {
		return *class.DefaultIncomeYield / 100
	}
	return 0
}

func classRate(pct *float64, fallback float64) float64 {
	if pct == nil {
		return fallback
	}
	return *pct / 100
}
