package projection

import (
	"math"
	"time"

	"prospect/internal/finance"
	"prospect/internal/models"
)

// Input is everything one projection run needs. The caller fetches holdings
// (with their payloads and expenses preloaded) and the class/type lookups;
// the engine itself never touches storage. Now anchors year labels and loan
// elapsed-time math so runs are deterministic.
type Input struct {
	Holdings []models.Holding
	Classes  map[string]models.AssetClass
	Types    map[string]models.HoldingType
	Config   Config
	Now      time.Time
}

// Series is one breakdown dimension entry: a value per projected year.
type Series struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Result holds the projected trajectories. All slices have length
// Horizon()+1, index 0 being present-day values. Liabilities contribute
// negatively to breakdown series so per-class and per-type net positions are
// directly readable.
type Result struct {
	Years                []int     `json:"years"`
	TotalAssets          []float64 `json:"total_assets"`
	TotalLiabilities     []float64 `json:"total_liabilities"`
	NetWorth             []float64 `json:"net_worth"`
	TotalIncome          []float64 `json:"total_income"`
	TotalExpenses        []float64 `json:"total_expenses"`
	NetCashflow          []float64 `json:"net_cashflow"`
	AssetClassBreakdown  []Series  `json:"asset_class_breakdown"`
	HoldingTypeBreakdown []Series  `json:"holding_type_breakdown"`
	InflationAdjusted    bool      `json:"inflation_adjusted"`
}

// Project runs the multi-year simulation. An empty or fully filtered holding
// set is a valid financial state and yields an all-zero result, never an
// error.
func Project(in Input) *Result {
	cfg := in.Config
	years := cfg.Horizon()

	holdings := filterHoldings(in.Holdings, cfg)

	result := &Result{
		Years:                make([]int, years+1),
		TotalAssets:          make([]float64, years+1),
		TotalLiabilities:     make([]float64, years+1),
		NetWorth:             make([]float64, years+1),
		TotalIncome:          make([]float64, years+1),
		TotalExpenses:        make([]float64, years+1),
		NetCashflow:          make([]float64, years+1),
		AssetClassBreakdown:  []Series{},
		HoldingTypeBreakdown: []Series{},
		InflationAdjusted:    cfg.InflationRate > 0,
	}
	for i := 0; i <= years; i++ {
		result.Years[i] = in.Now.Year() + i
	}

	classSeries := newBreakdown()
	typeSeries := newBreakdown()

	for i := range holdings {
		h := &holdings[i]
		class := lookupClass(in.Classes, h.AssetClassID)

		growth := ResolveGrowthRate(h, class, cfg.Scenario)
		baseIncome := AnnualIncome(h, class, in.Now)
		baseExpenses := AnnualExpenses(h)

		for year := 0; year <= years; year++ {
			value := holdingValueAt(h, growth, baseIncome, cfg, year, in.Now)

			signed := value
			if h.IsLiability {
				result.TotalLiabilities[year] += value
				signed = -value
			} else {
				result.TotalAssets[year] += value
			}
			classSeries.add(h.AssetClassID, className(in.Classes, h.AssetClassID), year, years, signed)
			typeSeries.add(h.HoldingTypeID, typeName(in.Types, h.HoldingTypeID), year, years, signed)

			if cfg.IncludeIncome {
				// Income tracks the holding's own growth rate.
				result.TotalIncome[year] += baseIncome * math.Pow(1+growth, float64(year))
			}
			if cfg.IncludeExpenses {
				// Expenses track inflation, not asset growth.
				result.TotalExpenses[year] += baseExpenses * math.Pow(1+cfg.InflationRate/100, float64(year))
			}
		}
	}

	for year := 0; year <= years; year++ {
		result.NetWorth[year] = result.TotalAssets[year] - result.TotalLiabilities[year]
		result.NetCashflow[year] = result.TotalIncome[year] - result.TotalExpenses[year]
	}

	result.AssetClassBreakdown = classSeries.series()
	result.HoldingTypeBreakdown = typeSeries.series()

	if cfg.InflationRate > 0 {
		normalizeForInflation(result, cfg.InflationRate)
	}

	return result
}

// holdingValueAt is the pure per-holding-per-year valuation. Year 0 is the
// present-day value with no growth applied.
func holdingValueAt(h *models.Holding, growth, baseIncome float64, cfg Config, year int, now time.Time) float64 {
	if year == 0 {
		return h.Value
	}

	if !h.IsLiability {
		value := finance.FutureValue(h.Value, growth, float64(year), 1)
		if cfg.ReinvestIncome {
			// Simplified reinvestment: only the prior year's income is
			// compounded forward at the asset's growth rate, not accumulated
			// year over year.
			value += baseIncome * math.Pow(1+growth, float64(year-1))
		}
		return value
	}

	if loan := h.Loan; loan != nil && loan.TermMonths > 0 && loan.StartDate != nil {
		return amortizedBalance(h.Value, loan, year, now)
	}

	// Freeform debt with no amortization data grows like anything else.
	return finance.FutureValue(h.Value, growth, float64(year), 1)
}

// amortizedBalance simulates the loan month by month from the current
// balance and returns the balance after projecting year years forward. Zero
// once the remaining term is exhausted.
func amortizedBalance(balance float64, loan *models.LoanDetails, year int, now time.Time) float64 {
	elapsed := monthsBetween(*loan.StartDate, now)
	remaining := loan.TermMonths - elapsed
	if remaining <= 0 {
		return 0
	}

	monthsAhead := year * 12
	if monthsAhead >= remaining {
		return 0
	}

	rate := loan.InterestRate / 100
	payment := finance.LoanPayment(loan.OriginalAmount, rate, float64(loan.TermMonths)/12, 12)
	if loan.Payment != nil && *loan.Payment > 0 {
		payment = *loan.Payment
	}

	for month := 0; month < monthsAhead; month++ {
		principal, _ := finance.PrincipalAndInterestSplit(balance, rate, payment, 12)
		balance -= principal
		if balance <= 0 {
			return 0
		}
	}
	return balance
}

// monthsBetween returns whole months elapsed from start to now, clamped at
// zero for future-dated loans.
func monthsBetween(start, now time.Time) int {
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if now.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// filterHoldings applies the configuration's pre-pass: hidden holdings,
// liability exclusion, and the class/type allow-lists.
func filterHoldings(holdings []models.Holding, cfg Config) []models.Holding {
	classAllowed := allowSet(cfg.EnabledAssetClasses)
	typeAllowed := allowSet(cfg.EnabledHoldingTypes)

	kept := make([]models.Holding, 0, len(holdings))
	for i := range holdings {
		h := holdings[i]
		if h.IsHidden && !cfg.IncludeHidden {
			continue
		}
		if h.IsLiability && cfg.ExcludeLiabilities {
			continue
		}
		if classAllowed != nil && !classAllowed[h.AssetClassID] {
			continue
		}
		if typeAllowed != nil && !typeAllowed[h.HoldingTypeID] {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

func allowSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// normalizeForInflation divides every monetary series by (1+i)^year,
// converting nominal dollars into present-dollar terms. Applied strictly
// after the nominal simulation so growth and discounting are never conflated.
func normalizeForInflation(r *Result, inflationRate float64) {
	factorAt := func(year int) float64 {
		return math.Pow(1+inflationRate/100, float64(year))
	}
	for year := range r.Years {
		f := factorAt(year)
		r.TotalAssets[year] /= f
		r.TotalLiabilities[year] /= f
		r.NetWorth[year] /= f
		r.TotalIncome[year] /= f
		r.TotalExpenses[year] /= f
		r.NetCashflow[year] /= f
	}
	for s := range r.AssetClassBreakdown {
		for year := range r.AssetClassBreakdown[s].Values {
			r.AssetClassBreakdown[s].Values[year] /= factorAt(year)
		}
	}
	for s := range r.HoldingTypeBreakdown {
		for year := range r.HoldingTypeBreakdown[s].Values {
			r.HoldingTypeBreakdown[s].Values[year] /= factorAt(year)
		}
	}
}

// breakdown accumulates per-dimension series preserving first-seen order so
// output is deterministic.
type breakdown struct {
	order []string
	byID  map[string]*Series
}

func newBreakdown() *breakdown {
	return &breakdown{byID: make(map[string]*Series)}
}

func (b *breakdown) add(id, name string, year, years int, value float64) {
	s, ok := b.byID[id]
	if !ok {
		s = &Series{ID: id, Name: name, Values: make([]float64, years+1)}
		b.byID[id] = s
		b.order = append(b.order, id)
	}
	s.Values[year] += value
}

func (b *breakdown) series() []Series {
	out := make([]Series, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.byID[id])
	}
	return out
}

func lookupClass(classes map[string]models.AssetClass, id string) *models.AssetClass {
	if class, ok := classes[id]; ok {
		return &class
	}
	return nil
}

func className(classes map[string]models.AssetClass, id string) string {
	if class, ok := classes[id]; ok {
		return class.Name
	}
	return ""
}

func typeName(types map[string]models.HoldingType, id string) string {
	if t, ok := types[id]; ok {
		return t.Name
	}
	return ""
}
