package projection

import (
	"strings"
	"time"

	"prospect/internal/finance"
	"prospect/internal/models"
)

// Kind returns the holding's behavioural variant. The explicit tag wins;
// records created before the tag existed fall back to matching the asset
// class name, which is kept only as a compatibility shim.
func Kind(h *models.Holding, class *models.AssetClass) models.HoldingKind {
	if h.Kind != "" {
		return h.Kind
	}
	if class == nil {
		return models.HoldingKindOther
	}
	name := strings.ToLower(class.Name)
	switch {
	case strings.Contains(name, "property") || strings.Contains(name, "real estate"):
		return models.HoldingKindProperty
	case strings.Contains(name, "cash") || strings.Contains(name, "bank"):
		return models.HoldingKindCash
	case strings.Contains(name, "share") || strings.Contains(name, "stock"):
		return models.HoldingKindShares
	case strings.Contains(name, "income") || strings.Contains(name, "employment") || strings.Contains(name, "salary"):
		return models.HoldingKindEmployment
	case strings.Contains(name, "loan") || strings.Contains(name, "mortgage") || strings.Contains(name, "debt"):
		return models.HoldingKindLoan
	default:
		return models.HoldingKindOther
	}
}

// AnnualIncome derives the holding's annual income in today's dollars.
// Liabilities never produce income. now anchors the trailing-twelve-month
// dividend window.
func AnnualIncome(h *models.Holding, class *models.AssetClass, now time.Time) float64 {
	if h.IsLiability {
		return 0
	}

	switch Kind(h, class) {
	case models.HoldingKindProperty:
		if h.Property != nil && h.Property.IsRental {
			return rentalIncome(h.Property)
		}
	case models.HoldingKindCash:
		if h.InterestRate != nil {
			return h.Value * (*h.InterestRate / 100)
		}
		return 0
	case models.HoldingKindShares:
		if h.Shares != nil {
			return dividendIncome(h, h.Shares, now)
		}
		return 0
	case models.HoldingKindEmployment:
		if h.Employment != nil {
			return employmentIncome(h.Employment)
		}
		return 0
	}

	return h.Value * ResolveIncomeYield(h, class)
}

func rentalIncome(p *models.PropertyDetails) float64 {
	income := p.RentalIncome * p.RentalFrequency.PeriodsPerYear()
	if p.VacancyRate != nil {
		income *= 1 - *p.VacancyRate/100
	}
	return income
}

func dividendIncome(h *models.Holding, shares *models.ShareDetails, now time.Time) float64 {
	if shares.DividendYield != nil {
		return h.Value * (*shares.DividendYield / 100)
	}
	cutoff := now.AddDate(-1, 0, 0)
	var total float64
	for i := range shares.Dividends {
		paid := shares.Dividends[i].PaidAt
		if paid.After(cutoff) && !paid.After(now) {
			total += shares.Dividends[i].Amount
		}
	}
	return total
}

func employmentIncome(e *models.EmploymentDetails) float64 {
	salary := e.BaseSalary * e.SalaryFrequency.PeriodsPerYear()

	var bonus float64
	switch e.BonusType {
	case models.BonusTypeFixed:
		bonus = e.BonusAmount
	case models.BonusTypePercentage:
		bonus = salary * e.BonusPercent / 100
	case models.BonusTypeMixed:
		bonus = e.BonusAmount + salary*e.BonusPercent/100
	}
	if e.BonusLikelihood != nil && *e.BonusLikelihood < 100 {
		bonus *= *e.BonusLikelihood / 100
	}

	return salary + bonus
}

// AnnualExpenses derives the holding's annual expenses: the precomputed
// annual totals of its recurring expenses, plus the amortizing payment of an
// embedded mortgage. Expenses apply to assets and liabilities alike.
func AnnualExpenses(h *models.Holding) float64 {
	var total float64
	for i := range h.Expenses {
		total += h.Expenses[i].AnnualTotal
	}

	if p := h.Property; p != nil && p.HasMortgage && p.MortgageAmount > 0 && p.MortgageTermMonths > 0 {
		payment := finance.LoanPayment(p.MortgageAmount, p.MortgageRate/100, float64(p.MortgageTermMonths)/12, 12)
		total += payment * 12
	}

	return total
}
