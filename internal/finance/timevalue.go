// Package finance provides pure time-value-of-money functions: compounding,
// discounting, loan amortization and savings-goal math. All functions are
// deterministic and side-effect free; rates are decimals (0.05 = 5%).
package finance

import (
	"errors"
	"math"
)

// ErrInvalidArgument is returned when a function is called outside its
// mathematical domain.
var ErrInvalidArgument = errors.New("finance: invalid argument")

// FutureValue compounds pv forward at an annual rate for the given number of
// years, compounding compoundingPerYear times per year.
func FutureValue(pv, rate, years float64, compoundingPerYear int) float64 {
	m := float64(compoundingPerYear)
	return pv * math.Pow(1+rate/m, years*m)
}

// PresentValue discounts fv back to today at an annual rate.
func PresentValue(fv, rate, years float64, compoundingPerYear int) float64 {
	m := float64(compoundingPerYear)
	return fv / math.Pow(1+rate/m, years*m)
}

// LoanPayment returns the fixed periodic payment that fully amortizes
// principal over the term. At a zero rate it degrades to an even split of
// the principal across all payments.
func LoanPayment(principal, rate, years float64, paymentsPerYear int) float64 {
	n := years * float64(paymentsPerYear)
	if n <= 0 {
		return 0
	}
	if rate == 0 {
		return principal / n
	}
	r := rate / float64(paymentsPerYear)
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// PrincipalAndInterestSplit splits one payment against the current balance
// into its principal and interest portions.
func PrincipalAndInterestSplit(balance, rate, payment float64, paymentsPerYear int) (principal, interest float64) {
	interest = balance * rate / float64(paymentsPerYear)
	principal = payment - interest
	return principal, interest
}

// ScheduleEntry is one period of an amortization schedule.
type ScheduleEntry struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// AmortizationSchedule generates a full fixed-payment schedule. periods <= 0
// means the natural term (years × paymentsPerYear). The balance is clamped
// at zero and the schedule stops early once the loan is repaid.
func AmortizationSchedule(principal, rate, years float64, paymentsPerYear, periods int) []ScheduleEntry {
	if periods <= 0 {
		periods = int(math.Round(years * float64(paymentsPerYear)))
	}
	payment := LoanPayment(principal, rate, years, paymentsPerYear)

	schedule := make([]ScheduleEntry, 0, periods)
	balance := principal
	for period := 1; period <= periods; period++ {
		principalPart, interest := PrincipalAndInterestSplit(balance, rate, payment, paymentsPerYear)
		if principalPart > balance {
			// Final payment only needs to clear the remaining balance.
			principalPart = balance
			payment = principalPart + interest
		}
		balance -= principalPart
		if balance < 0 {
			balance = 0
		}
		schedule = append(schedule, ScheduleEntry{
			Period:           period,
			Payment:          payment,
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: balance,
		})
		if balance == 0 {
			break
		}
	}
	return schedule
}

// CAGR returns the compound annual growth rate between an initial and final
// value. Fails with ErrInvalidArgument when initial <= 0 or years <= 0,
// where the result is mathematically undefined.
func CAGR(initial, final, years float64) (float64, error) {
	if initial <= 0 || years <= 0 {
		return 0, ErrInvalidArgument
	}
	return math.Pow(final/initial, 1/years) - 1, nil
}

// InflationAdjustedValue converts a nominal future value into present-dollar
// terms by discounting at the inflation rate.
func InflationAdjustedValue(pv, inflationRate, years float64) float64 {
	return pv / math.Pow(1+inflationRate, years)
}

// RequiredPeriodicSavings returns the periodic contribution needed for
// currentSavings plus a contribution annuity to reach goal after the given
// number of years. Returns 0 when the compounded current savings alone meet
// the goal. At a zero expected return it degrades to an even split of the
// shortfall.
func RequiredPeriodicSavings(goal, currentSavings, years, expectedReturn float64, contributionsPerYear int) float64 {
	m := float64(contributionsPerYear)
	periods := years * m

	compounded := FutureValue(currentSavings, expectedReturn, years, contributionsPerYear)
	if compounded >= goal {
		return 0
	}
	shortfall := goal - compounded

	if expectedReturn == 0 {
		return shortfall / periods
	}
	r := expectedReturn / m
	return shortfall * r / (math.Pow(1+r, periods) - 1)
}
