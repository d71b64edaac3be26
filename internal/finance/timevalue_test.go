package finance

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFutureValue(t *testing.T) {
	t.Run("zero_rate_is_noop", func(t *testing.T) {
		for _, years := range []float64{0, 1, 7, 30} {
			if got := FutureValue(1000, 0, years, 1); got != 1000 {
				t.Errorf("FutureValue(1000, 0, %v) = %v, want 1000", years, got)
			}
		}
	})

	t.Run("annual_compounding", func(t *testing.T) {
		got := FutureValue(10000, 0.05, 10, 1)
		want := 10000 * math.Pow(1.05, 10)
		if !almostEqual(got, want, 1e-9) {
			t.Errorf("FutureValue = %v, want %v", got, want)
		}
	})

	t.Run("monthly_compounding_beats_annual", func(t *testing.T) {
		annual := FutureValue(10000, 0.05, 10, 1)
		monthly := FutureValue(10000, 0.05, 10, 12)
		if monthly <= annual {
			t.Errorf("monthly compounding %v should exceed annual %v", monthly, annual)
		}
	})
}

func TestPresentValueRoundTrip(t *testing.T) {
	cases := []struct {
		pv, rate, years float64
	}{
		{1000, 0.05, 10},
		{500000, 0.085, 30},
		{1, 0.001, 1},
		{250000, -0.02, 5}, // deflation, still > -1
	}
	for _, c := range cases {
		fv := FutureValue(c.pv, c.rate, c.years, 1)
		back := PresentValue(fv, c.rate, c.years, 1)
		if !almostEqual(back, c.pv, 1e-6) {
			t.Errorf("PresentValue(FutureValue(%v, %v, %v)) = %v, want %v", c.pv, c.rate, c.years, back, c.pv)
		}
	}
}

func TestLoanPayment(t *testing.T) {
	t.Run("thirty_year_mortgage", func(t *testing.T) {
		got := LoanPayment(200000, 0.045, 30, 12)
		if !almostEqual(got, 1013.37, 0.01) {
			t.Errorf("LoanPayment(200000, 4.5%%, 30y) = %v, want 1013.37", got)
		}
	})

	t.Run("zero_rate_even_split", func(t *testing.T) {
		got := LoanPayment(12000, 0, 1, 12)
		if !almostEqual(got, 1000, 1e-9) {
			t.Errorf("LoanPayment at zero rate = %v, want 1000", got)
		}
	})
}

func TestAmortizationSchedule(t *testing.T) {
	t.Run("fully_amortizes", func(t *testing.T) {
		schedule := AmortizationSchedule(200000, 0.045, 30, 12, 0)
		if len(schedule) == 0 || len(schedule) > 360 {
			t.Fatalf("expected at most 360 periods, got %d", len(schedule))
		}
		final := schedule[len(schedule)-1]
		if !almostEqual(final.RemainingBalance, 0, 0.01) {
			t.Errorf("final balance = %v, want 0", final.RemainingBalance)
		}

		totalPaid := 0.0
		for _, entry := range schedule {
			totalPaid += entry.Payment
		}
		want := LoanPayment(200000, 0.045, 30, 12) * 360
		if !almostEqual(totalPaid, want, 1.0) {
			t.Errorf("total payments = %v, want ≈ %v", totalPaid, want)
		}
	})

	t.Run("principal_plus_interest_equals_payment", func(t *testing.T) {
		schedule := AmortizationSchedule(100000, 0.06, 10, 12, 0)
		for _, entry := range schedule {
			if !almostEqual(entry.Principal+entry.Interest, entry.Payment, 1e-6) {
				t.Fatalf("period %d: principal %v + interest %v != payment %v",
					entry.Period, entry.Principal, entry.Interest, entry.Payment)
			}
		}
	})

	t.Run("explicit_period_limit", func(t *testing.T) {
		schedule := AmortizationSchedule(100000, 0.06, 10, 12, 12)
		if len(schedule) != 12 {
			t.Errorf("expected 12 periods, got %d", len(schedule))
		}
		if schedule[11].RemainingBalance >= 100000 {
			t.Errorf("balance should have decreased, got %v", schedule[11].RemainingBalance)
		}
	})

	t.Run("zero_rate", func(t *testing.T) {
		schedule := AmortizationSchedule(1200, 0, 1, 12, 0)
		if len(schedule) != 12 {
			t.Fatalf("expected 12 periods, got %d", len(schedule))
		}
		if !almostEqual(schedule[11].RemainingBalance, 0, 1e-9) {
			t.Errorf("final balance = %v, want 0", schedule[11].RemainingBalance)
		}
		if schedule[0].Interest != 0 {
			t.Errorf("interest at zero rate = %v, want 0", schedule[0].Interest)
		}
	})
}

func TestCAGR(t *testing.T) {
	t.Run("known_value", func(t *testing.T) {
		got, err := CAGR(10000, 15000, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 0.0845, 0.0001) {
			t.Errorf("CAGR = %v, want ≈ 0.0845", got)
		}
	})

	t.Run("invalid_arguments", func(t *testing.T) {
		cases := []struct {
			name                   string
			initial, final, years float64
		}{
			{"zero_initial", 0, 15000, 5},
			{"negative_initial", -100, 15000, 5},
			{"zero_years", 10000, 15000, 0},
			{"negative_years", 10000, 15000, -1},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				if _, err := CAGR(c.initial, c.final, c.years); !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("CAGR(%v, %v, %v) error = %v, want ErrInvalidArgument", c.initial, c.final, c.years, err)
				}
			})
		}
	})
}

func TestInflationAdjustedValue(t *testing.T) {
	got := InflationAdjustedValue(1000, 0.025, 10)
	want := 1000 / math.Pow(1.025, 10)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("InflationAdjustedValue = %v, want %v", got, want)
	}
	if InflationAdjustedValue(1000, 0, 10) != 1000 {
		t.Error("zero inflation should be a no-op")
	}
}

func TestRequiredPeriodicSavings(t *testing.T) {
	t.Run("goal_already_met", func(t *testing.T) {
		if got := RequiredPeriodicSavings(100000, 100000, 10, 0.05, 12); got != 0 {
			t.Errorf("expected 0 when goal already met, got %v", got)
		}
	})

	t.Run("zero_return_even_split", func(t *testing.T) {
		got := RequiredPeriodicSavings(12000, 0, 1, 0, 12)
		if !almostEqual(got, 1000, 1e-9) {
			t.Errorf("expected 1000/month, got %v", got)
		}
	})

	t.Run("contributions_reach_goal", func(t *testing.T) {
		payment := RequiredPeriodicSavings(100000, 10000, 10, 0.06, 12)
		if payment <= 0 {
			t.Fatalf("expected positive payment, got %v", payment)
		}
		// Verify: compounded savings plus contribution annuity hits the goal.
		r := 0.06 / 12
		accumulated := FutureValue(10000, 0.06, 10, 12)
		accumulated += payment * (math.Pow(1+r, 120) - 1) / r
		if !almostEqual(accumulated, 100000, 0.01) {
			t.Errorf("plan accumulates %v, want 100000", accumulated)
		}
	})
}
