package services

import (
	"testing"

	"prospect/internal/models"
	"prospect/internal/testutil"
)

func TestSettingsSingleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSettingsService(db)

	first, err := svc.Get()
	testutil.AssertNoError(t, err)
	if first.InflationRateMedium != 2.5 {
		t.Errorf("medium inflation = %v, want default 2.5", first.InflationRateMedium)
	}
	if first.BasicModeYears != 10 || first.AdvancedModeYears != 30 {
		t.Errorf("mode years = %d/%d, want 10/30", first.BasicModeYears, first.AdvancedModeYears)
	}

	second, err := svc.Get()
	testutil.AssertNoError(t, err)
	if second.ID != first.ID {
		t.Error("repeated Get should return the same singleton row")
	}

	t.Run("update", func(t *testing.T) {
		updated, err := svc.Update(&models.SystemSettings{
			InflationRateLow:    1,
			InflationRateMedium: 3,
			InflationRateHigh:   5,
			BasicModeYears:      15,
			AdvancedModeYears:   40,
		})
		testutil.AssertNoError(t, err)
		if updated.ID != first.ID {
			t.Error("update should keep the singleton row")
		}

		fetched, err := svc.Get()
		testutil.AssertNoError(t, err)
		if fetched.InflationRateMedium != 3 || fetched.BasicModeYears != 15 {
			t.Errorf("settings did not persist: %+v", fetched)
		}
	})
}
