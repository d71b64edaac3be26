package services

import (
	"testing"
	"time"

	"prospect/internal/pagination"
	"prospect/internal/testutil"
)

func TestComputeAndRecordSnapshots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSnapshotService(db)

	user := testutil.CreateTestUser(t, db)
	class := testutil.CreateTestAssetClass(t, db, user.ID, "Real Estate")
	loans := testutil.CreateTestLiabilityClass(t, db, user.ID)
	ht := testutil.CreateTestHoldingType(t, db, user.ID)

	testutil.CreateTestHolding(t, db, user.ID, class.ID, ht.ID, 500000)
	testutil.CreateTestHolding(t, db, user.ID, class.ID, ht.ID, 50000)
	testutil.CreateTestLiability(t, db, user.ID, loans.ID, ht.ID, 300000)

	recordedAt := time.Date(2026, 8, 25, 3, 0, 0, 0, time.UTC)
	count, err := svc.ComputeAndRecordSnapshots(recordedAt)
	testutil.AssertNoError(t, err)
	if count < 1 {
		t.Fatalf("recorded %d snapshots, want at least 1", count)
	}

	page := pagination.PageRequest{Page: 1, PageSize: 10}
	result, err := svc.GetSnapshots(user.ID, time.Time{}, time.Time{}, page)
	testutil.AssertNoError(t, err)
	if result.TotalItems != 1 {
		t.Fatalf("snapshots = %d, want 1", result.TotalItems)
	}

	snap := result.Data[0]
	if snap.TotalAssets != 550000 {
		t.Errorf("assets = %v, want 550000", snap.TotalAssets)
	}
	if snap.TotalLiabilities != 300000 {
		t.Errorf("liabilities = %v, want 300000", snap.TotalLiabilities)
	}
	if snap.NetWorth != 250000 {
		t.Errorf("net worth = %v, want 250000", snap.NetWorth)
	}

	t.Run("same_day_rerun_replaces", func(t *testing.T) {
		testutil.CreateTestHolding(t, db, user.ID, class.ID, ht.ID, 10000)

		later := recordedAt.Add(6 * time.Hour)
		_, err := svc.ComputeAndRecordSnapshots(later)
		testutil.AssertNoError(t, err)

		result, err := svc.GetSnapshots(user.ID, time.Time{}, time.Time{}, page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Fatalf("snapshots = %d, want 1 after same-day rerun", result.TotalItems)
		}
		if result.Data[0].TotalAssets != 560000 {
			t.Errorf("assets = %v, want 560000 after rerun", result.Data[0].TotalAssets)
		}
	})

	t.Run("next_day_appends", func(t *testing.T) {
		nextDay := recordedAt.AddDate(0, 0, 1)
		_, err := svc.ComputeAndRecordSnapshots(nextDay)
		testutil.AssertNoError(t, err)

		result, err := svc.GetSnapshots(user.ID, time.Time{}, time.Time{}, page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Fatalf("snapshots = %d, want 2", result.TotalItems)
		}
		// Newest first.
		if !result.Data[0].RecordedAt.After(result.Data[1].RecordedAt) {
			t.Error("snapshots should be ordered newest first")
		}
	})

	t.Run("date_range_filter", func(t *testing.T) {
		from := recordedAt.AddDate(0, 0, 1)
		result, err := svc.GetSnapshots(user.ID, from, time.Time{}, page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("snapshots in range = %d, want 1", result.TotalItems)
		}
	})
}
