package integration

import (
	"fmt"
	"math"
	"net/http"
	"testing"
)

func TestProjectionFlow_GrowthAndInflation(t *testing.T) {
	app := setupApp(t)

	access, _, _ := app.registerUser(t, "grow@test.com", "password123")
	classID := app.seededAssetClass(t, access, "Shares")
	typeID := app.seededHoldingType(t, access, "Personal")

	// Step 1: Create a share holding with an explicit growth override.
	body := fmt.Sprintf(`{
		"asset_class_id": %q,
		"holding_type_id": %q,
		"kind": "other",
		"name": "Index Fund",
		"value": 100000,
		"growth_rate": 4
	}`, classID, typeID)
	rec := app.request("POST", "/api/v1/holdings", body, access)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create holding failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 2: Defaults reflect basic mode.
	rec = app.request("GET", "/api/v1/projections/defaults", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("defaults failed: %d %s", rec.Code, rec.Body.String())
	}
	cfg := parseJSON(t, rec)["config"].(map[string]interface{})
	if cfg["years_to_project"] != float64(10) {
		t.Errorf("default years = %v, want 10", cfg["years_to_project"])
	}
	if cfg["scenario"] != "medium" {
		t.Errorf("default scenario = %v, want medium", cfg["scenario"])
	}

	// Step 3: Run a 5-year projection in nominal dollars.
	rec = app.request("POST", "/api/v1/projections/run",
		`{"years_to_project":5,"inflation_rate":0,"include_income":false}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("run failed: %d %s", rec.Code, rec.Body.String())
	}
	projection := parseJSON(t, rec)["projection"].(map[string]interface{})
	netWorth := projection["net_worth"].([]interface{})
	if len(netWorth) != 6 {
		t.Fatalf("series length = %d, want 6", len(netWorth))
	}
	if netWorth[0].(float64) != 100000 {
		t.Errorf("year 0 = %v, want 100000", netWorth[0])
	}
	if got, want := netWorth[1].(float64), 104000.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("year 1 = %v, want %v", got, want)
	}
	if projection["inflation_adjusted"] != false {
		t.Error("zero inflation should not flag adjustment")
	}

	// Step 4: Re-run with inflation; real values come out lower.
	rec = app.request("POST", "/api/v1/projections/run",
		`{"years_to_project":5,"inflation_rate":2.5,"include_income":false}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("run failed: %d %s", rec.Code, rec.Body.String())
	}
	adjusted := parseJSON(t, rec)["projection"].(map[string]interface{})
	if adjusted["inflation_adjusted"] != true {
		t.Error("expected inflation adjustment flag")
	}
	adjustedNetWorth := adjusted["net_worth"].([]interface{})
	if adjustedNetWorth[5].(float64) >= netWorth[5].(float64) {
		t.Errorf("real year 5 = %v should be below nominal %v", adjustedNetWorth[5], netWorth[5])
	}

	// Step 5: Out-of-range horizon is rejected.
	rec = app.request("POST", "/api/v1/projections/run", `{"years_to_project":51}`, access)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 51-year horizon, got %d", rec.Code)
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_PROJECTION" {
		t.Errorf("expected INVALID_PROJECTION, got %v", errObj["code"])
	}
}

func TestProjectionFlow_SettingsDriveDefaults(t *testing.T) {
	app := setupApp(t)

	access, _, _ := app.registerUser(t, "tuner@test.com", "password123")

	// Raise the medium inflation tier and the basic-mode horizon.
	rec := app.request("PUT", "/api/v1/settings", `{
		"inflation_rate_low": 1.5,
		"inflation_rate_medium": 3.0,
		"inflation_rate_high": 4.0,
		"basic_mode_years": 15,
		"advanced_mode_years": 30
	}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("settings update failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/projections/defaults", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("defaults failed: %d %s", rec.Code, rec.Body.String())
	}
	cfg := parseJSON(t, rec)["config"].(map[string]interface{})
	if cfg["years_to_project"] != float64(15) {
		t.Errorf("years = %v, want 15 after settings update", cfg["years_to_project"])
	}
	if cfg["inflation_rate"] != float64(3.0) {
		t.Errorf("inflation = %v, want 3.0 after settings update", cfg["inflation_rate"])
	}
}
