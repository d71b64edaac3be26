package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHoldingFlow_PropertyLifecycle(t *testing.T) {
	app := setupApp(t)

	access, _, _ := app.registerUser(t, "property@test.com", "password123")
	classID := app.seededAssetClass(t, access, "Real Estate")
	typeID := app.seededHoldingType(t, access, "Personal")

	// Step 1: Create a rental property with an embedded mortgage.
	body := fmt.Sprintf(`{
		"asset_class_id": %q,
		"holding_type_id": %q,
		"kind": "property",
		"name": "Beach House",
		"value": 750000,
		"property": {
			"is_rental": true,
			"rental_income": 650,
			"rental_frequency": "weekly",
			"has_mortgage": true,
			"mortgage_amount": 400000,
			"mortgage_rate": 5.5,
			"mortgage_term_months": 360
		}
	}`, classID, typeID)
	rec := app.request("POST", "/api/v1/holdings", body, access)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create holding failed: %d %s", rec.Code, rec.Body.String())
	}
	holding := parseJSON(t, rec)["holding"].(map[string]interface{})
	holdingID := holding["id"].(string)
	property := holding["property"].(map[string]interface{})
	if property["mortgage_amount"] != float64(400000) {
		t.Errorf("mortgage amount = %v, want 400000", property["mortgage_amount"])
	}

	// Step 2: Attach a recurring expense.
	rec = app.request("POST", "/api/v1/holdings/"+holdingID+"/expenses",
		`{"name":"Council Rates","amount":500,"frequency":"quarterly"}`, access)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["annual_total"] != float64(2000) {
		t.Errorf("annual total = %v, want 2000", expense["annual_total"])
	}
	expenseID := expense["id"].(string)

	// Step 3: Revalue the property.
	update := fmt.Sprintf(`{
		"asset_class_id": %q,
		"holding_type_id": %q,
		"kind": "property",
		"name": "Beach House",
		"value": 800000
	}`, classID, typeID)
	rec = app.request("PUT", "/api/v1/holdings/"+holdingID, update, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("update holding failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["holding"].(map[string]interface{})
	if updated["value"] != float64(800000) {
		t.Errorf("value = %v, want 800000", updated["value"])
	}

	// Step 4: List includes the holding with its expense.
	rec = app.request("GET", "/api/v1/holdings", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("list holdings failed: %d %s", rec.Code, rec.Body.String())
	}
	list := parseJSON(t, rec)
	if list["total_items"] != float64(1) {
		t.Errorf("total items = %v, want 1", list["total_items"])
	}

	// Step 5: Remove the expense, then the holding.
	rec = app.request("DELETE", "/api/v1/holdings/"+holdingID+"/expenses/"+expenseID, "", access)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove expense failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/holdings/"+holdingID, "", access)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete holding failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/holdings/"+holdingID, "", access)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestHoldingFlow_KindPayloadMismatch(t *testing.T) {
	app := setupApp(t)

	access, _, _ := app.registerUser(t, "mismatch@test.com", "password123")
	classID := app.seededAssetClass(t, access, "Cash")
	typeID := app.seededHoldingType(t, access, "Personal")

	// A cash holding cannot carry a loan payload.
	body := fmt.Sprintf(`{
		"asset_class_id": %q,
		"holding_type_id": %q,
		"kind": "cash",
		"name": "Savings",
		"value": 20000,
		"loan": {"original_amount": 10000, "interest_rate": 6, "term_months": 60}
	}`, classID, typeID)
	rec := app.request("POST", "/api/v1/holdings", body, access)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "KIND_PAYLOAD_MISMATCH" {
		t.Errorf("expected KIND_PAYLOAD_MISMATCH, got %v", errObj["code"])
	}
}

func TestHoldingFlow_UserIsolation(t *testing.T) {
	app := setupApp(t)

	aliceToken, _, _ := app.registerUser(t, "alice@test.com", "password123")
	bobToken, _, _ := app.registerUser(t, "bob@test.com", "password123")

	classID := app.seededAssetClass(t, aliceToken, "Cash")
	typeID := app.seededHoldingType(t, aliceToken, "Personal")

	body := fmt.Sprintf(`{
		"asset_class_id": %q,
		"holding_type_id": %q,
		"kind": "cash",
		"name": "Alice Savings",
		"value": 5000
	}`, classID, typeID)
	rec := app.request("POST", "/api/v1/holdings", body, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create holding failed: %d %s", rec.Code, rec.Body.String())
	}
	holdingID := parseJSON(t, rec)["holding"].(map[string]interface{})["id"].(string)

	// Bob cannot see or delete Alice's holding.
	rec = app.request("GET", "/api/v1/holdings/"+holdingID, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for stranger read, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/holdings/"+holdingID, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for stranger delete, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/holdings", "", bobToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list holdings failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := parseJSON(t, rec)["total_items"]; got != float64(0) {
		t.Errorf("bob's total items = %v, want 0", got)
	}
}
