package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prospect/internal/handlers"
	"prospect/internal/logger"
	"prospect/internal/middleware"
	"prospect/internal/models"
	"prospect/internal/services"
	"prospect/internal/validator"
)

// testPipelineKey is the static API key wired into the pipeline routes.
const testPipelineKey = "integration-pipeline-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.AssetClass{},
		&models.ExpenseCategory{},
		&models.HoldingType{},
		&models.Holding{},
		&models.PropertyDetails{},
		&models.LoanDetails{},
		&models.ShareDetails{},
		&models.DividendPayment{},
		&models.EmploymentDetails{},
		&models.RecurringExpense{},
		&models.SystemSettings{},
		&models.NetWorthSnapshot{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	assetClassService := services.NewAssetClassService(db)
	holdingTypeService := services.NewHoldingTypeService(db)
	userService := services.NewUserService(db, assetClassService, holdingTypeService)
	holdingService := services.NewHoldingService(db)
	settingsService := services.NewSettingsService(db)
	projectionService := services.NewProjectionService(db, holdingService, settingsService)
	snapshotService := services.NewSnapshotService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	assetClassHandler := handlers.NewAssetClassHandler(assetClassService, auditService)
	holdingTypeHandler := handlers.NewHoldingTypeHandler(holdingTypeService, auditService)
	holdingHandler := handlers.NewHoldingHandler(holdingService, auditService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	toolsHandler := handlers.NewToolsHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Pipeline routes (API-key auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(testPipelineKey))
	pipeline.POST("/snapshots", snapshotHandler.TriggerSnapshots)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/mode", authHandler.UpdateMode)

	assetClasses := protected.Group("/asset-classes")
	assetClasses.POST("", assetClassHandler.CreateAssetClass)
	assetClasses.GET("", assetClassHandler.ListAssetClasses)
	assetClasses.GET("/:id", assetClassHandler.GetAssetClass)
	assetClasses.PUT("/:id", assetClassHandler.UpdateAssetClass)
	assetClasses.DELETE("/:id", assetClassHandler.DeleteAssetClass)

	holdingTypes := protected.Group("/holding-types")
	holdingTypes.POST("", holdingTypeHandler.CreateHoldingType)
	holdingTypes.GET("", holdingTypeHandler.ListHoldingTypes)
	holdingTypes.GET("/:id", holdingTypeHandler.GetHoldingType)
	holdingTypes.PUT("/:id", holdingTypeHandler.UpdateHoldingType)
	holdingTypes.DELETE("/:id", holdingTypeHandler.DeleteHoldingType)

	holdings := protected.Group("/holdings")
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)
	holdings.POST("/:id/expenses", holdingHandler.AddExpense)
	holdings.DELETE("/:id/expenses/:expenseId", holdingHandler.RemoveExpense)

	projections := protected.Group("/projections")
	projections.GET("/defaults", projectionHandler.GetDefaults)
	projections.POST("/run", projectionHandler.Run)

	protected.GET("/snapshots", snapshotHandler.ListSnapshots)

	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	tools := protected.Group("/tools")
	tools.POST("/loan-schedule", toolsHandler.LoanSchedule)
	tools.POST("/savings-goal", toolsHandler.SavingsGoal)
	tools.POST("/cagr", toolsHandler.CAGR)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// pipelineRequest makes a request authenticated with the pipeline API key.
func (app *testApp) pipelineRequest(method, path, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// seededAssetClass resolves one of the user's seeded asset classes by name.
func (app *testApp) seededAssetClass(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("GET", "/api/v1/asset-classes", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list asset classes failed: %d %s", rec.Code, rec.Body.String())
	}
	for _, raw := range parseJSON(t, rec)["asset_classes"].([]interface{}) {
		class := raw.(map[string]interface{})
		if class["name"] == name {
			return class["id"].(string)
		}
	}
	t.Fatalf("seeded asset class %q not found", name)
	return ""
}

// seededHoldingType resolves one of the user's seeded holding types by name.
func (app *testApp) seededHoldingType(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("GET", "/api/v1/holding-types", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list holding types failed: %d %s", rec.Code, rec.Body.String())
	}
	for _, raw := range parseJSON(t, rec)["holding_types"].([]interface{}) {
		ht := raw.(map[string]interface{})
		if ht["name"] == name {
			return ht["id"].(string)
		}
	}
	t.Fatalf("seeded holding type %q not found", name)
	return ""
}
