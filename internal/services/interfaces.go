package services

import (
	"time"

	"prospect/internal/models"
	"prospect/internal/pagination"
	"prospect/internal/projection"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string, mode models.UserMode) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	UpdateMode(userID string, mode models.UserMode) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AssetClassServicer defines the contract for asset-class business logic.
type AssetClassServicer interface {
	CreateAssetClass(userID string, class *models.AssetClass) (*models.AssetClass, error)
	GetUserAssetClasses(userID string) ([]models.AssetClass, error)
	GetAssetClassByID(userID, classID string) (*models.AssetClass, error)
	UpdateAssetClass(userID, classID string, class *models.AssetClass) (*models.AssetClass, error)
	DeleteAssetClass(userID, classID string) error
	SeedDefaults(userID string) error
}

// HoldingTypeServicer defines the contract for holding-type business logic.
type HoldingTypeServicer interface {
	CreateHoldingType(userID string, ht *models.HoldingType) (*models.HoldingType, error)
	GetUserHoldingTypes(userID string) ([]models.HoldingType, error)
	GetHoldingTypeByID(userID, typeID string) (*models.HoldingType, error)
	UpdateHoldingType(userID, typeID string, ht *models.HoldingType) (*models.HoldingType, error)
	DeleteHoldingType(userID, typeID string) error
	SeedDefaults(userID string) error
}

// HoldingFilter holds optional filter parameters for listing holdings.
type HoldingFilter struct {
	AssetClassID  *string
	HoldingTypeID *string
	Kind          *models.HoldingKind
	IncludeHidden bool
}

// HoldingServicer defines the contract for holding business logic.
type HoldingServicer interface {
	CreateHolding(userID string, holding *models.Holding) (*models.Holding, error)
	GetUserHoldings(userID string, page pagination.PageRequest, filter HoldingFilter) (*pagination.PageResponse[models.Holding], error)
	GetAllUserHoldings(userID string) ([]models.Holding, error)
	GetHoldingByID(userID, holdingID string) (*models.Holding, error)
	UpdateHolding(userID, holdingID string, holding *models.Holding) (*models.Holding, error)
	DeleteHolding(userID, holdingID string) error
	AddExpense(userID, holdingID string, expense *models.RecurringExpense) (*models.RecurringExpense, error)
	RemoveExpense(userID, holdingID, expenseID string) error
}

// ProjectionServicer defines the contract for running projections.
type ProjectionServicer interface {
	DefaultConfig(userID string) (projection.Config, error)
	Run(userID string, overrides ProjectionOverrides) (*projection.Result, error)
}

// ProjectionOverrides carries the caller's partial configuration; nil fields
// keep the derived defaults.
type ProjectionOverrides struct {
	InflationRate       *float64             `json:"inflation_rate,omitempty"`
	Scenario            *projection.Scenario `json:"scenario,omitempty" binding:"omitempty,scenario"`
	IncludeIncome       *bool                `json:"include_income,omitempty"`
	IncludeExpenses     *bool                `json:"include_expenses,omitempty"`
	Period              *projection.Period   `json:"period,omitempty" binding:"omitempty,projection_period"`
	YearsToProject      *int                 `json:"years_to_project,omitempty"`
	ReinvestIncome      *bool                `json:"reinvest_income,omitempty"`
	EnabledAssetClasses []string             `json:"enabled_asset_classes,omitempty"`
	EnabledHoldingTypes []string             `json:"enabled_holding_types,omitempty"`
	IncludeHidden       *bool                `json:"include_hidden,omitempty"`
	ExcludeLiabilities  *bool                `json:"exclude_liabilities,omitempty"`
	CalculateAfterTax   *bool                `json:"calculate_after_tax,omitempty"`
}

// SnapshotServicer defines the contract for net worth snapshots.
type SnapshotServicer interface {
	ComputeAndRecordSnapshots(recordedAt time.Time) (int, error)
	GetSnapshots(userID string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error)
}

// SettingsServicer defines the contract for system settings.
type SettingsServicer interface {
	Get() (*models.SystemSettings, error)
	Update(settings *models.SystemSettings) (*models.SystemSettings, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
