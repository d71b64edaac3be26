// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("holding_kind", validateHoldingKind)
		_ = v.RegisterValidation("expense_frequency", validateExpenseFrequency)
		_ = v.RegisterValidation("payment_frequency", validatePaymentFrequency)
		_ = v.RegisterValidation("bonus_type", validateBonusType)
		_ = v.RegisterValidation("scenario", validateScenario)
		_ = v.RegisterValidation("projection_period", validateProjectionPeriod)
		_ = v.RegisterValidation("user_mode", validateUserMode)
	}
}

func validateHoldingKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "property", "cash", "shares", "employment", "loan", "other":
		return true
	}
	return false
}

func validateExpenseFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "fortnightly", "monthly", "quarterly", "semi-annual", "annually":
		return true
	}
	return false
}

func validatePaymentFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "fortnightly", "monthly", "annually":
		return true
	}
	return false
}

func validateBonusType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed", "percentage", "mixed":
		return true
	}
	return false
}

func validateScenario(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high", "custom":
		return true
	}
	return false
}

func validateProjectionPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "annually", "5-years", "10-years", "20-years", "30-years", "retirement":
		return true
	}
	return false
}

func validateUserMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "basic", "advanced":
		return true
	}
	return false
}
