// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetwise/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("budget_type", validateBudgetType)
		_ = v.RegisterValidation("budget_status", validateBudgetStatus)
		_ = v.RegisterValidation("budget_priority", validateBudgetPriority)
		_ = v.RegisterValidation("recurring_frequency", validateRecurringFrequency)
		_ = v.RegisterValidation("export_type", validateExportType)
		_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateBudgetType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "custom":
		return true
	}
	return false
}

func validateBudgetStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "completed", "paused", "locked", "archived":
		return true
	}
	return false
}

func validateBudgetPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateRecurringFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "monthly":
		return true
	}
	return false
}

func validateExportType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "monthly", "custom":
		return true
	}
	return false
}

// validateLedgerDate accepts YYYY-MM-DD strings; empty passes so optional
// fields can combine it with omitempty.
func validateLedgerDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
