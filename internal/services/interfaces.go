package services

import (
	"budgetwise/internal/models"
)

// TransactionForm carries the user-entered fields for creating or editing a
// ledger transaction. The submitted amount is a magnitude; the stored sign
// is derived from Type. Tags come in as a comma-separated string, the way
// the entry form collects them.
type TransactionForm struct {
	Amount             float64
	Type               models.TransactionType
	Category           string
	BudgetType         models.BudgetType
	CustomBudgetID     *int64
	CustomCategory     string
	Description        string
	Date               models.Date
	Tags               string
	IsRecurring        bool
	RecurringFrequency models.RecurringFrequency
}

// CustomBudgetForm carries the user-entered fields for creating or editing
// a custom budget envelope.
type CustomBudgetForm struct {
	Name            string
	Description     string
	Priority        models.BudgetPriority
	Deadline        *models.Date
	TotalAmount     float64
	Categories      []string
	CategoryBudgets map[string]float64
}

// RolloverResult reports the outcome of one rollover run. Zero created
// transactions is a valid no-op outcome, not an error.
type RolloverResult struct {
	CreatedCount  int     `json:"createdCount"`
	TotalCredited float64 `json:"totalCredited"`
}

// MonthlySummaryEntry is one category row of the current-month summary.
type MonthlySummaryEntry struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// Confirmer presents destructive operations for user confirmation. The
// mutation happens only inside onConfirm; implementations must not mutate
// anything themselves and must invoke onConfirm only on an affirmative
// response.
type Confirmer interface {
	Confirm(title, message string, onConfirm func() error) error
}

// TransactionServicer defines transaction ledger operations.
type TransactionServicer interface {
	AddTransaction(form TransactionForm) (*models.Transaction, error)
	UpdateTransaction(id int64, form TransactionForm) (*models.Transaction, error)
	DeleteTransaction(id int64) error
	ListTransactions() []models.Transaction
	GetTransactionByID(id int64) (*models.Transaction, error)
}

// BudgetServicer defines custom budget lifecycle operations.
type BudgetServicer interface {
	CreateCustomBudget(form CustomBudgetForm) (*models.CustomBudget, error)
	UpdateCustomBudget(id int64, form CustomBudgetForm) (*models.CustomBudget, error)
	DeleteCustomBudget(id int64) error
	GetCustomBudgetByID(id int64) (*models.CustomBudget, error)
	ListCustomBudgets() []models.CustomBudget
	CountCustomBudgets() int
	SetStatus(id int64, status models.BudgetStatus) (*models.CustomBudget, error)
}

// MonthlyServicer defines monthly category budget operations.
type MonthlyServicer interface {
	SetLimit(category string, limit float64) error
	RemoveLimit(category string) error
	Limits() models.MonthlyBudgets
	Summary() []MonthlySummaryEntry
}

// TransferServicer moves allocated funds between custom budgets.
type TransferServicer interface {
	TransferFunds(fromBudgetID int64, fromCategory string, toBudgetID int64, amount float64, allocations map[string]float64) (*models.TransferEvent, error)
	TransferLog() []models.TransferEvent
}

// RolloverServicer manages relationship rules and end-of-month rollovers.
type RolloverServicer interface {
	CreateRelationship(sourceCategory string, destinationBudgetID int64) (*models.BudgetRelationship, error)
	ListRelationships() []models.BudgetRelationship
	DeleteRelationship(id int64) error
	ProcessEndOfMonthRollovers() (*RolloverResult, error)
}

// RecurringServicer expands recurring transactions into concrete entries.
type RecurringServicer interface {
	Process() (int, error)
}

// ReminderServicer manages bill reminders and their notification schedule.
type ReminderServicer interface {
	CreateReminder(name string, amount float64, dueDate models.Date) (*models.BillReminder, error)
	ListReminders() []models.BillReminder
	DeleteReminder(id int64) error
}

// FeatureServicer is the subscription feature gate consulted before gated
// operations. It holds no state of its own; the tier comes from the
// caller's auth context.
type FeatureServicer interface {
	HasAccessTo(tier models.Tier, feature Feature) bool
	IsLimitReached(tier models.Tier, limit Limit, currentCount int) bool
}
