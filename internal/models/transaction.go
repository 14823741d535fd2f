package models

import "time"

// TransactionType represents the user-entered direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// BudgetType says which budget domain a transaction belongs to.
// BudgetTypeTransfer is reserved for rollover-credit transactions; regular
// user-entered transactions are never "transfer".
type BudgetType string

const (
	BudgetTypeMonthly  BudgetType = "monthly"
	BudgetTypeCustom   BudgetType = "custom"
	BudgetTypeTransfer BudgetType = "transfer"
)

// RecurringFrequency is the calendar step for recurring transactions.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
)

// Transaction is a ledger entry. Fields are overwritten wholesale on edit,
// never patched. Amount carries the sign: negative is an expense, positive
// is income; the sign is derived from Type once at creation and the stored
// amount is the single source of truth thereafter.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	BudgetType  BudgetType      `json:"budgetType"`
	Description string          `json:"description"`

	// Set only for custom-budget transactions.
	CustomBudgetID *int64 `json:"customBudgetId,omitempty"`
	CustomCategory string `json:"customCategory,omitempty"`

	// Date is the economic date; Timestamp orders history entries.
	Date      Date      `json:"date"`
	Timestamp time.Time `json:"timestamp"`

	Tags []string `json:"tags"`

	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty"`
	LastProcessedDate  *Date              `json:"lastProcessedDate,omitempty"`
}

// BelongsToBudget reports whether the transaction references the given
// custom budget.
func (t *Transaction) BelongsToBudget(budgetID int64) bool {
	return t.CustomBudgetID != nil && *t.CustomBudgetID == budgetID
}

// HasTag reports whether the tag is present. Tag order is preserved for
// display but irrelevant for matching.
func (t *Transaction) HasTag(tag string) bool {
	for _, v := range t.Tags {
		if v == tag {
			return true
		}
	}
	return false
}
