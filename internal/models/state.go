package models

// AppState is the full serializable application state: the shape of the
// single JSON blob the persistence collaborator reads and writes under a
// fixed storage key.
type AppState struct {
	Transactions   []Transaction        `json:"transactions"`
	MonthlyBudgets MonthlyBudgets       `json:"budgets"`
	CustomBudgets  []CustomBudget       `json:"customBudgets"`
	Relationships  []BudgetRelationship `json:"budgetRelationships"`
	TransferLog    []TransferEvent      `json:"transferLog"`
	BillReminders  []BillReminder       `json:"billReminders"`
}

// NewAppState returns an empty state with all collections initialized, so
// a fresh install serializes to empty arrays rather than nulls.
func NewAppState() AppState {
	return AppState{
		Transactions:   []Transaction{},
		MonthlyBudgets: MonthlyBudgets{},
		CustomBudgets:  []CustomBudget{},
		Relationships:  []BudgetRelationship{},
		TransferLog:    []TransferEvent{},
		BillReminders:  []BillReminder{},
	}
}

// FindCustomBudget returns the custom budget with the given id, or nil.
func (s *AppState) FindCustomBudget(id int64) *CustomBudget {
	for i := range s.CustomBudgets {
		if s.CustomBudgets[i].ID == id {
			return &s.CustomBudgets[i]
		}
	}
	return nil
}

// FindTransaction returns the transaction with the given id, or nil.
func (s *AppState) FindTransaction(id int64) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}
