package models

// MonthlyBudgets maps a flat category name to its per-calendar-month
// spending limit. A category with no entry has no limit set.
type MonthlyBudgets map[string]float64

// Limit returns the limit for a category, zero when unset.
func (m MonthlyBudgets) Limit(category string) float64 {
	return m[category]
}

// RolloverCondition names the trigger of a budget relationship rule.
type RolloverCondition string

// ConditionEndOfMonthSurplus is the only condition currently supported.
const ConditionEndOfMonthSurplus RolloverCondition = "end_of_month_surplus"

// BudgetRelationship is a standing rule linking a monthly category's
// end-of-month surplus to a destination custom budget. Consumed by the
// rollover protocol.
type BudgetRelationship struct {
	ID                  int64             `json:"id"`
	SourceCategory      string            `json:"sourceCategory"`
	DestinationBudgetID int64             `json:"destinationBudgetId"`
	Condition           RolloverCondition `json:"condition"`
}
