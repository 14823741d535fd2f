package models

// TransferEvent is the audit record written alongside a fund transfer.
// Balances are affected solely by the paired transactions the transfer
// protocol creates; the event itself never enters any balance math.
type TransferEvent struct {
	ID                    int64              `json:"id"`
	Date                  Date               `json:"date"`
	Amount                float64            `json:"amount"`
	FromBudgetID          int64              `json:"fromBudgetId"`
	FromCategory          string             `json:"fromCategory"`
	ToBudgetID            int64              `json:"toBudgetId"`
	ToCategoryAllocations map[string]float64 `json:"toCategoryAllocations"`
}
