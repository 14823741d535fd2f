// Package export renders ledger snapshots as CSV or JSON text for
// download. It consumes the state read-only and holds no invariants of its
// own.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
)

// TypeFilter selects which part of the ledger to export.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterMonthly TypeFilter = "monthly"
	FilterCustom  TypeFilter = "custom"
)

// Request describes one export: format selection happens at the handler,
// the filters here apply to both formats. Zero From/To leave that side of
// the range open.
type Request struct {
	Type TypeFilter
	From models.Date
	To   models.Date
}

// csvHeader is the fixed column order of the CSV format.
var csvHeader = []string{
	"Date", "BudgetType", "Category", "CustomBudget", "CustomCategory",
	"Description", "Amount", "Type", "Tags", "TransactionID",
}

// Filter returns the transactions matching the request, ledger order
// preserved.
func Filter(state *models.AppState, req Request) []models.Transaction {
	out := []models.Transaction{}
	for _, t := range state.Transactions {
		switch req.Type {
		case FilterMonthly:
			if t.BudgetType == models.BudgetTypeCustom || t.BudgetType == models.BudgetTypeTransfer {
				continue
			}
		case FilterCustom:
			if t.CustomBudgetID == nil {
				continue
			}
		}
		if !req.From.IsZero() && t.Date.Before(req.From.Time) {
			continue
		}
		if !req.To.IsZero() && t.Date.After(req.To.Time) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CSV renders the filtered ledger as UTF-8 CSV with a BOM, RFC 4180
// quoting, and the fixed column order spreadsheet importers expect.
func CSV(state *models.AppState, req Request) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, t := range Filter(state, req) {
		budgetName := ""
		if t.CustomBudgetID != nil {
			if b := state.FindCustomBudget(*t.CustomBudgetID); b != nil {
				budgetName = b.Name
			}
		}
		record := []string{
			t.Date.String(),
			string(t.BudgetType),
			t.Category,
			budgetName,
			t.CustomCategory,
			t.Description,
			fmt.Sprintf("%.2f", t.Amount),
			string(t.Type),
			strings.Join(t.Tags, ";"),
			strconv.FormatInt(t.ID, 10),
		}
		if err := w.Write(record); err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.String(), nil
}

// JSON renders the filtered ledger together with the budget snapshot.
func JSON(state *models.AppState, req Request) (string, error) {
	payload := struct {
		Transactions   []models.Transaction  `json:"transactions"`
		MonthlyBudgets models.MonthlyBudgets `json:"budgets"`
		CustomBudgets  []models.CustomBudget `json:"customBudgets"`
	}{
		Transactions:   Filter(state, req),
		MonthlyBudgets: state.MonthlyBudgets,
		CustomBudgets:  state.CustomBudgets,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(data), nil
}
