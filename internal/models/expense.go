package models

import (
	"github.com/shopspring/decimal"
)

// ExpenseRecord is a single expense as submitted by a client or parsed from
// an uploaded file. Date is free-form text; it is carried through untouched
// and never interpreted as a calendar date.
type ExpenseRecord struct {
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CategoryBreakdownEntry is one row of an expense analysis, derived per
// request and never persisted.
type CategoryBreakdownEntry struct {
	Category   Category        `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// ExpenseAnalysis is the aggregated view over a list of expense records.
// TopCategory is the literal string "None" when the input list is empty.
type ExpenseAnalysis struct {
	CategoryBreakdown []CategoryBreakdownEntry `json:"categoryBreakdown"`
	TotalExpenses     decimal.Decimal          `json:"totalExpenses"`
	TopCategory       string                   `json:"topCategory"`
	Insights          []string                 `json:"insights"`
}

// SumAmounts totals the amounts of a list of expense records, ignoring
// their categories.
func SumAmounts(expenses []ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
	}
	return total
}
