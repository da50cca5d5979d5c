package dto

import (
	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// Expense Request DTOs

// ExpenseInput represents a single expense row in request payloads. Amount is
// a pointer so a missing field fails required validation instead of decoding
// to zero.
type ExpenseInput struct {
	Date        string           `json:"date"`
	Category    string           `json:"category"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,non_negative_amount"`
	Description string           `json:"description"`
}

// ToRecord converts an expense input into the domain record
func (e ExpenseInput) ToRecord() models.ExpenseRecord {
	record := models.ExpenseRecord{
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
	}
	if e.Amount != nil {
		record.Amount = *e.Amount
	}
	return record
}

// ExpenseAnalyzeRequest represents the request payload for expense analysis
type ExpenseAnalyzeRequest struct {
	Expenses []ExpenseInput `json:"expenses" validate:"required,dive"`
}

// CategorizeRequest represents the request payload for categorizing a single
// expense description
type CategorizeRequest struct {
	Description string           `json:"description" validate:"required"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,non_negative_amount"`
}

// Expense Response DTOs

// CategorizeResponse represents the categorization result
type CategorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// UploadResponse represents the result of a CSV expense upload
type UploadResponse struct {
	Success  bool                   `json:"success"`
	Expenses []models.ExpenseRecord `json:"expenses"`
	Count    int                    `json:"count"`
	Skipped  int                    `json:"skipped,omitempty"`
}

// ToRecords converts a slice of expense inputs into domain records
func ToRecords(inputs []ExpenseInput) []models.ExpenseRecord {
	records := make([]models.ExpenseRecord, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, input.ToRecord())
	}
	return records
}
