package dto

import (
	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// Debt Request DTOs

// DebtInput represents a single debt in request payloads. Numeric fields are
// pointers so missing fields fail required validation instead of decoding to
// zero.
type DebtInput struct {
	Name       string           `json:"name" validate:"required"`
	Balance    *decimal.Decimal `json:"balance" validate:"required,non_negative_amount"`
	Rate       *float64         `json:"rate" validate:"required,gte=0"`
	MinPayment *decimal.Decimal `json:"minPayment" validate:"required,non_negative_amount"`
}

// ToRecord converts a debt input into the domain record
func (d DebtInput) ToRecord() models.DebtRecord {
	record := models.DebtRecord{Name: d.Name}
	if d.Balance != nil {
		record.Balance = *d.Balance
	}
	if d.Rate != nil {
		record.Rate = *d.Rate
	}
	if d.MinPayment != nil {
		record.MinPayment = *d.MinPayment
	}
	return record
}

// DebtAnalyzeRequest represents the request payload for debt analysis
type DebtAnalyzeRequest struct {
	Debts []DebtInput `json:"debts" validate:"required,unique=Name,dive"`
}

// PayoffPlanRequest represents the request payload for creating a payoff
// plan. Method defaults to avalanche when omitted.
type PayoffPlanRequest struct {
	Debts        []DebtInput      `json:"debts" validate:"required,unique=Name,dive"`
	ExtraPayment *decimal.Decimal `json:"extraPayment" validate:"omitempty,non_negative_amount"`
	Method       string           `json:"method" validate:"payoff_method"`
}

// CompareRequest represents the request payload for comparing payoff methods
type CompareRequest struct {
	Debts        []DebtInput      `json:"debts" validate:"required,unique=Name,dive"`
	ExtraPayment *decimal.Decimal `json:"extraPayment" validate:"omitempty,non_negative_amount"`
}

// ToDebtRecords converts a slice of debt inputs into domain records
func ToDebtRecords(inputs []DebtInput) []models.DebtRecord {
	records := make([]models.DebtRecord, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, input.ToRecord())
	}
	return records
}
