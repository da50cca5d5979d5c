package dto

import (
	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// Budget Request DTOs

// BudgetAnalyzeRequest represents the request payload for budget analysis
type BudgetAnalyzeRequest struct {
	Income   *decimal.Decimal `json:"income" validate:"required,non_negative_amount"`
	Expenses []ExpenseInput   `json:"expenses" validate:"dive"`
	Goals    []string         `json:"goals"`
}

// SavingsStrategyRequest represents the request payload for savings planning
type SavingsStrategyRequest struct {
	Income   *decimal.Decimal `json:"income" validate:"required,non_negative_amount"`
	Expenses []ExpenseInput   `json:"expenses" validate:"dive"`
	Goals    []string         `json:"goals"`
}

// Chat Request DTOs

// ChatFinancialContext carries the optional financial snapshot sent with a
// chat message. It is intentionally unvalidated: a partial snapshot still
// improves the reply.
type ChatFinancialContext struct {
	Income   *decimal.Decimal `json:"income"`
	Expenses []ExpenseInput   `json:"expenses"`
	Debts    []DebtInput      `json:"debts"`
}

// ChatRequest represents the request payload for the conversational endpoint
type ChatRequest struct {
	Message string               `json:"message" validate:"required"`
	Context ChatFinancialContext `json:"context"`
}

// ToChatContext converts the request context into the domain snapshot
func (c ChatFinancialContext) ToChatContext() models.ChatContext {
	ctx := models.ChatContext{
		Expenses: ToRecords(c.Expenses),
		Debts:    ToDebtRecords(c.Debts),
	}
	if c.Income != nil {
		ctx.Income = *c.Income
	}
	return ctx
}

// SampleDataResponse represents the bundled demo dataset
type SampleDataResponse struct {
	Success  bool                   `json:"success"`
	Income   decimal.Decimal        `json:"income"`
	Expenses []models.ExpenseRecord `json:"expenses"`
	Count    int                    `json:"count"`
}
