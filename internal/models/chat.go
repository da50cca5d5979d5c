package models

import (
	"github.com/shopspring/decimal"
)

// ChatContext carries the optional financial snapshot a chat message may be
// grounded in. Zero values mean the caller supplied no context.
type ChatContext struct {
	Income   decimal.Decimal
	Expenses []ExpenseRecord
	Debts    []DebtRecord
}

// ChatReply is the response of the conversational endpoint.
type ChatReply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	AIPowered   bool     `json:"aiPowered"`
	Model       string   `json:"model,omitempty"`
}
