package models

import (
	"github.com/shopspring/decimal"
)

// PayoffMethod selects the ordering strategy for a debt payoff plan.
type PayoffMethod string

const (
	// MethodAvalanche pays the highest interest rate first.
	MethodAvalanche PayoffMethod = "avalanche"
	// MethodSnowball pays the smallest balance first.
	MethodSnowball PayoffMethod = "snowball"
)

// SentinelMonths signals "effectively never" when the combined monthly
// payment is zero and a payoff horizon cannot be estimated.
const SentinelMonths = 999

// DebtRecord is a single debt as submitted by a client. Rate is an annual
// percentage (19.99 means 19.99%). Names are unique within a request.
type DebtRecord struct {
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	Rate       float64         `json:"rate"`
	MinPayment decimal.Decimal `json:"minPayment"`
}

// DebtAnalysis summarizes a debt portfolio.
type DebtAnalysis struct {
	TotalDebt       decimal.Decimal `json:"totalDebt"`
	TotalMinPayment decimal.Decimal `json:"totalMinPayment"`
	AverageRate     float64         `json:"averageRate"`
	AnnualInterest  decimal.Decimal `json:"annualInterest"`
	Recommendations string          `json:"recommendations"`
	PriorityDebt    string          `json:"priorityDebt,omitempty"`
	DebtCount       int             `json:"debtCount"`
}

// PayoffPlan is a derived payoff schedule estimate. TotalInterest is a
// simplified approximation (mean monthly rate applied to the starting total
// for the whole horizon, with no per-month balance decay); it exists to make
// strategies comparable under the same model, not to price a loan.
type PayoffPlan struct {
	Method          PayoffMethod    `json:"method"`
	Order           []string        `json:"order"`
	EstimatedMonths int             `json:"estimatedMonths"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	Plan            string          `json:"plan"`
}

// MethodComparison holds both payoff plans computed with the same extra
// payment, plus the derived deltas. InterestSavings is reported as an
// absolute value; Recommendation records which side of the 100-unit
// threshold the signed difference fell on.
type MethodComparison struct {
	Avalanche       *PayoffPlan     `json:"avalanche"`
	Snowball        *PayoffPlan     `json:"snowball"`
	InterestSavings decimal.Decimal `json:"interestSavings"`
	TimeDifference  int             `json:"timeDifference"`
	Recommendation  string          `json:"recommendation"`
	Comparison      string          `json:"comparison"`
}
