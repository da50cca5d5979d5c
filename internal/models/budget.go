package models

import (
	"github.com/shopspring/decimal"
)

// Budget health classifications. Band lower bounds are inclusive:
// Good at a savings rate of 20% and up, Fair at 10% and up.
const (
	HealthGood             = "Good"
	HealthFair             = "Fair"
	HealthNeedsImprovement = "Needs Improvement"
)

// BudgetReport is the outcome of a budget analysis. Savings may be negative
// when expenses exceed income.
type BudgetReport struct {
	Income          decimal.Decimal `json:"income"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsRate     float64         `json:"savingsRate"`
	BudgetHealth    string          `json:"budgetHealth"`
	Recommendations string          `json:"recommendations"`
	AIPowered       bool            `json:"aiPowered"`
}

// SavingsStrategy is the outcome of a savings planning request. Timeline is
// either a whole number of months or a prompt to increase income when the
// horizon would exceed 100 months.
type SavingsStrategy struct {
	RecommendedMonthlySavings decimal.Decimal `json:"recommendedMonthlySavings"`
	EmergencyFundTarget       decimal.Decimal `json:"emergencyFundTarget"`
	CurrentSavingsCapacity    decimal.Decimal `json:"currentSavingsCapacity"`
	Strategy                  string          `json:"strategy"`
	Timeline                  string          `json:"timeline"`
	AIPowered                 bool            `json:"aiPowered"`
}

// HealthFor classifies a savings rate into a budget health band.
func HealthFor(savingsRate float64) string {
	switch {
	case savingsRate >= 20:
		return HealthGood
	case savingsRate >= 10:
		return HealthFair
	default:
		return HealthNeedsImprovement
	}
}
