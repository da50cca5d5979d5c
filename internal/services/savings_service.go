package services

import (
	"context"
	"fmt"
	"time"

	"finance-coach/internal/genai"
	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

var (
	sixMonths      = decimal.NewFromInt(6)
	twentyPercent  = decimal.NewFromFloat(0.20)
	eightyPercent  = decimal.NewFromFloat(0.80)
	timelineCutoff = decimal.NewFromInt(100)
)

type savingsAdvisor struct {
	gen     genai.Generator
	timeout time.Duration
	metrics MetricsRecorderInterface
}

// NewSavingsAdvisor creates a new SavingsAdvisorInterface instance. A nil
// generator is valid and forces the templated strategy text.
func NewSavingsAdvisor(gen genai.Generator, timeout time.Duration, metrics MetricsRecorderInterface) SavingsAdvisorInterface {
	return &savingsAdvisor{gen: gen, timeout: timeout, metrics: metrics}
}

// CreateStrategy sizes an emergency fund at six months of expenses and
// recommends the smaller of 80% of free cash flow and 20% of income as the
// monthly savings amount. Strategy text may come from the generator; every
// numeric field is deterministic.
func (s *savingsAdvisor) CreateStrategy(ctx context.Context, income decimal.Decimal, expenses []models.ExpenseRecord) *models.SavingsStrategy {
	totalExpenses := models.SumAmounts(expenses)
	available := income.Sub(totalExpenses)
	emergencyFundTarget := totalExpenses.Mul(sixMonths)
	twentyPercentOfIncome := income.Mul(twentyPercent)
	recommended := decimal.Min(available.Mul(eightyPercent), twentyPercentOfIncome)

	timeline := "Increase income to save faster"
	if recommended.IsPositive() {
		months := emergencyFundTarget.Div(recommended)
		if months.LessThan(timelineCutoff) {
			timeline = fmt.Sprintf("%d months", months.IntPart())
		}
	}

	strategy := &models.SavingsStrategy{
		RecommendedMonthlySavings: recommended.Round(2),
		EmergencyFundTarget:       emergencyFundTarget.Round(2),
		CurrentSavingsCapacity:    available.Round(2),
		Timeline:                  timeline,
	}

	prompt := savingsPrompt(income, totalExpenses, available, emergencyFundTarget, twentyPercentOfIncome)
	if text, ok := generateNarrative(ctx, s.gen, s.timeout, s.metrics, "savings_strategy", prompt); ok {
		strategy.Strategy = text
		strategy.AIPowered = true
	} else {
		strategy.Strategy = defaultStrategy(available, twentyPercentOfIncome, emergencyFundTarget)
	}

	return strategy
}

func savingsPrompt(income, totalExpenses, available, emergencyTarget, recommended decimal.Decimal) string {
	return fmt.Sprintf(`Create a personalized savings strategy for someone with:

Monthly Income: $%s
Monthly Expenses: $%s
Currently Available for Savings: $%s

Emergency Fund Target: $%s (6 months of expenses)
Recommended Monthly Savings (20%% rule): $%s

Provide:
1. Realistic monthly savings amount
2. How to build emergency fund
3. Actionable tips to increase savings
4. Timeline to reach emergency fund goal

Keep it practical and encouraging.`,
		income.StringFixed(2), totalExpenses.StringFixed(2), available.StringFixed(2),
		emergencyTarget.StringFixed(2), recommended.StringFixed(2))
}

// defaultStrategy builds templated advice in three bands: deficit spending,
// saving below the 20% target, and saving at or above it.
func defaultStrategy(available, recommended, emergencyTarget decimal.Decimal) string {
	if !available.IsPositive() {
		return "You're currently spending more than you earn.\n\n" +
			"Priority actions:\n" +
			"1. Review all expenses and cut non-essentials\n" +
			"2. Look for ways to increase income\n" +
			"3. Create a strict budget to track spending"
	}

	if available.LessThan(recommended) {
		return fmt.Sprintf("You can save $%s/month, but aim for $%s (20%% of income).\n\n"+
			"Strategy:\n"+
			"1. Save $%s automatically each month\n"+
			"2. Build emergency fund of $%s\n"+
			"3. Review expenses monthly to increase savings",
			available.StringFixed(2), recommended.StringFixed(2),
			available.Mul(eightyPercent).StringFixed(2), emergencyTarget.StringFixed(2))
	}

	half := available.Mul(decimal.NewFromFloat(0.5))
	monthsToTarget := int64(0)
	if half.IsPositive() {
		monthsToTarget = emergencyTarget.Div(half).IntPart()
	}
	return fmt.Sprintf("Great! You can save $%s/month.\n\n"+
		"Recommended allocation:\n"+
		"1. Emergency Fund: $%s/month\n"+
		"2. Goals/Investments: $%s/month\n"+
		"3. Buffer: $%s/month\n\n"+
		"You'll reach your emergency fund in %d months!",
		available.StringFixed(2), half.StringFixed(2),
		available.Mul(decimal.NewFromFloat(0.3)).StringFixed(2),
		available.Mul(decimal.NewFromFloat(0.2)).StringFixed(2),
		monthsToTarget)
}
