package services

import (
	"context"
	"fmt"
	"time"

	"finance-coach/internal/genai"
	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

type budgetAdvisor struct {
	gen     genai.Generator
	timeout time.Duration
	metrics MetricsRecorderInterface
}

// NewBudgetAdvisor creates a new BudgetAdvisorInterface instance. A nil
// generator is valid and forces deterministic recommendations.
func NewBudgetAdvisor(gen genai.Generator, timeout time.Duration, metrics MetricsRecorderInterface) BudgetAdvisorInterface {
	return &budgetAdvisor{gen: gen, timeout: timeout, metrics: metrics}
}

// AnalyzeBudget computes savings figures deterministically and attaches
// either generated or templated recommendations. The numeric fields never
// depend on the generator.
func (s *budgetAdvisor) AnalyzeBudget(ctx context.Context, income decimal.Decimal, expenses []models.ExpenseRecord) *models.BudgetReport {
	totalExpenses := models.SumAmounts(expenses)
	savings := income.Sub(totalExpenses)

	savingsRate := 0.0
	if income.IsPositive() {
		savingsRate = round2(savings.Div(income).InexactFloat64() * 100)
	}

	report := &models.BudgetReport{
		Income:        income.Round(2),
		TotalExpenses: totalExpenses.Round(2),
		Savings:       savings.Round(2),
		SavingsRate:   savingsRate,
		BudgetHealth:  models.HealthFor(savingsRate),
	}

	prompt := budgetPrompt(income, totalExpenses, savings, savingsRate)
	if text, ok := generateNarrative(ctx, s.gen, s.timeout, s.metrics, "budget_analyze", prompt); ok {
		report.Recommendations = text
		report.AIPowered = true
	} else {
		report.Recommendations = defaultRecommendations(savingsRate)
	}

	return report
}

func budgetPrompt(income, totalExpenses, savings decimal.Decimal, savingsRate float64) string {
	return fmt.Sprintf(`Analyze this budget and provide recommendations:

Monthly Income: $%s
Total Expenses: $%s
Savings: $%s
Savings Rate: %.1f%%

Provide 3-5 actionable recommendations to improve this budget.
Be specific and practical.`,
		income.StringFixed(2), totalExpenses.StringFixed(2), savings.StringFixed(2), savingsRate)
}

func defaultRecommendations(savingsRate float64) string {
	switch {
	case savingsRate >= 20:
		return "Great job! Your savings rate is healthy. Consider increasing investments."
	case savingsRate >= 10:
		return "Your savings rate is fair. Try to reduce discretionary spending by 10%."
	default:
		return "Your savings rate is low. Review your expenses and find areas to cut back."
	}
}
