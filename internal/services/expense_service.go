package services

import (
	"fmt"
	"math"
	"sort"

	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

type expenseAnalyzer struct {
	categories CategoryServiceInterface
}

// NewExpenseAnalyzer creates a new ExpenseAnalyzerInterface instance
func NewExpenseAnalyzer(categories CategoryServiceInterface) ExpenseAnalyzerInterface {
	return &expenseAnalyzer{categories: categories}
}

// Analyze aggregates expenses into per-category totals with percentages and
// spending insights. A record's own category is honored unless it is absent
// or "Other", in which case the description is re-categorized.
func (s *expenseAnalyzer) Analyze(expenses []models.ExpenseRecord) *models.ExpenseAnalysis {
	totals := make(map[models.Category]decimal.Decimal)
	var order []models.Category

	for _, exp := range expenses {
		category := models.Category(exp.Category)
		if exp.Category == "" || category == models.CategoryOther {
			category = s.categories.Categorize(exp.Description, exp.Amount)
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(exp.Amount)
	}

	total := decimal.Zero
	for _, amount := range totals {
		total = total.Add(amount)
	}

	breakdown := make([]models.CategoryBreakdownEntry, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		percentage := 0.0
		if total.IsPositive() {
			percentage = round2(amount.Div(total).InexactFloat64() * 100)
		}
		breakdown = append(breakdown, models.CategoryBreakdownEntry{
			Category:   category,
			Amount:     amount.Round(2),
			Percentage: percentage,
		})
	}

	// Stable sort keeps first-seen order for categories with equal totals.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	topCategory := "None"
	if len(breakdown) > 0 {
		topCategory = string(breakdown[0].Category)
	}

	return &models.ExpenseAnalysis{
		CategoryBreakdown: breakdown,
		TotalExpenses:     total.Round(2),
		TopCategory:       topCategory,
		Insights:          buildInsights(breakdown),
	}
}

// buildInsights derives spending observations from a sorted breakdown.
// The thresholds overlap on purpose: a category above 40% triggers both the
// high-spend warning and the review suggestion.
func buildInsights(breakdown []models.CategoryBreakdownEntry) []string {
	insights := []string{}
	if len(breakdown) == 0 {
		return insights
	}

	top := breakdown[0]
	if top.Percentage > 40 {
		insights = append(insights, fmt.Sprintf("%s expenses are high at %.1f%% of total spending", top.Category, top.Percentage))
	}
	if top.Percentage > 30 {
		insights = append(insights, fmt.Sprintf("Consider reviewing your %s spending for potential savings", top.Category))
	}

	balanced := true
	for _, entry := range breakdown {
		if entry.Percentage >= 35 {
			balanced = false
			break
		}
	}
	if balanced {
		insights = append(insights, "Your spending is well-balanced across categories")
	}

	return insights
}

// round2 rounds a float to two decimal places
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
