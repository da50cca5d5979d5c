package services

import (
	"context"
	"time"

	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryServiceInterface defines the contract for expense categorization
type CategoryServiceInterface interface {
	// Categorize maps a free-text description to a spending category.
	// The amount parameter exists for interface symmetry and never
	// influences the result.
	Categorize(description string, amount decimal.Decimal) models.Category
}

// ExpenseAnalyzerInterface defines the contract for expense aggregation
type ExpenseAnalyzerInterface interface {
	Analyze(expenses []models.ExpenseRecord) *models.ExpenseAnalysis
}

// DebtPlannerInterface defines the contract for debt payoff planning
type DebtPlannerInterface interface {
	Analyze(debts []models.DebtRecord) *models.DebtAnalysis
	CreatePayoffPlan(debts []models.DebtRecord, extraPayment decimal.Decimal, method models.PayoffMethod) *models.PayoffPlan
	CompareMethods(debts []models.DebtRecord, extraPayment decimal.Decimal) *models.MethodComparison
}

// BudgetAdvisorInterface defines the contract for budget analysis
type BudgetAdvisorInterface interface {
	AnalyzeBudget(ctx context.Context, income decimal.Decimal, expenses []models.ExpenseRecord) *models.BudgetReport
}

// SavingsAdvisorInterface defines the contract for savings strategy planning
type SavingsAdvisorInterface interface {
	CreateStrategy(ctx context.Context, income decimal.Decimal, expenses []models.ExpenseRecord) *models.SavingsStrategy
}

// ChatServiceInterface defines the contract for the conversational endpoint
type ChatServiceInterface interface {
	Reply(ctx context.Context, message string, fin models.ChatContext) *models.ChatReply
}

// MetricsRecorderInterface abstracts metric recording so services and
// handlers can be tested without touching the global Prometheus registry
type MetricsRecorderInterface interface {
	RecordAnalysis(operation, status string)
	RecordGeneration(status string, duration time.Duration)
	SetGeneratorBreakerState(state float64)
	RecordUploadRows(parsed, skipped int)
}
