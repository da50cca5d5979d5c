package services

import (
	"fmt"
	"sort"
	"strings"

	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// recommendationThreshold is the interest delta, in currency units, below
// which avalanche and snowball are considered equivalent.
var recommendationThreshold = decimal.NewFromInt(-100)

type debtPlanner struct{}

// NewDebtPlanner creates a new DebtPlannerInterface instance
func NewDebtPlanner() DebtPlannerInterface {
	return &debtPlanner{}
}

// Analyze summarizes a debt portfolio: totals, simple-mean rate, annual
// interest cost and the highest-rate debt to target first.
func (s *debtPlanner) Analyze(debts []models.DebtRecord) *models.DebtAnalysis {
	if len(debts) == 0 {
		return &models.DebtAnalysis{
			TotalDebt:       decimal.Zero,
			TotalMinPayment: decimal.Zero,
			AnnualInterest:  decimal.Zero,
			Recommendations: "Great! You have no debts.",
		}
	}

	totalDebt := decimal.Zero
	totalMinPayment := decimal.Zero
	annualInterest := decimal.Zero
	rateSum := 0.0
	for _, d := range debts {
		totalDebt = totalDebt.Add(d.Balance)
		totalMinPayment = totalMinPayment.Add(d.MinPayment)
		rateSum += d.Rate
		annualInterest = annualInterest.Add(d.Balance.Mul(decimal.NewFromFloat(d.Rate / 100)))
	}

	byRate := sortByRateDesc(debts)

	analysis := &models.DebtAnalysis{
		TotalDebt:       totalDebt.Round(2),
		TotalMinPayment: totalMinPayment.Round(2),
		AverageRate:     round2(rateSum / float64(len(debts))),
		AnnualInterest:  annualInterest.Round(2),
		PriorityDebt:    byRate[0].Name,
		DebtCount:       len(debts),
	}
	analysis.Recommendations = buildAnalysisNarrative(analysis, byRate)
	return analysis
}

// CreatePayoffPlan orders debts by the requested method and estimates the
// payoff horizon. The estimate divides total debt by the combined monthly
// payment and ignores interest accumulation, so it understates the true
// horizon; the interest figure uses the same simplification.
func (s *debtPlanner) CreatePayoffPlan(debts []models.DebtRecord, extraPayment decimal.Decimal, method models.PayoffMethod) *models.PayoffPlan {
	if len(debts) == 0 {
		return &models.PayoffPlan{
			Method:         method,
			Order:          []string{},
			TotalInterest:  decimal.Zero,
			MonthlyPayment: decimal.Zero,
			Plan:           "No debts to pay off!",
		}
	}

	var sorted []models.DebtRecord
	var methodDescription string
	if method == models.MethodSnowball {
		sorted = sortByBalanceAsc(debts)
		methodDescription = "Smallest Balance First (Quick Wins)"
	} else {
		sorted = sortByRateDesc(debts)
		methodDescription = "Highest Interest First (Saves Most Money)"
	}

	totalDebt := decimal.Zero
	totalPayment := extraPayment
	rateSum := 0.0
	for _, d := range debts {
		totalDebt = totalDebt.Add(d.Balance)
		totalPayment = totalPayment.Add(d.MinPayment)
		rateSum += d.Rate
	}

	estimatedMonths := models.SentinelMonths
	if totalPayment.IsPositive() {
		estimatedMonths = int(totalDebt.Div(totalPayment).IntPart())
	}

	meanMonthlyRate := rateSum / float64(len(debts)) / 100 / 12
	totalInterest := totalDebt.Mul(decimal.NewFromFloat(meanMonthlyRate * float64(estimatedMonths)))

	order := make([]string, 0, len(sorted))
	for _, d := range sorted {
		order = append(order, d.Name)
	}

	plan := &models.PayoffPlan{
		Method:          method,
		Order:           order,
		EstimatedMonths: estimatedMonths,
		TotalInterest:   totalInterest.Round(2),
		MonthlyPayment:  totalPayment.Round(2),
	}
	plan.Plan = buildPlanNarrative(plan, sorted, methodDescription)
	return plan
}

// CompareMethods runs both payoff methods over the same portfolio and
// recommends avalanche only when it saves materially more interest.
func (s *debtPlanner) CompareMethods(debts []models.DebtRecord, extraPayment decimal.Decimal) *models.MethodComparison {
	avalanche := s.CreatePayoffPlan(debts, extraPayment, models.MethodAvalanche)
	snowball := s.CreatePayoffPlan(debts, extraPayment, models.MethodSnowball)

	interestDelta := avalanche.TotalInterest.Sub(snowball.TotalInterest)
	timeDelta := snowball.EstimatedMonths - avalanche.EstimatedMonths
	if timeDelta < 0 {
		timeDelta = -timeDelta
	}

	recommendation := "either"
	if interestDelta.LessThan(recommendationThreshold) {
		recommendation = "avalanche"
	}

	return &models.MethodComparison{
		Avalanche:       avalanche,
		Snowball:        snowball,
		InterestSavings: interestDelta.Abs().Round(2),
		TimeDifference:  timeDelta,
		Recommendation:  recommendation,
		Comparison:      buildComparisonNarrative(avalanche, snowball, interestDelta),
	}
}

// sortByRateDesc returns a copy of debts ordered by interest rate, highest
// first. Equal rates keep input order.
func sortByRateDesc(debts []models.DebtRecord) []models.DebtRecord {
	sorted := make([]models.DebtRecord, len(debts))
	copy(sorted, debts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rate > sorted[j].Rate
	})
	return sorted
}

// sortByBalanceAsc returns a copy of debts ordered by balance, smallest
// first. Equal balances keep input order.
func sortByBalanceAsc(debts []models.DebtRecord) []models.DebtRecord {
	sorted := make([]models.DebtRecord, len(debts))
	copy(sorted, debts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Balance.LessThan(sorted[j].Balance)
	})
	return sorted
}

func buildAnalysisNarrative(analysis *models.DebtAnalysis, byRate []models.DebtRecord) string {
	var b strings.Builder

	b.WriteString("Debt Analysis Summary:\n\n")
	fmt.Fprintf(&b, "Total Debt: $%s\n", analysis.TotalDebt.StringFixed(2))
	fmt.Fprintf(&b, "Monthly Minimum Payments: $%s\n", analysis.TotalMinPayment.StringFixed(2))
	fmt.Fprintf(&b, "Average Interest Rate: %.2f%%\n", analysis.AverageRate)
	fmt.Fprintf(&b, "Annual Interest Cost: $%s\n", analysis.AnnualInterest.StringFixed(2))

	b.WriteString("\nRecommended Strategy (Avalanche Method):\n\nPriority Order (Highest Interest First):\n")
	for i, d := range byRate {
		fmt.Fprintf(&b, "%d. %s - $%s at %g%% APR\n", i+1, d.Name, d.Balance.StringFixed(2), d.Rate)
	}

	b.WriteString("\nAction Plan:\n")
	b.WriteString("1. Pay minimums on all debts\n")
	fmt.Fprintf(&b, "2. Put extra money toward '%s' (highest interest)\n", byRate[0].Name)
	b.WriteString("3. Once paid off, roll that payment to the next debt\n")
	b.WriteString("4. This saves the most on interest charges!")

	return b.String()
}

func buildPlanNarrative(plan *models.PayoffPlan, sorted []models.DebtRecord, methodDescription string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s METHOD: %s\n\nPayoff Order:\n", strings.ToUpper(string(plan.Method)), methodDescription)
	for i, d := range sorted {
		fmt.Fprintf(&b, "%d. %s - $%s\n", i+1, d.Name, d.Balance.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nMonthly Payment: $%s\n", plan.MonthlyPayment.StringFixed(2))
	fmt.Fprintf(&b, "Estimated Payoff Time: %d months (%d years, %d months)\n",
		plan.EstimatedMonths, plan.EstimatedMonths/12, plan.EstimatedMonths%12)
	fmt.Fprintf(&b, "Estimated Interest Paid: $%s", plan.TotalInterest.StringFixed(2))

	return b.String()
}

func buildComparisonNarrative(avalanche, snowball *models.PayoffPlan, interestDelta decimal.Decimal) string {
	var b strings.Builder

	b.WriteString("METHOD COMPARISON\n\n")
	b.WriteString("AVALANCHE (Pay Highest Interest First):\n")
	fmt.Fprintf(&b, "- Payoff Time: %d months\n", avalanche.EstimatedMonths)
	fmt.Fprintf(&b, "- Total Interest: $%s\n", avalanche.TotalInterest.StringFixed(2))
	fmt.Fprintf(&b, "- Saves: $%s in interest\n\n", interestDelta.Abs().StringFixed(2))

	b.WriteString("SNOWBALL (Pay Smallest Balance First):\n")
	fmt.Fprintf(&b, "- Payoff Time: %d months\n", snowball.EstimatedMonths)
	fmt.Fprintf(&b, "- Total Interest: $%s\n", snowball.TotalInterest.StringFixed(2))
	b.WriteString("- Motivation: Faster wins (pay off debts quicker)\n\n")

	b.WriteString("RECOMMENDATION:\n")
	if interestDelta.IsNegative() {
		b.WriteString("Avalanche method saves more money!")
	} else {
		b.WriteString("Both methods are similar - choose based on preference!")
	}

	return b.String()
}
