package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance-coach/internal/genai"
	"finance-coach/internal/models"
)

type chatService struct {
	gen     genai.Generator
	timeout time.Duration
	metrics MetricsRecorderInterface
	model   string
}

// NewChatService creates a new ChatServiceInterface instance. The model name
// is echoed in replies so clients can display which backend answered.
func NewChatService(gen genai.Generator, timeout time.Duration, metrics MetricsRecorderInterface, model string) ChatServiceInterface {
	return &chatService{gen: gen, timeout: timeout, metrics: metrics, model: model}
}

// Reply answers a free-form question grounded in the caller's financial
// snapshot. When generation is unavailable it falls back to a financial
// summary plus topic blocks keyed off the question text.
func (s *chatService) Reply(ctx context.Context, message string, fin models.ChatContext) *models.ChatReply {
	prompt := chatPrompt(message, fin)
	if text, ok := generateNarrative(ctx, s.gen, s.timeout, s.metrics, "chat", prompt); ok {
		return &models.ChatReply{
			Message:     text,
			Suggestions: []string{},
			AIPowered:   true,
			Model:       s.model,
		}
	}

	return &models.ChatReply{
		Message:     fallbackReply(message, fin),
		Suggestions: []string{},
		AIPowered:   false,
	}
}

func chatPrompt(message string, fin models.ChatContext) string {
	totalExpenses := models.SumAmounts(fin.Expenses)
	return fmt.Sprintf(`You are a friendly financial advisor.

USER'S FINANCES:
- Income: $%s
- Expenses: $%s
- Debts: %d

QUESTION: %s

Provide helpful, specific advice in 2-3 paragraphs. Be friendly and actionable.`,
		fin.Income.StringFixed(2), totalExpenses.StringFixed(2), len(fin.Debts), message)
}

// fallbackReply always opens with the financial summary and then appends a
// block per topic the question touches. Multiple topics stack.
func fallbackReply(message string, fin models.ChatContext) string {
	totalExpenses := models.SumAmounts(fin.Expenses)
	savings := fin.Income.Sub(totalExpenses)

	savingsRate := 0.0
	if fin.Income.IsPositive() {
		savingsRate = savings.Div(fin.Income).InexactFloat64() * 100
	}

	var b strings.Builder
	b.WriteString("Financial Summary\n\nBased on your data:\n")
	fmt.Fprintf(&b, "- Monthly Income: $%s\n", fin.Income.StringFixed(2))
	fmt.Fprintf(&b, "- Total Expenses: $%s\n", totalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "- Current Savings: $%s\n", savings.StringFixed(2))
	fmt.Fprintf(&b, "- Savings Rate: %.1f%%\n", savingsRate)

	lower := strings.ToLower(message)

	if strings.Contains(lower, "expense") || strings.Contains(lower, "analyze") {
		b.WriteString("\nQuick Analysis:\n" +
			"- Track every expense for 30 days\n" +
			"- Categorize spending (housing, food, transport)\n" +
			"- Aim for 50% needs, 30% wants, 20% savings\n")
	}

	if strings.Contains(lower, "budget") {
		b.WriteString("\nBudget Basics:\n" +
			"1. List all income sources\n" +
			"2. Track all expenses\n" +
			"3. Set limits per category\n" +
			"4. Review monthly\n")
	}

	if strings.Contains(lower, "save") || strings.Contains(lower, "saving") {
		b.WriteString("\nSavings Tips:\n" +
			"- Emergency fund: 3-6 months expenses\n" +
			"- Automate savings transfers\n" +
			"- Pay yourself first\n")
	}

	if strings.Contains(lower, "debt") {
		b.WriteString("\nDebt Strategy:\n" +
			"- Pay minimums on all\n" +
			"- Extra to highest rate (avalanche)\n" +
			"- Or smallest balance (snowball)\n")
	}

	return b.String()
}
