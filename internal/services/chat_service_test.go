package services

import (
	"context"
	"testing"
	"time"

	"finance-coach/internal/genai"
	"finance-coach/internal/genai/genai_mocks"
	"finance-coach/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ChatServiceTestSuite defines the test suite for the chat service
type ChatServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockGen *genai_mocks.MockGenerator
}

// SetupTest runs before each test
func (s *ChatServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGen = genai_mocks.NewMockGenerator(s.ctrl)
}

// TearDownTest runs after each test
func (s *ChatServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestChatServiceSuite runs the test suite
func TestChatServiceSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}

func chatContext() models.ChatContext {
	return models.ChatContext{
		Income: decimal.NewFromInt(5000),
		Expenses: []models.ExpenseRecord{
			{Amount: decimal.NewFromInt(2000), Description: "Rent"},
		},
		Debts: []models.DebtRecord{
			{Name: "CC", Balance: decimal.NewFromInt(3000), Rate: 20, MinPayment: decimal.NewFromInt(90)},
		},
	}
}

func (s *ChatServiceTestSuite) TestReply_Generated() {
	s.mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Here is some advice", nil)

	chat := NewChatService(s.mockGen, time.Second, nil, "models/gemini-2.5-flash")
	reply := chat.Reply(context.Background(), "How do I budget?", chatContext())

	s.Equal("Here is some advice", reply.Message)
	s.True(reply.AIPowered)
	s.Equal("models/gemini-2.5-flash", reply.Model)
	s.NotNil(reply.Suggestions)
}

func (s *ChatServiceTestSuite) TestReply_PromptCarriesFinancialSnapshot() {
	s.mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string, _ genai.GenerateOptions) (string, error) {
			s.Contains(prompt, "5000.00")
			s.Contains(prompt, "2000.00")
			s.Contains(prompt, "Debts: 1")
			s.Contains(prompt, "How do I budget?")
			return "ok", nil
		})

	chat := NewChatService(s.mockGen, time.Second, nil, "m")
	chat.Reply(context.Background(), "How do I budget?", chatContext())
}

func (s *ChatServiceTestSuite) TestReply_FallbackWithoutGenerator() {
	chat := NewChatService(nil, time.Second, nil, "")
	reply := chat.Reply(context.Background(), "hello", chatContext())

	s.False(reply.AIPowered)
	s.Empty(reply.Model)
	s.Contains(reply.Message, "Financial Summary")
	s.Contains(reply.Message, "5000.00")
	s.Contains(reply.Message, "3000.00")
	s.Contains(reply.Message, "60.0%")
}

func (s *ChatServiceTestSuite) TestReply_FallbackOnGenerationFailure() {
	s.mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &genai.GenerationError{Reason: "deadline exceeded"})

	chat := NewChatService(s.mockGen, time.Second, nil, "m")
	reply := chat.Reply(context.Background(), "hello", chatContext())

	s.False(reply.AIPowered)
	s.Contains(reply.Message, "Financial Summary")
}

func (s *ChatServiceTestSuite) TestReply_FallbackTopicBlocks() {
	chat := NewChatService(nil, time.Second, nil, "")

	tests := []struct {
		name     string
		message  string
		contains []string
		excludes []string
	}{
		{
			name:     "budget question",
			message:  "Help me with my budget",
			contains: []string{"Budget Basics"},
			excludes: []string{"Debt Strategy", "Savings Tips"},
		},
		{
			name:     "savings question",
			message:  "How much should I be saving?",
			contains: []string{"Savings Tips"},
			excludes: []string{"Budget Basics"},
		},
		{
			name:     "debt question",
			message:  "What about my debt?",
			contains: []string{"Debt Strategy", "avalanche", "snowball"},
			excludes: []string{"Budget Basics"},
		},
		{
			name:     "expense question",
			message:  "Analyze my expense history",
			contains: []string{"Quick Analysis"},
			excludes: []string{"Debt Strategy"},
		},
		{
			name:     "multiple topics stack",
			message:  "Should I budget to pay off debt?",
			contains: []string{"Budget Basics", "Debt Strategy"},
		},
		{
			name:     "unrelated question only gets summary",
			message:  "hello there",
			contains: []string{"Financial Summary"},
			excludes: []string{"Budget Basics", "Debt Strategy", "Savings Tips", "Quick Analysis"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			reply := chat.Reply(context.Background(), tt.message, chatContext())

			for _, want := range tt.contains {
				s.Contains(reply.Message, want)
			}
			for _, unwanted := range tt.excludes {
				s.NotContains(reply.Message, unwanted)
			}
		})
	}
}

func (s *ChatServiceTestSuite) TestReply_ZeroIncomeNoDivideByZero() {
	chat := NewChatService(nil, time.Second, nil, "")
	reply := chat.Reply(context.Background(), "hi", models.ChatContext{})

	s.Contains(reply.Message, "0.0%")
}
