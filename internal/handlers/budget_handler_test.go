package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-coach/internal/models"
	"finance-coach/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockAdvisor *service_mocks.MockBudgetAdvisorInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	handler     *BudgetHandler
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockAdvisor = service_mocks.NewMockBudgetAdvisorInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.mockAdvisor, s.mockMetrics)
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerTestSuite) newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/budget/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BudgetHandlerTestSuite) TestAnalyzeBudget_Success() {
	report := &models.BudgetReport{
		Income:          decimal.NewFromInt(5000),
		TotalExpenses:   decimal.NewFromInt(3500),
		Savings:         decimal.NewFromInt(1500),
		SavingsRate:     30.0,
		BudgetHealth:    models.HealthGood,
		Recommendations: "Great job! Your savings rate is healthy. Consider increasing investments.",
	}

	s.mockAdvisor.EXPECT().
		AnalyzeBudget(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, income decimal.Decimal, expenses []models.ExpenseRecord) *models.BudgetReport {
			s.True(income.Equal(decimal.NewFromInt(5000)))
			s.Len(expenses, 2)
			return report
		})
	s.mockMetrics.EXPECT().RecordAnalysis("budget_analyze", "success")

	body := `{
		"income": 5000,
		"expenses": [
			{"date": "2024-01-01", "category": "Housing", "amount": 1500, "description": "Rent"},
			{"date": "2024-01-02", "category": "Food", "amount": 2000, "description": "Groceries"}
		]
	}`
	c, rec := s.newContext(body)

	err := s.handler.AnalyzeBudget(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.BudgetReport `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.HealthGood, response.Data.BudgetHealth)
	s.InDelta(30.0, response.Data.SavingsRate, 0.001)
}

func (s *BudgetHandlerTestSuite) TestAnalyzeBudget_InvalidJSON() {
	c, rec := s.newContext(`{"income": not-json`)

	err := s.handler.AnalyzeBudget(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *BudgetHandlerTestSuite) TestAnalyzeBudget_MissingIncome() {
	c, _ := s.newContext(`{"expenses": []}`)

	err := s.handler.AnalyzeBudget(c)
	// Validation errors propagate to the central error handler
	s.Error(err)
}

func (s *BudgetHandlerTestSuite) TestAnalyzeBudget_NegativeIncome() {
	c, _ := s.newContext(`{"income": -100, "expenses": []}`)

	err := s.handler.AnalyzeBudget(c)
	s.Error(err)
}

func (s *BudgetHandlerTestSuite) TestAnalyzeBudget_NilMetrics() {
	handler := NewBudgetHandler(s.mockAdvisor, nil)

	s.mockAdvisor.EXPECT().
		AnalyzeBudget(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.BudgetReport{BudgetHealth: models.HealthFair})

	c, rec := s.newContext(`{"income": 1000, "expenses": []}`)

	err := handler.AnalyzeBudget(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
