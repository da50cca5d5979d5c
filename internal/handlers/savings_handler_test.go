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

type SavingsHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockAdvisor *service_mocks.MockSavingsAdvisorInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	handler     *SavingsHandler
}

func TestSavingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SavingsHandlerTestSuite))
}

func (s *SavingsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockAdvisor = service_mocks.NewMockSavingsAdvisorInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewSavingsHandler(s.mockAdvisor, s.mockMetrics)
}

func (s *SavingsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SavingsHandlerTestSuite) newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/savings/strategy", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *SavingsHandlerTestSuite) TestCreateStrategy_Success() {
	strategy := &models.SavingsStrategy{
		RecommendedMonthlySavings: decimal.NewFromInt(800),
		EmergencyFundTarget:       decimal.NewFromInt(12000),
		CurrentSavingsCapacity:    decimal.NewFromInt(2000),
		Strategy:                  "Great! You can save $2000.00/month.",
		Timeline:                  "15 months",
	}

	s.mockAdvisor.EXPECT().
		CreateStrategy(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, income decimal.Decimal, expenses []models.ExpenseRecord) *models.SavingsStrategy {
			s.True(income.Equal(decimal.NewFromInt(4000)))
			s.Len(expenses, 1)
			return strategy
		})
	s.mockMetrics.EXPECT().RecordAnalysis("savings_strategy", "success")

	body := `{
		"income": 4000,
		"expenses": [
			{"date": "2024-01-01", "category": "Housing", "amount": 2000, "description": "Rent"}
		]
	}`
	c, rec := s.newContext(body)

	err := s.handler.CreateStrategy(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.SavingsStrategy `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("15 months", response.Data.Timeline)
	s.True(response.Data.EmergencyFundTarget.Equal(decimal.NewFromInt(12000)))
}

func (s *SavingsHandlerTestSuite) TestCreateStrategy_InvalidJSON() {
	c, rec := s.newContext(`not json at all`)

	err := s.handler.CreateStrategy(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *SavingsHandlerTestSuite) TestCreateStrategy_MissingIncome() {
	c, _ := s.newContext(`{"expenses": []}`)

	err := s.handler.CreateStrategy(c)
	s.Error(err)
}

func (s *SavingsHandlerTestSuite) TestCreateStrategy_NegativeExpenseAmount() {
	body := `{
		"income": 4000,
		"expenses": [
			{"date": "2024-01-01", "category": "Housing", "amount": -50, "description": "Rent"}
		]
	}`
	c, _ := s.newContext(body)

	err := s.handler.CreateStrategy(c)
	s.Error(err)
}
