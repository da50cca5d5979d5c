package handlers

import (
	"net/http"
	"strings"

	"finance-coach/internal/dto"
	"finance-coach/internal/errors"
	"finance-coach/internal/models"
	"finance-coach/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DebtHandler handles debt analysis and payoff planning HTTP requests
type DebtHandler struct {
	planner services.DebtPlannerInterface
	metrics services.MetricsRecorderInterface
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(planner services.DebtPlannerInterface, metrics services.MetricsRecorderInterface) *DebtHandler {
	return &DebtHandler{planner: planner, metrics: metrics}
}

// AnalyzeDebts summarizes a debt portfolio
// @Summary Analyze debts
// @Description Summarize a debt portfolio with totals, average rate, and a priority target
// @Tags Debts
// @Accept json
// @Produce json
// @Param request body dto.DebtAnalyzeRequest true "Debt list"
// @Success 200 {object} SuccessResponse{data=models.DebtAnalysis} "Debt analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request or VALIDATION_005 - Duplicate debt names"
// @Router /api/debt/analyze [post]
func (h *DebtHandler) AnalyzeDebts(c echo.Context) error {
	var req dto.DebtAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	analysis := h.planner.Analyze(dto.ToDebtRecords(req.Debts))

	if h.metrics != nil {
		h.metrics.RecordAnalysis("debt_analyze", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: analysis})
}

// CreatePayoffPlan builds a payoff plan using the requested method
// @Summary Create payoff plan
// @Description Order debts by the avalanche or snowball method and estimate the payoff horizon
// @Tags Debts
// @Accept json
// @Produce json
// @Param request body dto.PayoffPlanRequest true "Debts, extra payment, and method"
// @Success 200 {object} SuccessResponse{data=models.PayoffPlan} "Payoff plan"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/debt/payoff-plan [post]
func (h *DebtHandler) CreatePayoffPlan(c echo.Context) error {
	var req dto.PayoffPlanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	method := models.MethodAvalanche
	if strings.ToLower(req.Method) == string(models.MethodSnowball) {
		method = models.MethodSnowball
	}

	extraPayment := decimal.Zero
	if req.ExtraPayment != nil {
		extraPayment = *req.ExtraPayment
	}

	plan := h.planner.CreatePayoffPlan(dto.ToDebtRecords(req.Debts), extraPayment, method)

	if h.metrics != nil {
		h.metrics.RecordAnalysis("debt_payoff_plan", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: plan})
}

// CompareMethods compares the avalanche and snowball methods
// @Summary Compare payoff methods
// @Description Run both payoff methods over the same debts and recommend one
// @Tags Debts
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Debts and extra payment"
// @Success 200 {object} SuccessResponse{data=models.MethodComparison} "Method comparison"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/debt/compare [post]
func (h *DebtHandler) CompareMethods(c echo.Context) error {
	var req dto.CompareRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	extraPayment := decimal.Zero
	if req.ExtraPayment != nil {
		extraPayment = *req.ExtraPayment
	}

	comparison := h.planner.CompareMethods(dto.ToDebtRecords(req.Debts), extraPayment)

	if h.metrics != nil {
		h.metrics.RecordAnalysis("debt_compare", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: comparison})
}
