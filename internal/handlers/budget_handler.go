package handlers

import (
	"net/http"

	"finance-coach/internal/dto"
	"finance-coach/internal/errors"
	"finance-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget analysis HTTP requests
type BudgetHandler struct {
	advisor services.BudgetAdvisorInterface
	metrics services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(advisor services.BudgetAdvisorInterface, metrics services.MetricsRecorderInterface) *BudgetHandler {
	return &BudgetHandler{advisor: advisor, metrics: metrics}
}

// AnalyzeBudget analyzes income against expenses
// @Summary Analyze budget
// @Description Compute savings rate and budget health with recommendations
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.BudgetAnalyzeRequest true "Budget details"
// @Success 200 {object} SuccessResponse{data=models.BudgetReport} "Budget analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/budget/analyze [post]
func (h *BudgetHandler) AnalyzeBudget(c echo.Context) error {
	var req dto.BudgetAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	report := h.advisor.AnalyzeBudget(c.Request().Context(), *req.Income, dto.ToRecords(req.Expenses))

	if h.metrics != nil {
		h.metrics.RecordAnalysis("budget_analyze", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}
