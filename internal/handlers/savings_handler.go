package handlers

import (
	"net/http"

	"finance-coach/internal/dto"
	"finance-coach/internal/errors"
	"finance-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// SavingsHandler handles savings strategy HTTP requests
type SavingsHandler struct {
	advisor services.SavingsAdvisorInterface
	metrics services.MetricsRecorderInterface
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(advisor services.SavingsAdvisorInterface, metrics services.MetricsRecorderInterface) *SavingsHandler {
	return &SavingsHandler{advisor: advisor, metrics: metrics}
}

// CreateStrategy builds a personalized savings strategy
// @Summary Create savings strategy
// @Description Size an emergency fund and recommend a monthly savings amount
// @Tags Savings
// @Accept json
// @Produce json
// @Param request body dto.SavingsStrategyRequest true "Income and expenses"
// @Success 200 {object} SuccessResponse{data=models.SavingsStrategy} "Savings strategy"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/savings/strategy [post]
func (h *SavingsHandler) CreateStrategy(c echo.Context) error {
	var req dto.SavingsStrategyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	strategy := h.advisor.CreateStrategy(c.Request().Context(), *req.Income, dto.ToRecords(req.Expenses))

	if h.metrics != nil {
		h.metrics.RecordAnalysis("savings_strategy", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: strategy})
}
