package handlers

import (
	"net/http"

	"finance-coach/internal/dto"
	"finance-coach/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DemoHandler serves a bundled sample dataset so clients can exercise the
// API without real data
type DemoHandler struct{}

// NewDemoHandler creates a new demo handler
func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

// SampleData returns a fixed month of demo expenses with an income figure
// @Summary Sample data
// @Description Return a bundled demo dataset of income and expenses
// @Tags Demo
// @Produce json
// @Success 200 {object} dto.SampleDataResponse "Demo dataset"
// @Router /api/sample-data [get]
func (h *DemoHandler) SampleData(c echo.Context) error {
	expenses := sampleExpenses()
	return c.JSON(http.StatusOK, dto.SampleDataResponse{
		Success:  true,
		Income:   decimal.NewFromInt(5000),
		Expenses: expenses,
		Count:    len(expenses),
	})
}

func sampleExpenses() []models.ExpenseRecord {
	return []models.ExpenseRecord{
		{Date: "2024-01-01", Category: "Housing", Amount: decimal.NewFromFloat(1500.00), Description: "Monthly Rent"},
		{Date: "2024-01-02", Category: "Food", Amount: decimal.NewFromFloat(85.50), Description: "Grocery Store"},
		{Date: "2024-01-03", Category: "Transportation", Amount: decimal.NewFromFloat(45.00), Description: "Gas"},
		{Date: "2024-01-05", Category: "Food", Amount: decimal.NewFromFloat(32.50), Description: "Restaurant"},
		{Date: "2024-01-07", Category: "Entertainment", Amount: decimal.NewFromFloat(120.00), Description: "Movie"},
		{Date: "2024-01-08", Category: "Utilities", Amount: decimal.NewFromFloat(150.00), Description: "Electric"},
		{Date: "2024-01-10", Category: "Shopping", Amount: decimal.NewFromFloat(200.00), Description: "Amazon"},
		{Date: "2024-01-12", Category: "Food", Amount: decimal.NewFromFloat(95.00), Description: "Groceries"},
		{Date: "2024-01-15", Category: "Transportation", Amount: decimal.NewFromFloat(50.00), Description: "Uber"},
		{Date: "2024-01-18", Category: "Entertainment", Amount: decimal.NewFromFloat(45.00), Description: "Netflix"},
	}
}
