package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"finance-coach/internal/config"
	"finance-coach/internal/dto"
	"finance-coach/internal/errors"
	"finance-coach/internal/importer"
	"finance-coach/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// categorizeConfidence is the fixed confidence reported for keyword-based
// categorization. The matcher is deterministic, so the value only signals
// that the result is heuristic rather than user-supplied.
const categorizeConfidence = 0.85

// ExpenseHandler handles expense analysis and upload HTTP requests
type ExpenseHandler struct {
	analyzer   services.ExpenseAnalyzerInterface
	categories services.CategoryServiceInterface
	metrics    services.MetricsRecorderInterface
	upload     config.UploadConfig
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	analyzer services.ExpenseAnalyzerInterface,
	categories services.CategoryServiceInterface,
	metrics services.MetricsRecorderInterface,
	upload config.UploadConfig,
) *ExpenseHandler {
	return &ExpenseHandler{
		analyzer:   analyzer,
		categories: categories,
		metrics:    metrics,
		upload:     upload,
	}
}

// AnalyzeExpenses aggregates expenses into a category breakdown
// @Summary Analyze expenses
// @Description Aggregate expenses into per-category totals with percentages and insights
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.ExpenseAnalyzeRequest true "Expense list"
// @Success 200 {object} SuccessResponse{data=models.ExpenseAnalysis} "Expense analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/expenses/analyze [post]
func (h *ExpenseHandler) AnalyzeExpenses(c echo.Context) error {
	var req dto.ExpenseAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	analysis := h.analyzer.Analyze(dto.ToRecords(req.Expenses))

	if h.metrics != nil {
		h.metrics.RecordAnalysis("expense_analyze", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: analysis})
}

// Categorize assigns a category to a single expense description
// @Summary Categorize expense
// @Description Map a free-text description to a spending category
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.CategorizeRequest true "Expense description"
// @Success 200 {object} SuccessResponse{data=dto.CategorizeResponse} "Categorization result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/expenses/categorize [post]
func (h *ExpenseHandler) Categorize(c echo.Context) error {
	var req dto.CategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	category := h.categories.Categorize(req.Description, amount)

	if h.metrics != nil {
		h.metrics.RecordAnalysis("expense_categorize", "success")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.CategorizeResponse{
		Category:   string(category),
		Confidence: categorizeConfidence,
	}})
}

// Upload parses a CSV transaction export into expense records
// @Summary Upload expense CSV
// @Description Parse an uploaded CSV file into expense records, skipping malformed rows
// @Tags Expenses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.UploadResponse "Parsed expenses"
// @Failure 400 {object} errors.ErrorResponse "UPLOAD_001 - Missing file or UPLOAD_002 - Invalid type"
// @Failure 413 {object} errors.ErrorResponse "UPLOAD_003 - File too large"
// @Router /api/expenses/upload [post]
func (h *ExpenseHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.UploadMissingFile)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !h.upload.ExtensionAllowed(ext) {
		return SendError(c, errors.UploadInvalidType,
			errors.WithDetails("Allowed extensions: "+strings.Join(h.upload.AllowedExtensions, ", ")))
	}

	if fileHeader.Size > h.upload.MaxBytes {
		return SendError(c, errors.UploadTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendError(c, errors.UploadUnreadable)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.upload.MaxBytes+1))
	if err != nil {
		return SendError(c, errors.UploadUnreadable)
	}
	if int64(len(data)) > h.upload.MaxBytes {
		return SendError(c, errors.UploadTooLarge)
	}

	expenses, skipped, err := importer.Parse(data)
	if err != nil {
		return SendError(c, errors.UploadUnreadable, errors.WithDetails(err.Error()))
	}
	if len(expenses) == 0 {
		return SendError(c, errors.UploadNoValidRows)
	}

	if h.metrics != nil {
		h.metrics.RecordUploadRows(len(expenses), skipped)
		h.metrics.RecordAnalysis("expense_upload", "success")
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		Expenses: expenses,
		Count:    len(expenses),
		Skipped:  skipped,
	})
}
