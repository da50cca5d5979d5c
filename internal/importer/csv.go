// Package importer parses uploaded transaction exports into expense records.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNoAmountColumn is returned when the header row has no recognizable
// amount column. Without it every row would be meaningless.
var ErrNoAmountColumn = errors.New("csv header has no amount column")

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("csv file is empty")

var candidateDelimiters = []rune{',', ';', '\t', '|'}

// columnIndexes maps the recognized header names to their positions.
// A value of -1 means the column is absent.
type columnIndexes struct {
	date        int
	category    int
	amount      int
	description int
}

// Parse reads CSV content into expense records. The delimiter is detected
// from the header line, headers are matched case-insensitively, and rows
// whose amount cannot be parsed are skipped with a warning rather than
// failing the whole import. It returns the parsed records and the number of
// skipped rows.
func Parse(data []byte) ([]models.ExpenseRecord, int, error) {
	delimiter := detectDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, ErrEmptyFile
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading csv header: %w", err)
	}

	cols := mapColumns(header)
	if cols.amount < 0 {
		return nil, 0, ErrNoAmountColumn
	}

	var expenses []models.ExpenseRecord
	skipped := 0

	// Row numbers are 1-based over the file, so the first data row is 2.
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("skipping malformed csv row", "row", rowNum, "error", err)
			skipped++
			continue
		}

		amount, err := parseAmount(field(row, cols.amount))
		if err != nil {
			slog.Warn("skipping csv row with invalid amount", "row", rowNum, "error", err)
			skipped++
			continue
		}

		category := strings.TrimSpace(field(row, cols.category))
		if category == "" {
			category = string(models.CategoryOther)
		}

		expenses = append(expenses, models.ExpenseRecord{
			Date:        strings.TrimSpace(field(row, cols.date)),
			Category:    category,
			Amount:      amount.Round(2),
			Description: strings.TrimSpace(field(row, cols.description)),
		})
	}

	return expenses, skipped, nil
}

// detectDelimiter picks the candidate delimiter occurring most often in the
// first line, defaulting to comma.
func detectDelimiter(data []byte) rune {
	firstLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		firstLine = data[:idx]
	}

	best := ','
	bestCount := 0
	for _, candidate := range candidateDelimiters {
		count := bytes.Count(firstLine, []byte(string(candidate)))
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}

func mapColumns(header []string) columnIndexes {
	cols := columnIndexes{date: -1, category: -1, amount: -1, description: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "category":
			cols.category = i
		case "amount":
			cols.amount = i
		case "description", "name":
			if cols.description < 0 {
				cols.description = i
			}
		}
	}
	return cols
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount strips currency symbols and thousands separators before
// parsing.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}
