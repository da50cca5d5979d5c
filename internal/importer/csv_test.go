package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CSVImporterTestSuite defines the test suite for the CSV importer
type CSVImporterTestSuite struct {
	suite.Suite
}

// TestCSVImporterSuite runs the test suite
func TestCSVImporterSuite(t *testing.T) {
	suite.Run(t, new(CSVImporterTestSuite))
}

func (s *CSVImporterTestSuite) TestParse_StandardFile() {
	data := []byte("date,category,amount,description\n" +
		"2024-01-15,Food,85.50,Grocery Store\n" +
		"2024-01-16,Transportation,45.00,Gas\n")

	expenses, skipped, err := Parse(data)

	s.Require().NoError(err)
	s.Zero(skipped)
	s.Require().Len(expenses, 2)
	s.Equal("2024-01-15", expenses[0].Date)
	s.Equal("Food", expenses[0].Category)
	s.True(expenses[0].Amount.Equal(decimal.NewFromFloat(85.50)))
	s.Equal("Grocery Store", expenses[0].Description)
}

func (s *CSVImporterTestSuite) TestParse_HeaderCaseVariants() {
	data := []byte("Date,CATEGORY,Amount,Description\n" +
		"2024-01-15,Food,10.00,Lunch\n")

	expenses, _, err := Parse(data)

	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal("Food", expenses[0].Category)
}

func (s *CSVImporterTestSuite) TestParse_NameColumnAsDescription() {
	data := []byte("date,amount,name\n" +
		"2024-01-15,10.00,Corner Cafe\n")

	expenses, _, err := Parse(data)

	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal("Corner Cafe", expenses[0].Description)
}

func (s *CSVImporterTestSuite) TestParse_CurrencySymbolsAndThousandsSeparators() {
	data := []byte("date,category,amount,description\n" +
		"2024-01-01,Housing,\"$1,500.00\",Rent\n" +
		"2024-01-02,Shopping,€200.00,Imported goods\n")

	expenses, skipped, err := Parse(data)

	s.Require().NoError(err)
	s.Zero(skipped)
	s.Require().Len(expenses, 2)
	s.True(expenses[0].Amount.Equal(decimal.NewFromInt(1500)))
	s.True(expenses[1].Amount.Equal(decimal.NewFromInt(200)))
}

func (s *CSVImporterTestSuite) TestParse_DelimiterDetection() {
	tests := []struct {
		name string
		data string
	}{
		{"semicolon", "date;category;amount;description\n2024-01-15;Food;10.00;Lunch\n"},
		{"tab", "date\tcategory\tamount\tdescription\n2024-01-15\tFood\t10.00\tLunch\n"},
		{"pipe", "date|category|amount|description\n2024-01-15|Food|10.00|Lunch\n"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			expenses, _, err := Parse([]byte(tt.data))

			s.Require().NoError(err)
			s.Require().Len(expenses, 1)
			s.Equal("Food", expenses[0].Category)
			s.True(expenses[0].Amount.Equal(decimal.NewFromInt(10)))
		})
	}
}

func (s *CSVImporterTestSuite) TestParse_SkipsBadRows() {
	data := []byte("date,category,amount,description\n" +
		"2024-01-15,Food,not-a-number,Lunch\n" +
		"2024-01-16,Food,12.00,Dinner\n" +
		"2024-01-17,Food,,Snack\n")

	expenses, skipped, err := Parse(data)

	s.Require().NoError(err)
	s.Equal(2, skipped)
	s.Require().Len(expenses, 1)
	s.Equal("Dinner", expenses[0].Description)
}

func (s *CSVImporterTestSuite) TestParse_MissingCategoryDefaultsToOther() {
	data := []byte("date,amount,description\n" +
		"2024-01-15,10.00,Mystery purchase\n")

	expenses, _, err := Parse(data)

	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal("Other", expenses[0].Category)
}

func (s *CSVImporterTestSuite) TestParse_NoAmountColumn() {
	data := []byte("date,category,description\n" +
		"2024-01-15,Food,Lunch\n")

	_, _, err := Parse(data)

	s.ErrorIs(err, ErrNoAmountColumn)
}

func (s *CSVImporterTestSuite) TestParse_EmptyFile() {
	_, _, err := Parse(nil)

	s.ErrorIs(err, ErrEmptyFile)
}

func (s *CSVImporterTestSuite) TestParse_HeaderOnly() {
	expenses, skipped, err := Parse([]byte("date,category,amount,description\n"))

	s.Require().NoError(err)
	s.Zero(skipped)
	s.Empty(expenses)
}
