package services

import (
	"strings"

	"finance-coach/internal/models"

	"github.com/shopspring/decimal"
)

// keywordRule binds a category to the substrings that select it. Rules are
// evaluated in declaration order; the first category with a matching keyword
// wins.
type keywordRule struct {
	category models.Category
	keywords []string
}

type categoryService struct {
	rules []keywordRule
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{rules: initKeywordRules()}
}

// Categorize maps a free-text description to a category via case-insensitive
// substring matching against the static keyword table
func (s *categoryService) Categorize(description string, _ decimal.Decimal) models.Category {
	normalized := strings.ToLower(description)

	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.category
			}
		}
	}

	return models.CategoryOther
}

// initKeywordRules initializes the category keyword table
func initKeywordRules() []keywordRule {
	return []keywordRule{
		{models.CategoryFood, []string{"grocery", "restaurant", "food", "cafe", "dining", "pizza", "coffee"}},
		{models.CategoryTransportation, []string{"gas", "uber", "lyft", "transit", "parking", "fuel"}},
		{models.CategoryHousing, []string{"rent", "mortgage", "property", "lease"}},
		{models.CategoryUtilities, []string{"electric", "water", "internet", "phone", "utility", "bill"}},
		{models.CategoryEntertainment, []string{"movie", "concert", "game", "netflix", "spotify", "entertainment"}},
		{models.CategoryShopping, []string{"amazon", "store", "mall", "clothing", "clothes", "shopping"}},
	}
}
