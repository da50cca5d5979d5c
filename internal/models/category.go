package models

// Category is a spending category assigned to an expense record.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryUtilities      Category = "Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryOther          Category = "Other"
)

// AllCategories returns all valid category constants
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if Category(category) == validCategory {
			return true
		}
	}
	return false
}

// CategorizationResult contains the result of categorizing a single expense description
type CategorizationResult struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}
