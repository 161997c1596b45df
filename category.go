package deepresearch

import "strings"

// Category is the topical bucket assigned by AI enhancement.
type Category string

// Supported categories.
const (
	CategoryAIML        Category = "AI/ML"
	CategoryProgramming Category = "Programming"
	CategoryResearch    Category = "Research"
	CategoryDataScience Category = "Data Science"
	CategoryTechnology  Category = "Technology"
	CategoryBusiness    Category = "Business"
	CategoryScience     Category = "Science"
	CategoryOther       Category = "Other"
)

// Categories lists every category in prompt order.
var Categories = []Category{
	CategoryAIML,
	CategoryProgramming,
	CategoryResearch,
	CategoryDataScience,
	CategoryTechnology,
	CategoryBusiness,
	CategoryScience,
	CategoryOther,
}

// IsValid returns true if c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps free text onto the closed category set,
// case-insensitively. Anything unrecognized becomes CategoryOther.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOther
}
