package domain

import "strings"

// Category is an editorial label from a fixed, closed set.
type Category string

// Available categories.
const (
	CategoryPolitique     Category = "Politique"
	CategoryEconomie      Category = "Économie"
	CategorySecurite      Category = "Sécurité"
	CategorySociete       Category = "Société"
	CategorySante         Category = "Santé"
	CategoryTechnologie   Category = "Technologie"
	CategorySport         Category = "Sport"
	CategoryInternational Category = "International"
)

// DefaultCategory is assigned when a category is missing or unrecognised.
const DefaultCategory = CategoryInternational

// AllCategories returns the closed label set in display order.
func AllCategories() []Category {
	return []Category{
		CategoryPolitique,
		CategoryEconomie,
		CategorySecurite,
		CategorySociete,
		CategorySante,
		CategoryTechnologie,
		CategorySport,
		CategoryInternational,
	}
}

// IsValid returns true if the category belongs to the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPolitique, CategoryEconomie, CategorySecurite, CategorySociete,
		CategorySante, CategoryTechnologie, CategorySport, CategoryInternational:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// ParseCategory matches s case-insensitively against the closed set.
// Unknown or empty values resolve to DefaultCategory; a new label is never created.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCategory
	}
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), s) {
			return c
		}
	}
	return DefaultCategory
}
