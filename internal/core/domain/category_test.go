package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCategories_AreValid(t *testing.T) {
	categories := AllCategories()

	assert.Len(t, categories, 8)
	for _, c := range categories {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
}

func TestCategory_IsValid_Unknown(t *testing.T) {
	assert.False(t, Category("Foobar").IsValid())
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("economie").IsValid())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Économie", CategoryEconomie},
		{"économie", CategoryEconomie},
		{"ÉCONOMIE", CategoryEconomie},
		{"  Sport  ", CategorySport},
		{"politique", CategoryPolitique},
		{"Santé", CategorySante},
		{"Foobar", DefaultCategory},
		{"", DefaultCategory},
		{"Politique, Économie", DefaultCategory},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCategory(tt.input)

			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestDefaultCategory(t *testing.T) {
	assert.Equal(t, CategoryInternational, DefaultCategory)
	assert.Equal(t, "International", DefaultCategory.String())
}
