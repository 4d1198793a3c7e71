package utils

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractNutritionFacts(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]float64
	}{
		{
			name:     "single sodium line",
			text:     "Sodium 350mg",
			expected: map[string]float64{models.KeySodium: 350},
		},
		{
			name: "typical label",
			text: "Nutrition Facts\nServing Size 2/3 cup\nCalories 230\nTotal Fat 8g\nSaturated Fat 1g\nTrans Fat 0g\nCholesterol 0mg\nSodium 160mg\nTotal Carbohydrate 37g\nTotal Sugars 12g\nProtein 3g",
			expected: map[string]float64{
				models.KeyEnergyKcal:    230,
				models.KeyFat:           8,
				models.KeySaturatedFat:  1,
				models.KeyTransFat:      0,
				models.KeyCholesterol:   0,
				models.KeySodium:        160,
				models.KeyCarbohydrates: 37,
				models.KeySugars:        12,
				models.KeyProteins:      3,
			},
		},
		{
			name:     "case insensitive with noise",
			text:     "INGREDIENTS: WATER, SUGAR.\nsodium 200 mg per serving\nBest snack ever!",
			expected: map[string]float64{models.KeySodium: 200},
		},
		{
			name:     "first occurrence wins",
			text:     "Sodium 100mg\nSodium 900mg",
			expected: map[string]float64{models.KeySodium: 100},
		},
		{
			name:     "decimal values",
			text:     "Total Fat 12.5g\nProtein 0.8g",
			expected: map[string]float64{models.KeyFat: 12.5, models.KeyProteins: 0.8},
		},
		{
			name:     "no recognizable labels",
			text:     "Great taste! Family owned since 1952.",
			expected: map[string]float64{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: map[string]float64{},
		},
		{
			name:     "label without a number is skipped",
			text:     "Sodium content varies\nTotal Fat 5g",
			expected: map[string]float64{models.KeyFat: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractNutritionFacts(tt.text))
		})
	}
}

func TestExtractNutritionFactsIsPure(t *testing.T) {
	text := "Calories 120\nSodium 85mg"
	first := ExtractNutritionFacts(text)
	second := ExtractNutritionFacts(text)
	assert.Equal(t, first, second)
}

func TestExtractNutritionFactsNeverEmitsFiber(t *testing.T) {
	// Fiber only ever arrives from the barcode provider.
	facts := ExtractNutritionFacts("Dietary Fiber 4g\nSodium 10mg")
	assert.NotContains(t, facts, models.KeyFiber)
	assert.Equal(t, 10.0, facts[models.KeySodium])
}
