package utils

import (
	"regexp"
	"strconv"

	"backend/models"
)

// Label patterns for the nine OCR-extractable nutrients. Each key scans the
// whole text independently; the first occurrence of its label wins.
var factPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{models.KeyEnergyKcal, factPattern(`Calories`)},
	{models.KeyFat, factPattern(`Total Fat`)},
	{models.KeySaturatedFat, factPattern(`Saturated Fat`)},
	{models.KeyTransFat, factPattern(`Trans Fat`)},
	{models.KeySodium, factPattern(`Sodium`)},
	{models.KeyCholesterol, factPattern(`Cholesterol`)},
	{models.KeyCarbohydrates, factPattern(`Total Carbohydrate`)},
	{models.KeySugars, factPattern(`Total Sugars`)},
	{models.KeyProteins, factPattern(`Protein`)},
}

func factPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `\s*([0-9.]+)\s*(mg|g|mcg|kcal)?`)
}

// ExtractNutritionFacts pulls nutrient values out of raw OCR text. Labels
// are matched case-insensitively anywhere in the text; a key with no match
// is simply absent from the result. Malformed or unrelated text never
// produces an error; partial extraction is the expected common case.
func ExtractNutritionFacts(text string) map[string]float64 {
	facts := make(map[string]float64)
	for _, p := range factPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		facts[p.key] = v
	}
	return facts
}
