package models

// Canonical nutrient keys, Open Food Facts "_value" naming.
// Values are numeric and non-negative when present; a missing key means
// "not detected", never zero.
const (
	KeyEnergyKcal    = "energy-kcal_value"
	KeyFat           = "fat_value"
	KeySaturatedFat  = "saturated-fat_value"
	KeyTransFat      = "trans-fat_value"
	KeyCholesterol   = "cholesterol_value"
	KeySodium        = "sodium_value"
	KeyCarbohydrates = "carbohydrates_value"
	KeySugars        = "sugars_value"
	KeyFiber         = "fiber_value"
	KeyProteins      = "proteins_value"
)

// NutrientKeys lists every key a nutrient record may carry. Fiber is only
// ever barcode-sourced; the label extractor covers the other nine.
var NutrientKeys = []string{
	KeyEnergyKcal,
	KeyFat,
	KeySaturatedFat,
	KeyTransFat,
	KeyCholesterol,
	KeySodium,
	KeyCarbohydrates,
	KeySugars,
	KeyFiber,
	KeyProteins,
}

// Product is the metadata block resolved from a barcode lookup. It is
// all-or-nothing per lookup: absent fields default to explicit sentinels,
// never to empty-and-meaningful values.
type Product struct {
	Name        string             `json:"product_name"`
	Brand       string             `json:"brand"`
	Categories  string             `json:"categories"`
	Ingredients string             `json:"ingredients_text"`
	ImageURL    string             `json:"image_url"`
	Nutriscore  string             `json:"nutriscore"`
	Nutriments  map[string]float64 `json:"nutriments"`
}
