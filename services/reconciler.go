package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"backend/models"
)

// OCRDisclaimer marks nutrient data that came from label OCR rather than a
// database lookup.
const OCRDisclaimer = "Nutrition Facts (extracted via OCR):"

// Reconcile decides which data source is authoritative for a request and
// renders the product-information block the narrative generator consumes.
// Barcode data, when present, fully supersedes the OCR facts; the two are
// never merged. labels are best-effort image hints, used only on the OCR
// path where no product name exists.
func Reconcile(product *models.Product, ocrFacts map[string]float64, labels []string) (facts map[string]float64, productInfo string, barcodeUsed bool) {
	if product != nil {
		nutriments, _ := json.MarshalIndent(product.Nutriments, "", "  ")
		productInfo = fmt.Sprintf(
			"Product Name: %s\nBrand: %s\nCategories: %s\nNutriscore: %s\nIngredients: %s\nNutrition Facts: %s\n",
			product.Name, product.Brand, product.Categories, product.Nutriscore, product.Ingredients, nutriments,
		)
		return product.Nutriments, productInfo, true
	}

	rendered, _ := json.MarshalIndent(ocrFacts, "", "  ")
	var sb strings.Builder
	sb.WriteString(OCRDisclaimer + "\n")
	sb.Write(rendered)
	sb.WriteString("\n")
	if len(labels) > 0 {
		sb.WriteString("Detected on image (approximate): " + strings.Join(labels, ", ") + "\n")
	}
	return ocrFacts, sb.String(), false
}
