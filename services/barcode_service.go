package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"backend/cache"
	"backend/models"
)

// ErrProductNotFound means Open Food Facts has no entry for the barcode.
var ErrProductNotFound = errors.New("product not found")

const offFields = "product_name,brands,nutriments,ingredients_text,nutriscore_grade,categories,image_url"

// BarcodeService resolves scanned barcodes against the Open Food Facts
// product database. Lookups are all-or-nothing: a failure of any kind yields
// no product, never a partial one.
type BarcodeService struct {
	client  *http.Client
	baseURL string
	cache   *cache.RedisClient
}

// NewBarcodeService builds the resolver. rc may be nil when no cache is
// configured.
func NewBarcodeService(rc *cache.RedisClient) *BarcodeService {
	return &BarcodeService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://world.openfoodfacts.org",
		cache:   rc,
	}
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName     string                 `json:"product_name"`
		Brands          string                 `json:"brands"`
		Nutriments      map[string]interface{} `json:"nutriments"`
		IngredientsText string                 `json:"ingredients_text"`
		NutriscoreGrade string                 `json:"nutriscore_grade"`
		Categories      string                 `json:"categories"`
		ImageURL        string                 `json:"image_url"`
	} `json:"product"`
}

// Lookup fetches product data for a non-empty barcode. Cache reads and
// writes are best effort; a cache outage degrades to a live lookup.
func (s *BarcodeService) Lookup(ctx context.Context, barcode string) (*models.Product, error) {
	if s.cache != nil {
		if product, found, err := s.cache.GetProduct(ctx, barcode); err != nil {
			log.Printf("Barcode cache read failed: %v", err)
		} else if found {
			return product, nil
		}
	}

	u := fmt.Sprintf("%s/api/v0/product/%s.json?fields=%s",
		s.baseURL, url.PathEscape(barcode), offFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts error %d: %s", resp.StatusCode, string(body))
	}

	var or offResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}
	if or.Status == 0 {
		return nil, ErrProductNotFound
	}

	product := &models.Product{
		Name:        valueOr(or.Product.ProductName, "Unknown"),
		Brand:       valueOr(or.Product.Brands, "Unknown"),
		Categories:  valueOr(or.Product.Categories, "N/A"),
		Ingredients: valueOr(or.Product.IngredientsText, "N/A"),
		ImageURL:    or.Product.ImageURL,
		Nutriscore:  valueOr(or.Product.NutriscoreGrade, "N/A"),
		Nutriments:  projectNutriments(or.Product.Nutriments),
	}

	if s.cache != nil {
		if err := s.cache.StoreProduct(ctx, barcode, product); err != nil {
			log.Printf("Barcode cache write failed: %v", err)
		}
	}

	return product, nil
}

// projectNutriments maps the provider's nutriment blob onto the canonical
// key vocabulary. Provider values are already numeric; anything else (unit
// strings, serving descriptors) is skipped, not parsed.
func projectNutriments(raw map[string]interface{}) map[string]float64 {
	out := make(map[string]float64)
	for _, key := range models.NutrientKeys {
		if v, ok := raw[key].(float64); ok && v >= 0 {
			out[key] = v
		}
	}
	return out
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
