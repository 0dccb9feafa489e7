package openfoodfacts

import (
	"math"
	"strconv"
	"strings"

	"github.com/nutriquery/backend/internal/domain"
)

// Nutriment keys read from Open Food Facts, all per 100g or 100ml
const (
	NutrimentEnergyKcal = "energy-kcal_100g"
	NutrimentEnergyKJ   = "energy_100g"
	NutrimentProtein    = "proteins_100g"
	NutrimentCarbs      = "carbohydrates_100g"
	NutrimentFat        = "fat_100g"
)

// searchResponse is the subset of the search.pl JSON body that is used
type searchResponse struct {
	Products []product `json:"products"`
}

// product is one search.pl result restricted to the requested fields
type product struct {
	ProductName    string         `json:"product_name"`
	Nutriments     map[string]any `json:"nutriments"`
	CategoriesTags []string       `json:"categories_tags"`
	LanguagesTags  []string       `json:"languages_tags"`
}

// mapProducts converts raw search results to domain products, keeping order.
func mapProducts(raw []product) []domain.ExternalProduct {
	out := make([]domain.ExternalProduct, 0, len(raw))
	for _, p := range raw {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapProduct(p product) domain.ExternalProduct {
	return domain.ExternalProduct{
		DisplayName: strings.TrimSpace(p.ProductName),
		Nutrients: domain.ExternalNutrients{
			EnergyKcal: extractFloat(p.Nutriments, NutrimentEnergyKcal),
			EnergyKJ:   extractFloat(p.Nutriments, NutrimentEnergyKJ),
			Protein:    extractFloat(p.Nutriments, NutrimentProtein),
			Carbs:      extractFloat(p.Nutriments, NutrimentCarbs),
			Fat:        extractFloat(p.Nutriments, NutrimentFat),
		},
		CategoryTags: p.CategoriesTags,
		LanguageTags: p.LanguagesTags,
	}
}

// extractFloat coerces a nutriments value to float64. Open Food Facts sends
// numbers, but some products carry numeric strings. Returns nil when the key
// is missing or the value is not a finite number.
func extractFloat(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
