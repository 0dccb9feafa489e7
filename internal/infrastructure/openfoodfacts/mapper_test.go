package openfoodfacts

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Query()
}

func TestExtractFloat(t *testing.T) {
	m := map[string]any{
		"number":   float64(12.5),
		"string":   " 7.25 ",
		"garbage":  "n/a",
		"empty":    "",
		"bool":     true,
		"infinite": math.Inf(1),
		"nan":      math.NaN(),
	}

	tests := []struct {
		key     string
		wantNil bool
		want    float64
	}{
		{"number", false, 12.5},
		{"string", false, 7.25},
		{"garbage", true, 0},
		{"empty", true, 0},
		{"bool", true, 0},
		{"infinite", true, 0},
		{"nan", true, 0},
		{"missing", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := extractFloat(m, tc.key)
			if tc.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestExtractFloat_NilMap(t *testing.T) {
	assert.Nil(t, extractFloat(nil, NutrimentEnergyKcal))
}

func TestMapProducts(t *testing.T) {
	var resp searchResponse
	err := json.Unmarshal([]byte(`{"products": [
		{"product_name": "  Arroz largo  ", "nutriments": {"energy-kcal_100g": 350, "energy_100g": 1464, "proteins_100g": 7, "carbohydrates_100g": 78, "fat_100g": 0.9}, "categories_tags": ["en:rices"], "languages_tags": ["en:spanish", "en:french"]},
		{"nutriments": null}
	]}`), &resp)
	require.NoError(t, err)

	products := mapProducts(resp.Products)
	require.Len(t, products, 2)

	assert.Equal(t, "Arroz largo", products[0].DisplayName)
	assert.Equal(t, 350.0, *products[0].Nutrients.EnergyKcal)
	assert.Equal(t, 1464.0, *products[0].Nutrients.EnergyKJ)
	assert.Equal(t, 7.0, *products[0].Nutrients.Protein)
	assert.Equal(t, 78.0, *products[0].Nutrients.Carbs)
	assert.Equal(t, 0.9, *products[0].Nutrients.Fat)
	assert.True(t, products[0].Nutrients.HasEnergy())

	assert.Empty(t, products[1].DisplayName)
	assert.False(t, products[1].Nutrients.HasEnergy())
	assert.Nil(t, products[1].CategoryTags)
}
