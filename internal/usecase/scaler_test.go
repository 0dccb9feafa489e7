package usecase

import (
	"testing"

	"github.com/nutriquery/backend/internal/catalog"
	"github.com/nutriquery/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestScaleProfile(t *testing.T) {
	egg := domain.NutrientProfile{Kcal: 155, Protein: 13.0, Carbs: 1.1, Fat: 11.0}
	rice := domain.NutrientProfile{Kcal: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3}

	tests := []struct {
		name   string
		per100 domain.NutrientProfile
		grams  float64
		want   domain.NutrientProfile
	}{
		{"factor one", egg, 100, egg},
		{"one cup of rice", rice, 158, domain.NutrientProfile{Kcal: 205, Protein: 4.3, Carbs: 44.2, Fat: 0.5}},
		{"zero grams", egg, 0, domain.NutrientProfile{}},
		{"half", egg, 50, domain.NutrientProfile{Kcal: 78, Protein: 6.5, Carbs: 0.6, Fat: 5.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleProfile(tt.per100, tt.grams))
		})
	}
}

func TestScaleProfile_100GramsIsIdentityForCatalog(t *testing.T) {
	for _, e := range catalog.Default().Entries() {
		t.Run(e.Name, func(t *testing.T) {
			assert.Equal(t, e.Per100g, ScaleProfile(e.Per100g, 100))
		})
	}
}

func TestScaleExternal(t *testing.T) {
	tests := []struct {
		name   string
		n      domain.ExternalNutrients
		amount float64
		want   domain.NutrientProfile
	}{
		{
			name:   "kcal field preferred",
			n:      domain.ExternalNutrients{EnergyKcal: ptr(304), EnergyKJ: ptr(9999), Protein: ptr(0.3), Carbs: ptr(82.4), Fat: ptr(0)},
			amount: 45,
			want:   domain.NutrientProfile{Kcal: 137, Protein: 0.1, Carbs: 37.1, Fat: 0},
		},
		{
			name:   "kJ converted",
			n:      domain.ExternalNutrients{EnergyKJ: ptr(418.4)},
			amount: 200,
			want:   domain.NutrientProfile{Kcal: 200},
		},
		{
			name:   "no energy is zero",
			n:      domain.ExternalNutrients{Protein: ptr(10)},
			amount: 50,
			want:   domain.NutrientProfile{Protein: 5},
		},
		{
			name:   "nothing reported",
			n:      domain.ExternalNutrients{},
			amount: 100,
			want:   domain.NutrientProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleExternal(tt.n, tt.amount))
		})
	}
}

func TestAggregate_SumsRoundedItems(t *testing.T) {
	bread := domain.NutrientProfile{Kcal: 265, Protein: 9.0, Carbs: 49.0, Fat: 3.2}

	// 10 g of bread is 26.5 kcal, rounded to 27 per item. Two items total 54,
	// whereas rounding the unrounded sum would give 53.
	item := ScaleProfile(bread, 10)
	assert.Equal(t, 27.0, item.Kcal)

	items := []domain.AnalyzedItem{
		{Name: "Pan", NutrientProfile: item},
		{Name: "Pan", NutrientProfile: item},
	}

	total := Aggregate(items)
	assert.Equal(t, 54.0, total.Kcal)
	assert.Equal(t, 1.8, total.Protein)
	assert.Equal(t, 9.8, total.Carbs)
	assert.Equal(t, 0.6, total.Fat)
}

func TestAggregate_FloatNoise(t *testing.T) {
	items := []domain.AnalyzedItem{
		{NutrientProfile: domain.NutrientProfile{Protein: 0.1}},
		{NutrientProfile: domain.NutrientProfile{Protein: 0.2}},
	}
	// 0.1 + 0.2 is not exactly 0.3 in binary; the final rounding fixes it
	assert.Equal(t, 0.3, Aggregate(items).Protein)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, domain.NutrientProfile{}, Aggregate(nil))
}
