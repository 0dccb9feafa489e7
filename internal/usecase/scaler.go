package usecase

import (
	"math"

	"github.com/nutriquery/backend/internal/domain"
)

// kJPerKcal converts kilojoules to kilocalories
const kJPerKcal = 4.184

// round rounds x to the given number of decimal places, halves away from zero.
func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

func roundProfile(p domain.NutrientProfile) domain.NutrientProfile {
	return domain.NutrientProfile{
		Kcal:    round(p.Kcal, 0),
		Protein: round(p.Protein, 1),
		Carbs:   round(p.Carbs, 1),
		Fat:     round(p.Fat, 1),
	}
}

// ScaleProfile scales a per-100g profile to grams. kcal is rounded to an
// integer and macros to one decimal.
func ScaleProfile(per100 domain.NutrientProfile, grams float64) domain.NutrientProfile {
	f := grams / 100
	return roundProfile(domain.NutrientProfile{
		Kcal:    per100.Kcal * f,
		Protein: per100.Protein * f,
		Carbs:   per100.Carbs * f,
		Fat:     per100.Fat * f,
	})
}

// ScaleExternal scales Open Food Facts densities to amount grams or millilitres.
// Energy prefers kcal and falls back to kJ; anything missing counts as zero.
func ScaleExternal(n domain.ExternalNutrients, amount float64) domain.NutrientProfile {
	var per100 domain.NutrientProfile
	switch {
	case n.EnergyKcal != nil:
		per100.Kcal = *n.EnergyKcal
	case n.EnergyKJ != nil:
		per100.Kcal = *n.EnergyKJ / kJPerKcal
	}
	per100.Protein = valueOrZero(n.Protein)
	per100.Carbs = valueOrZero(n.Carbs)
	per100.Fat = valueOrZero(n.Fat)
	return ScaleProfile(per100, amount)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Aggregate sums already-rounded item profiles and rounds the sums again with
// the same precision.
func Aggregate(items []domain.AnalyzedItem) domain.NutrientProfile {
	var total domain.NutrientProfile
	for _, it := range items {
		total.Kcal += it.Kcal
		total.Protein += it.Protein
		total.Carbs += it.Carbs
		total.Fat += it.Fat
	}
	return roundProfile(total)
}
