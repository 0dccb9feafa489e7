package usecase

import (
	"testing"

	"github.com/nutriquery/backend/internal/domain"
)

var (
	eggEntry   = domain.FoodEntry{Name: "Huevo", UnitGrams: 50}
	riceEntry  = domain.FoodEntry{Name: "Arroz cocido", CupGrams: 158}
	plainEntry = domain.FoodEntry{Name: "Queso"}
)

func TestResolveCatalogGrams(t *testing.T) {
	tests := []struct {
		name      string
		entry     domain.FoodEntry
		qty       float64
		unit      domain.Unit
		wantGrams float64
		wantOK    bool
	}{
		{"no unit uses unit mass", eggEntry, 2, domain.UnitNone, 100, true},
		{"no unit uses cup mass", riceEntry, 2, domain.UnitNone, 316, true},
		{"no unit without factors is grams", plainEntry, 30, domain.UnitNone, 30, true},
		{"grams pass through", eggEntry, 75, domain.UnitGram, 75, true},
		{"millilitres as grams", riceEntry, 240, domain.UnitMilliliter, 240, true},
		{"cup with cup mass", riceEntry, 1, domain.UnitCup, 158, true},
		{"count with unit mass", eggEntry, 3, domain.UnitCount, 150, true},
		{"cup without cup mass", eggEntry, 1, domain.UnitCup, 0, false},
		{"count without unit mass", riceEntry, 1, domain.UnitCount, 0, false},
		{"teaspoon never resolves", riceEntry, 1, domain.UnitTeaspoon, 0, false},
		{"tablespoon never resolves", eggEntry, 1, domain.UnitTablespoon, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grams, ok := ResolveCatalogGrams(tt.entry, tt.qty, tt.unit)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if grams != tt.wantGrams {
				t.Errorf("grams = %v, want %v", grams, tt.wantGrams)
			}
		})
	}
}

func TestDisplayUnit(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.FoodEntry
		unit  domain.Unit
		want  domain.Unit
	}{
		{"explicit unit kept", eggEntry, domain.UnitGram, domain.UnitGram},
		{"implicit count", eggEntry, domain.UnitNone, domain.UnitCount},
		{"implicit cup", riceEntry, domain.UnitNone, domain.UnitCup},
		{"implicit grams", plainEntry, domain.UnitNone, domain.UnitGram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayUnit(tt.entry, tt.unit); got != tt.want {
				t.Errorf("DisplayUnit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExternalBasis(t *testing.T) {
	tests := []struct {
		unit        domain.Unit
		qty         float64
		wantAmount  float64
		wantMeasure domain.Unit
	}{
		{domain.UnitNone, 80, 80, domain.UnitGram},
		{domain.UnitGram, 80, 80, domain.UnitGram},
		{domain.UnitMilliliter, 200, 200, domain.UnitMilliliter},
		{domain.UnitTeaspoon, 2, 10, domain.UnitMilliliter},
		{domain.UnitTablespoon, 3, 45, domain.UnitMilliliter},
		{domain.UnitCup, 1.5, 360, domain.UnitMilliliter},
		{domain.UnitCount, 2, 200, domain.UnitGram},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			amount, measure := ExternalBasis(tt.qty, tt.unit)
			if amount != tt.wantAmount || measure != tt.wantMeasure {
				t.Errorf("ExternalBasis(%v, %q) = %v %q, want %v %q",
					tt.qty, tt.unit, amount, measure, tt.wantAmount, tt.wantMeasure)
			}
		})
	}
}
