package usecase

import "github.com/nutriquery/backend/internal/domain"

// Volume of the spoon/cup units in millilitres on the external path
const (
	teaspoonML   = 5.0
	tablespoonML = 15.0
	cupML        = 240.0
)

// unknownUnitGrams is the mass assumed for one discrete unit of a product found
// only in Open Food Facts. It is a flat approximation: real foods vary widely,
// but it keeps results reproducible when nothing better is known.
const unknownUnitGrams = 100.0

// ResolveCatalogGrams converts a quantity of a catalog food into grams.
// ok is false when the catalog has no conversion for the unit; the caller
// must then fall back to the external lookup.
func ResolveCatalogGrams(entry domain.FoodEntry, qty float64, unit domain.Unit) (grams float64, ok bool) {
	switch unit {
	case domain.UnitNone:
		if entry.UnitGrams > 0 {
			return qty * entry.UnitGrams, true
		}
		if entry.CupGrams > 0 {
			return qty * entry.CupGrams, true
		}
		return qty, true
	case domain.UnitGram, domain.UnitMilliliter:
		// density assumed to be 1 g/ml
		return qty, true
	case domain.UnitCup:
		if entry.CupGrams > 0 {
			return qty * entry.CupGrams, true
		}
	case domain.UnitCount:
		if entry.UnitGrams > 0 {
			return qty * entry.UnitGrams, true
		}
	}
	// spoons have no density data; missing factors route to the fallback
	return 0, false
}

// DisplayUnit returns the unit reported for a catalog hit. An implicit unit
// is shown as the one the quantity was interpreted in.
func DisplayUnit(entry domain.FoodEntry, unit domain.Unit) domain.Unit {
	if unit != domain.UnitNone {
		return unit
	}
	switch {
	case entry.UnitGrams > 0:
		return domain.UnitCount
	case entry.CupGrams > 0:
		return domain.UnitCup
	default:
		return domain.UnitGram
	}
}

// ExternalBasis converts a quantity into the amount, in grams or millilitres,
// used to scale Open Food Facts per-100 densities. measure is UnitGram or
// UnitMilliliter.
func ExternalBasis(qty float64, unit domain.Unit) (amount float64, measure domain.Unit) {
	switch unit {
	case domain.UnitMilliliter:
		return qty, domain.UnitMilliliter
	case domain.UnitTeaspoon:
		return qty * teaspoonML, domain.UnitMilliliter
	case domain.UnitTablespoon:
		return qty * tablespoonML, domain.UnitMilliliter
	case domain.UnitCup:
		return qty * cupML, domain.UnitMilliliter
	case domain.UnitCount:
		return qty * unknownUnitGrams, domain.UnitGram
	default:
		return qty, domain.UnitGram
	}
}
