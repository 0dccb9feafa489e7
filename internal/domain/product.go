package domain

// FoodEntry is one row of the local food catalog.
type FoodEntry struct {
	Name    string          `yaml:"name"`
	Aliases []string        `yaml:"aliases"`
	Per100g NutrientProfile `yaml:"per_100g"`
	// UnitGrams is the mass of one discrete unit (one egg, one apple). Zero when absent.
	UnitGrams float64 `yaml:"unit_g,omitempty"`
	// CupGrams is the mass of one cup. Zero when absent.
	CupGrams float64 `yaml:"cup_g,omitempty"`
}

// ExternalNutrients are Open Food Facts densities per 100g or 100ml.
// A nil field means the product did not report it.
type ExternalNutrients struct {
	EnergyKcal *float64 `json:"energyKcal,omitempty"`
	EnergyKJ   *float64 `json:"energyKj,omitempty"`
	Protein    *float64 `json:"protein,omitempty"`
	Carbs      *float64 `json:"carbs,omitempty"`
	Fat        *float64 `json:"fat,omitempty"`
}

// HasEnergy reports whether either energy field is present.
func (n ExternalNutrients) HasEnergy() bool {
	return n.EnergyKcal != nil || n.EnergyKJ != nil
}

// ExternalProduct is a normalized Open Food Facts search candidate.
type ExternalProduct struct {
	DisplayName  string            `json:"displayName"`
	Nutrients    ExternalNutrients `json:"nutrients"`
	CategoryTags []string          `json:"categoryTags,omitempty"`
	LanguageTags []string          `json:"languageTags,omitempty"`
}
