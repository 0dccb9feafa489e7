package domain

// Unit is the canonical measurement unit of a parsed mention.
// The string values are the ones shown to API callers.
type Unit string

const (
	UnitNone       Unit = ""
	UnitGram       Unit = "g"
	UnitMilliliter Unit = "ml"
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"
	UnitCount      Unit = "unit"
)

// NutrientProfile holds energy and macronutrients.
// Depending on context it is either a per-100g density or an absolute amount.
type NutrientProfile struct {
	Kcal    float64 `json:"kcal" yaml:"kcal"`
	Protein float64 `json:"protein_g" yaml:"protein_g"`
	Carbs   float64 `json:"carbs_g" yaml:"carbs_g"`
	Fat     float64 `json:"fat_g" yaml:"fat_g"`
}

// ParsedMention is one delimited food clause of a query after parsing.
type ParsedMention struct {
	Raw      string
	Term     string
	Quantity float64
	Unit     Unit
}

// AnalyzedItem is the resolved nutrition for a single mention
type AnalyzedItem struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit Unit    `json:"unit,omitempty"`
	NutrientProfile
}

// AnalysisResult is the response for a whole query: totals first, then the
// per-mention breakdown in query order.
type AnalysisResult struct {
	NutrientProfile
	Items  []AnalyzedItem `json:"items"`
	Source string         `json:"source"`
}

// AnalyzeRequest is the request body of the analyze endpoint
type AnalyzeRequest struct {
	Query string `json:"query"`
}
