package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/nutriquery/backend/internal/domain"
	"github.com/nutriquery/backend/internal/textfold"
	"gopkg.in/yaml.v3"
)

// defaultEntries is the built-in table. Order matters: the first entry with
// a matching alias wins.
var defaultEntries = []domain.FoodEntry{
	{
		Name:      "Huevo",
		Aliases:   []string{"huevo", "huevos", "egg", "eggs"},
		Per100g:   domain.NutrientProfile{Kcal: 155, Protein: 13.0, Carbs: 1.1, Fat: 11.0},
		UnitGrams: 50,
	},
	{
		Name:     "Arroz cocido",
		Aliases:  []string{"arroz", "arroz cocido", "rice", "arroz blanco"},
		Per100g:  domain.NutrientProfile{Kcal: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3},
		CupGrams: 158,
	},
	{
		Name:      "Manzana",
		Aliases:   []string{"manzana", "apple", "manzanas"},
		Per100g:   domain.NutrientProfile{Kcal: 52, Protein: 0.3, Carbs: 14.0, Fat: 0.2},
		UnitGrams: 182,
	},
	{
		Name:      "Plátano",
		Aliases:   []string{"plátano", "platano", "banana", "banano"},
		Per100g:   domain.NutrientProfile{Kcal: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
		UnitGrams: 118,
	},
	{
		Name:      "Pechuga de pollo (cocida)",
		Aliases:   []string{"pechuga de pollo", "pollo", "chicken breast"},
		Per100g:   domain.NutrientProfile{Kcal: 165, Protein: 31.0, Carbs: 0.0, Fat: 3.6},
		UnitGrams: 120,
	},
	{
		Name:     "Leche",
		Aliases:  []string{"leche", "milk"},
		Per100g:  domain.NutrientProfile{Kcal: 42, Protein: 3.4, Carbs: 5.0, Fat: 1.0},
		CupGrams: 240,
	},
	{
		Name:      "Pan",
		Aliases:   []string{"pan", "bread"},
		Per100g:   domain.NutrientProfile{Kcal: 265, Protein: 9.0, Carbs: 49.0, Fat: 3.2},
		UnitGrams: 25,
	},
}

// Catalog is an immutable, ordered food table. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	entries []domain.FoodEntry
	// folded[i] holds the accent-folded aliases of entries[i]
	folded [][]string
}

// New builds a catalog from entries, copying them so the caller cannot mutate it later.
func New(entries []domain.FoodEntry) *Catalog {
	c := &Catalog{
		entries: make([]domain.FoodEntry, len(entries)),
		folded:  make([][]string, len(entries)),
	}
	for i, e := range entries {
		e.Aliases = append([]string(nil), e.Aliases...)
		c.entries[i] = e
		for _, a := range e.Aliases {
			if f := textfold.Fold(a); f != "" {
				c.folded[i] = append(c.folded[i], f)
			}
		}
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultEntries)
}

// fileFormat is the on-disk YAML layout of a catalog file
type fileFormat struct {
	Foods []domain.FoodEntry `yaml:"foods"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	if len(f.Foods) == 0 {
		return nil, fmt.Errorf("%w: no foods defined", domain.ErrInvalidCatalog)
	}
	for i, e := range f.Foods {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", domain.ErrInvalidCatalog, i, e.Name, err)
		}
	}
	return New(f.Foods), nil
}

func validateEntry(e domain.FoodEntry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(e.Aliases) == 0 {
		return fmt.Errorf("at least one alias is required")
	}
	for _, a := range e.Aliases {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("empty alias")
		}
	}
	p := e.Per100g
	if p.Kcal < 0 || p.Protein < 0 || p.Carbs < 0 || p.Fat < 0 {
		return fmt.Errorf("nutrient densities must be non-negative")
	}
	if e.UnitGrams < 0 || e.CupGrams < 0 {
		return fmt.Errorf("conversion factors cannot be negative")
	}
	return nil
}

// Lookup returns the first entry, in catalog order, having an alias that is a
// substring of term. Matching is case- and accent-insensitive.
func (c *Catalog) Lookup(term string) (domain.FoodEntry, bool) {
	t := textfold.Fold(term)
	if t == "" {
		return domain.FoodEntry{}, false
	}
	for i, aliases := range c.folded {
		for _, a := range aliases {
			if strings.Contains(t, a) {
				return c.entries[i], true
			}
		}
	}
	return domain.FoodEntry{}, false
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog rows in order.
func (c *Catalog) Entries() []domain.FoodEntry {
	out := make([]domain.FoodEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
