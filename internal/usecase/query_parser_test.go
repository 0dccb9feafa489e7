package usecase

import (
	"reflect"
	"testing"

	"github.com/nutriquery/backend/internal/domain"
)

func TestSplitMentions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"single mention", "2 huevos", []string{"2 huevos"}},
		{"comma separated", "2 huevos, 1 taza de arroz", []string{"2 huevos", "1 taza de arroz"}},
		{"semicolon separated", "pan; leche", []string{"pan", "leche"}},
		{"mixed and repeated delimiters", "pan,, ;leche;;manzana", []string{"pan", "leche", "manzana"}},
		{"surrounding whitespace", "  pan  ,  leche  ", []string{"pan", "leche"}},
		{"empty segments dropped", ", , ;", []string{}},
		{"empty query", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMentions(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitMentions(%q) = %#v, want %#v", tt.query, got, tt.want)
			}
		})
	}
}

func TestParseMention(t *testing.T) {
	tests := []struct {
		raw      string
		wantQty  float64
		wantUnit domain.Unit
		wantTerm string
	}{
		// no unit: count or cup is decided later by the catalog entry
		{"2 huevos", 2, domain.UnitNone, "huevo"},
		{"1 taza de arroz", 1, domain.UnitCup, "arroz cocido"},
		{"2 tazas de leche", 2, domain.UnitCup, "de leche"},
		{"3 cucharadas de miel", 3, domain.UnitTablespoon, "de miel"},
		{"1 cucharada aceite", 1, domain.UnitTablespoon, "aceite"},
		{"2 cucharaditas de azúcar", 2, domain.UnitTeaspoon, "de azúcar"},
		{"1 cucharadita sal", 1, domain.UnitTeaspoon, "sal"},
		{"3 unidades de pan", 3, domain.UnitCount, "de pan"},
		{"1 unidad manzana", 1, domain.UnitCount, "manzana"},
		{"2 u pan", 2, domain.UnitCount, "pan"},
		{"2 ud pan", 2, domain.UnitCount, "pan"},
		{"4 uds pan", 4, domain.UnitCount, "pan"},
		{"100g queso", 100, domain.UnitGram, "queso"},
		{"150 gr pollo", 150, domain.UnitGram, "pollo"},
		{"200 gramos de pollo", 200, domain.UnitGram, "de pollo"},
		{"1 gramo sal", 1, domain.UnitGram, "sal"},
		{"250 ml leche", 250, domain.UnitMilliliter, "leche"},
		{"250 mililitros de leche", 250, domain.UnitMilliliter, "de leche"},
		{"1 mililitro vainilla", 1, domain.UnitMilliliter, "vainilla"},
		{"1.5 tazas de arroz", 1.5, domain.UnitCup, "arroz cocido"},
		{"0,5 taza leche", 0.5, domain.UnitCup, "leche"},
		{"2 TAZAS de Leche", 2, domain.UnitCup, "de leche"},
		{"1 uva", 1, domain.UnitNone, "uva"},
		{"100 g", 100, domain.UnitNone, "g"},
		{"3 Manzanas", 3, domain.UnitNone, "manzana"},
		{"2huevos", 2, domain.UnitNone, "huevo"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseMention(tt.raw)
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
			if got.Quantity != tt.wantQty {
				t.Errorf("Quantity = %v, want %v", got.Quantity, tt.wantQty)
			}
			if got.Unit != tt.wantUnit {
				t.Errorf("Unit = %q, want %q", got.Unit, tt.wantUnit)
			}
			if got.Term != tt.wantTerm {
				t.Errorf("Term = %q, want %q", got.Term, tt.wantTerm)
			}
		})
	}
}

func TestParseMention_NoQuantityMeans100Grams(t *testing.T) {
	tests := []struct {
		raw      string
		wantTerm string
	}{
		{"manzana", "manzana"},
		{"Pechuga de Pollo", "pechuga de pollo"},
		{"huevos", "huevo"},
		{"arroz blanco", "arroz cocido"},
		{"2", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseMention(tt.raw)
			if got.Quantity != 100 || got.Unit != domain.UnitGram {
				t.Errorf("ParseMention(%q) = %v %q, want 100 g", tt.raw, got.Quantity, got.Unit)
			}
			if got.Term != tt.wantTerm {
				t.Errorf("Term = %q, want %q", got.Term, tt.wantTerm)
			}
		})
	}
}

func TestParseQuery_PreservesOrder(t *testing.T) {
	got := ParseQuery("pan, 2 huevos; 1 taza de arroz")

	wantTerms := []string{"pan", "huevo", "arroz cocido"}
	if len(got) != len(wantTerms) {
		t.Fatalf("len = %d, want %d", len(got), len(wantTerms))
	}
	for i, term := range wantTerms {
		if got[i].Term != term {
			t.Errorf("mention[%d].Term = %q, want %q", i, got[i].Term, term)
		}
	}
}

func TestParseQuery_CommaSplitsDecimals(t *testing.T) {
	// comma splitting happens before quantity parsing, so "2,5" is two mentions
	got := ParseQuery("2,5 tazas de leche")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Term != "2" || got[0].Quantity != 100 {
		t.Errorf("mention[0] = %+v, want bare term \"2\"", got[0])
	}
	if got[1].Quantity != 5 || got[1].Unit != domain.UnitCup {
		t.Errorf("mention[1] = %+v, want 5 cups", got[1])
	}
}

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Huevos ", "huevo"},
		{"manzanas", "manzana"},
		{"arroz", "arroz cocido"},
		{"de arroz integral", "arroz cocido"},
		{"huevos revueltos", "huevos revueltos"},
		{"Leche", "leche"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTerm(tt.in); got != tt.want {
			t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
