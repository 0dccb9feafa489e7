package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nutriquery/backend/internal/domain"
)

// defaultQuantity is applied to a mention with no leading number: a bare food
// name means 100 grams of it.
const defaultQuantity = 100.0

// Compiled regex patterns for query parsing
var (
	// Splits a query into mentions on runs of commas or semicolons
	mentionDelimiterPattern = regexp.MustCompile(`[,;]+`)

	// Leading quantity, optional unit word, then the food term.
	// A unit word must be followed by whitespace so "200 gramos" never reads as "g" + "ramos".
	mentionPattern = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(?:(cucharaditas?|cucharadas?|tazas?|unidades|unidad|uds?|u|gramos?|gr|g|mililitros?|ml)\s+)?(.+)$`)
)

// unitWords maps every accepted Spanish unit spelling to its canonical unit
var unitWords = map[string]domain.Unit{
	"g":            domain.UnitGram,
	"gr":           domain.UnitGram,
	"gramo":        domain.UnitGram,
	"gramos":       domain.UnitGram,
	"ml":           domain.UnitMilliliter,
	"mililitro":    domain.UnitMilliliter,
	"mililitros":   domain.UnitMilliliter,
	"cucharadita":  domain.UnitTeaspoon,
	"cucharaditas": domain.UnitTeaspoon,
	"cucharada":    domain.UnitTablespoon,
	"cucharadas":   domain.UnitTablespoon,
	"taza":         domain.UnitCup,
	"tazas":        domain.UnitCup,
	"unidad":       domain.UnitCount,
	"unidades":     domain.UnitCount,
	"u":            domain.UnitCount,
	"ud":           domain.UnitCount,
	"uds":          domain.UnitCount,
}

// termRewrites are exact-match irregular plurals folded before lookup
var termRewrites = map[string]string{
	"huevos":   "huevo",
	"manzanas": "manzana",
}

// riceTerm replaces any term mentioning rice
const riceTerm = "arroz cocido"

// SplitMentions splits a raw query into trimmed, non-empty mention substrings,
// preserving their order.
func SplitMentions(query string) []string {
	parts := mentionDelimiterPattern.Split(query, -1)
	mentions := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			mentions = append(mentions, p)
		}
	}
	return mentions
}

// ParseMention extracts quantity, unit and normalized term from one mention.
// Without a leading quantity the whole text is the term, measured as 100 g.
func ParseMention(raw string) domain.ParsedMention {
	m := mentionPattern.FindStringSubmatch(raw)
	if m == nil {
		return domain.ParsedMention{
			Raw:      raw,
			Term:     NormalizeTerm(raw),
			Quantity: defaultQuantity,
			Unit:     domain.UnitGram,
		}
	}

	qty, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		// unreachable: the pattern only admits digits and one separator
		qty = defaultQuantity
	}

	return domain.ParsedMention{
		Raw:      raw,
		Term:     NormalizeTerm(m[3]),
		Quantity: qty,
		Unit:     canonicalUnit(m[2]),
	}
}

// ParseQuery segments a query and parses every mention.
func ParseQuery(query string) []domain.ParsedMention {
	raws := SplitMentions(query)
	mentions := make([]domain.ParsedMention, len(raws))
	for i, raw := range raws {
		mentions[i] = ParseMention(raw)
	}
	return mentions
}

func canonicalUnit(word string) domain.Unit {
	if word == "" {
		return domain.UnitNone
	}
	return unitWords[strings.ToLower(word)]
}

// NormalizeTerm lowercases and trims a food term, then applies the fixed
// plural/synonym table.
func NormalizeTerm(raw string) string {
	term := strings.ToLower(strings.TrimSpace(raw))
	if rewritten, ok := termRewrites[term]; ok {
		term = rewritten
	}
	if strings.Contains(term, "arroz") {
		term = riceTerm
	}
	return term
}
