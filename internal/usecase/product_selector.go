package usecase

import (
	"sort"
	"strings"

	"github.com/nutriquery/backend/internal/domain"
	"github.com/nutriquery/backend/internal/textfold"
)

// keywordGroup ties food-term keywords to category keywords that identify a
// generic product for that food
type keywordGroup struct {
	termKeywords     []string
	categoryKeywords []string
}

// keywordGroups are checked in order; every group whose term keyword appears
// in the query contributes its category keywords. Keywords are lowercase
// and unaccented.
var keywordGroups = []keywordGroup{
	{termKeywords: []string{"arroz"}, categoryKeywords: []string{"arroz", "rice", "arroz-cocido"}},
	{termKeywords: []string{"huevo"}, categoryKeywords: []string{"huevo", "eggs"}},
	{termKeywords: []string{"manzana"}, categoryKeywords: []string{"apple", "manzana", "frutas"}},
	{termKeywords: []string{"platano", "banana"}, categoryKeywords: []string{"banana", "platano", "frutas"}},
	{termKeywords: []string{"pollo", "pechuga"}, categoryKeywords: []string{"pollo", "chicken"}},
}

// rankedProduct is a candidate with its folded category tags
type rankedProduct struct {
	product    *domain.ExternalProduct
	categories []string
}

// SelectProduct picks one candidate from an Open Food Facts search:
//  1. keep candidates tagged with the target language, or all if none are
//  2. rank by descending category-tag count, keeping search order on ties
//  3. for known foods, take the best ranked candidate whose categories
//     contain a preferred keyword, trying keywords in table order
//  4. otherwise the first candidate with energy data, else the first one
//
// Returns nil when there are no candidates.
func SelectProduct(candidates []domain.ExternalProduct, term, language string) *domain.ExternalProduct {
	if len(candidates) == 0 {
		return nil
	}

	pool := filterByLanguage(candidates, language)

	ranked := make([]rankedProduct, len(pool))
	for i := range pool {
		cats := make([]string, len(pool[i].CategoryTags))
		for j, c := range pool[i].CategoryTags {
			cats[j] = textfold.StripAccents(c)
		}
		ranked[i] = rankedProduct{product: pool[i], categories: cats}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return len(ranked[a].categories) > len(ranked[b].categories)
	})

	for _, kw := range preferredCategories(term) {
		for _, r := range ranked {
			if containsKeyword(r.categories, kw) {
				return r.product
			}
		}
	}

	// energy and first-candidate fallbacks use the language pool in search order
	for _, p := range pool {
		if p.Nutrients.HasEnergy() {
			return p
		}
	}
	return pool[0]
}

// filterByLanguage returns pointers to candidates tagged with language,
// or to all candidates when none are.
func filterByLanguage(candidates []domain.ExternalProduct, language string) []*domain.ExternalProduct {
	var matched, all []*domain.ExternalProduct
	for i := range candidates {
		p := &candidates[i]
		all = append(all, p)
		if hasLanguage(p.LanguageTags, language) {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	return all
}

// hasLanguage reports whether any tag names the language, either as a
// "xx..." prefix or a "...-xx" suffix.
func hasLanguage(tags []string, language string) bool {
	if language == "" {
		return false
	}
	for _, t := range tags {
		if strings.HasPrefix(t, language) || strings.HasSuffix(t, "-"+language) {
			return true
		}
	}
	return false
}

// preferredCategories lists category keywords for the food groups term belongs to
func preferredCategories(term string) []string {
	folded := textfold.Fold(term)
	var out []string
	for _, g := range keywordGroups {
		for _, k := range g.termKeywords {
			if strings.Contains(folded, k) {
				out = append(out, g.categoryKeywords...)
				break
			}
		}
	}
	return out
}

func containsKeyword(categories []string, keyword string) bool {
	for _, c := range categories {
		if strings.Contains(c, keyword) {
			return true
		}
	}
	return false
}
