package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nutriquery/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResultSource labels every analysis response
const ResultSource = "local+openfoodfacts"

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	// Language is the Open Food Facts language tag candidates are filtered by
	Language string
	CacheTTL time.Duration
	// MaxConcurrentLookups bounds parallel external lookups within one
	// request. Values below 2 resolve mentions one at a time.
	MaxConcurrentLookups int
}

// AnalysisService turns free-form food descriptions into nutrition totals
type AnalysisService struct {
	catalog     domain.FoodCatalog
	searcher    domain.ProductSearcher
	cache       domain.CacheRepository
	logger      *zap.Logger
	language    string
	cacheTTL    time.Duration
	concurrency int
}

// NewAnalysisService creates a new analysis service with dependencies.
// cache may be nil to disable caching of external lookups.
func NewAnalysisService(
	catalog domain.FoodCatalog,
	searcher domain.ProductSearcher,
	cache domain.CacheRepository,
	logger *zap.Logger,
	config AnalysisServiceConfig,
) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	language := config.Language
	if language == "" {
		language = "es"
	}

	concurrency := config.MaxConcurrentLookups
	if concurrency < 1 {
		concurrency = 1
	}

	return &AnalysisService{
		catalog:     catalog,
		searcher:    searcher,
		cache:       cache,
		logger:      logger.Named("analysis"),
		language:    language,
		cacheTTL:    cacheTTL,
		concurrency: concurrency,
	}
}

// CatalogSize returns the number of foods in the local catalog
func (s *AnalysisService) CatalogSize() int {
	return s.catalog.Len()
}

// Analyze resolves every mention of query and aggregates the totals.
// Items keep the order of the mentions. Any failed external lookup fails
// the whole analysis; there are no partial results.
func (s *AnalysisService) Analyze(ctx context.Context, query string) (*domain.AnalysisResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	mentions := ParseQuery(query)
	items := make([]domain.AnalyzedItem, len(mentions))

	var pending []int
	for i, m := range mentions {
		if item, ok := s.resolveLocal(m); ok {
			items[i] = item
			continue
		}
		pending = append(pending, i)
	}

	if len(pending) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)
		for _, idx := range pending {
			idx := idx
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				item, err := s.resolveExternal(gctx, mentions[idx])
				if err != nil {
					return err
				}
				items[idx] = item
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			s.logger.Warn("analysis failed", zap.String("query", query), zap.Error(err))
			return nil, err
		}
	}

	s.logger.Debug("analysis complete",
		zap.Int("mentions", len(mentions)),
		zap.Int("external_lookups", len(pending)))

	return &domain.AnalysisResult{
		NutrientProfile: Aggregate(items),
		Items:           items,
		Source:          ResultSource,
	}, nil
}

// resolveLocal resolves a mention from the catalog. ok is false when the
// food is unknown or its unit cannot be converted locally.
func (s *AnalysisService) resolveLocal(m domain.ParsedMention) (domain.AnalyzedItem, bool) {
	entry, found := s.catalog.Lookup(m.Term)
	if !found {
		return domain.AnalyzedItem{}, false
	}

	grams, ok := ResolveCatalogGrams(entry, m.Quantity, m.Unit)
	if !ok {
		s.logger.Debug("catalog unit not convertible",
			zap.String("term", m.Term),
			zap.String("unit", string(m.Unit)))
		return domain.AnalyzedItem{}, false
	}

	return domain.AnalyzedItem{
		Name:            entry.Name,
		Qty:             m.Quantity,
		Unit:            DisplayUnit(entry, m.Unit),
		NutrientProfile: ScaleProfile(entry.Per100g, grams),
	}, true
}

// resolveExternal resolves a mention through Open Food Facts. No candidates
// yields a zero-valued item named after the term.
func (s *AnalysisService) resolveExternal(ctx context.Context, m domain.ParsedMention) (domain.AnalyzedItem, error) {
	product, err := s.lookupProduct(ctx, m.Term)
	if err != nil {
		return domain.AnalyzedItem{}, err
	}

	unit := m.Unit
	if unit == domain.UnitNone {
		unit = domain.UnitGram
	}

	if product == nil {
		s.logger.Info("no external match", zap.String("term", m.Term))
		return domain.AnalyzedItem{Name: m.Term, Qty: m.Quantity, Unit: unit}, nil
	}

	amount, _ := ExternalBasis(m.Quantity, m.Unit)

	name := product.DisplayName
	if name == "" {
		name = m.Term
	}

	return domain.AnalyzedItem{
		Name:            name,
		Qty:             m.Quantity,
		Unit:            unit,
		NutrientProfile: ScaleExternal(product.Nutrients, amount),
	}, nil
}

// lookupProduct returns the selected product for term, consulting the cache
// first. Only successful selections are cached.
func (s *AnalysisService) lookupProduct(ctx context.Context, term string) (*domain.ExternalProduct, error) {
	key := s.cacheKey(term)

	if s.cache != nil {
		var cached domain.ExternalProduct
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.logger.Debug("cache hit", zap.String("term", term))
			return &cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	candidates, err := s.searcher.SearchProducts(ctx, term)
	if err != nil {
		return nil, err
	}

	product := SelectProduct(candidates, term, s.language)
	if product == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product, s.cacheTTL); err != nil {
			s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return product, nil
}

// cacheKey builds the cache key for a term.
// Format: "off:{language}:{term}"
func (s *AnalysisService) cacheKey(term string) string {
	return fmt.Sprintf("off:%s:%s", s.language, term)
}
