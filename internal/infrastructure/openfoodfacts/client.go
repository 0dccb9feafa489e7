package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nutriquery/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	searchPath = "/cgi/search.pl"
	// pageSize is how many candidates a search asks for
	pageSize = "10"
	// searchFields restricts the response to what the mapper reads
	searchFields = "product_name,nutriments,categories_tags,languages_tags"
	// maxResponseBytes bounds how much of a response body is read
	maxResponseBytes = 5 << 20
)

// ClientConfig holds settings for the Open Food Facts client
type ClientConfig struct {
	BaseURL   string
	Language  string
	UserAgent string
	Timeout   time.Duration
	// RequestsPerMinute throttles outbound searches; zero disables throttling.
	RequestsPerMinute int
}

// Client handles communication with the Open Food Facts search API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	language    string
	userAgent   string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new Open Food Facts client
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "NutriQuery/1.0"
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     cfg.BaseURL,
		language:    cfg.Language,
		userAgent:   userAgent,
		rateLimiter: limiter,
		logger:      logger.Named("openfoodfacts"),
	}
}

// Language returns the language tag searches are restricted to
func (c *Client) Language() string {
	return c.language
}

// searchURL builds the search request URL for term
func (c *Client) searchURL(term string) string {
	params := url.Values{}
	params.Set("search_terms", term)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", pageSize)
	params.Set("tagtype_0", "languages")
	params.Set("tag_contains_0", "contains")
	params.Set("tag_0", c.language)
	params.Set("fields", searchFields)
	params.Set("sort_by", "unique_scans_n")

	return fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, params.Encode())
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	return resp, nil
}

// SearchProducts searches Open Food Facts for term and returns up to ten
// candidates in popularity order. A single attempt is made: transport
// failures, non-2xx statuses and undecodable bodies are returned as
// domain.ErrNetwork, *domain.UpstreamStatusError and domain.ErrUpstreamBadJSON.
func (c *Client) SearchProducts(ctx context.Context, term string) ([]domain.ExternalProduct, error) {
	c.logger.Debug("search products", zap.String("term", term), zap.String("language", c.language))

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrNetwork, err)
	}

	resp, err := c.doRequest(ctx, c.searchURL(term))
	if err != nil {
		c.logger.Warn("request failed", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("api error",
			zap.String("term", term),
			zap.Int("status", resp.StatusCode))
		return nil, domain.NewUpstreamStatusError(resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		c.logger.Warn("json decode error", zap.String("term", term), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamBadJSON, err)
	}

	products := mapProducts(searchResp.Products)
	c.logger.Debug("search complete", zap.String("term", term), zap.Int("candidates", len(products)))

	return products, nil
}
