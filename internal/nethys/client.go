package nethys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultAPIBase is the public Archives of Nethys search endpoint.
	DefaultAPIBase = "https://elasticsearch.aonprd.com/aon/_search"
	// DefaultWebBase is joined onto relative result URLs.
	DefaultWebBase = "https://2e.aonprd.com/"

	// DefaultTimeout bounds one search round trip.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "nethys-bot"
)

// ClientConfig configures the search client. Zero values take the defaults
// above.
type ClientConfig struct {
	APIBase   string
	WebBase   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// Client queries the index with a shared HTTP client and a TTL cache in
// front. Safe for concurrent use.
type Client struct {
	apiBase   string
	webBase   string
	userAgent string
	http      *http.Client
	cache     *Cache
	log       zerolog.Logger
}

// NewClient builds a search client. The HTTP client is created once and
// reused for every request.
func NewClient(cfg ClientConfig, clock Clock, log zerolog.Logger) *Client {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.WebBase == "" {
		cfg.WebBase = DefaultWebBase
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		apiBase:   cfg.APIBase,
		webBase:   cfg.WebBase,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		cache:     NewCache(cfg.CacheTTL, clock),
		log:       log,
	}
}

// Search runs query against the index and returns normalized records sorted
// by relevance. Results are cached per (query, limit, category); failures are
// logged, never cached, and reported as an error so the caller can tell a
// failed lookup from an empty one.
func (c *Client) Search(ctx context.Context, query string, limit int, category string) ([]Record, error) {
	cacheKey := fmt.Sprintf("%s:%d:%s", query, limit, category)
	if records, ok := c.cache.Get(cacheKey); ok {
		return records, nil
	}

	body, err := json.Marshal(searchBody(query, limit, category))
	if err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("archives search failed")
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Str("query", query).Msg("archives search returned an error status")
		return nil, fmt.Errorf("search request: unexpected status %d", resp.StatusCode)
	}

	var decoded struct {
		Hits struct {
			Hits []struct {
				Source hitSource `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("archives search returned malformed json")
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	records := make([]Record, 0, len(decoded.Hits.Hits))
	for _, hit := range decoded.Hits.Hits {
		records = append(records, newRecord(hit.Source, c.webBase))
	}

	c.cache.Set(cacheKey, records)
	return records, nil
}

// searchBody builds the weighted multi-match + wildcard query. Name matches
// weigh heaviest, then descriptive text, then raw trait tokens; a non-"All"
// category adds an exact term filter.
func searchBody(query string, limit int, category string) map[string]any {
	boolQuery := map[string]any{
		"should": []any{
			map[string]any{
				"multi_match": map[string]any{
					"query":     query,
					"fields":    []string{"name^3", "text^2", "trait_raw^2"},
					"type":      "best_fields",
					"fuzziness": "AUTO",
				},
			},
			map[string]any{
				"wildcard": map[string]any{
					"name.keyword": "*" + strings.ToLower(query) + "*",
				},
			},
		},
		"minimum_should_match": 1,
	}
	if category != "" && !strings.EqualFold(category, CategoryAll) {
		boolQuery["filter"] = []any{
			map[string]any{"term": map[string]any{"type.keyword": category}},
		}
	}

	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"size":  limit,
		"_source": []string{
			"name", "type", "url", "text", "level", "price",
			"category", "source", "rarity", "trait_raw",
		},
		"sort": []any{
			map[string]any{"_score": map[string]any{"order": "desc"}},
			map[string]any{"name.keyword": map[string]any{"order": "asc"}},
		},
	}
}
