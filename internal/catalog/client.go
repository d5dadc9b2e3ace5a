package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchCacheTTL = 15 * time.Minute

// Client queries the external open route database. Responses are
// cached in redis when a client is configured; the cache is a plain
// read-through with TTL, never invalidated explicitly.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client
}

func NewClient(baseURL string, cache *redis.Client) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]ExternalRoute, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	cacheKey := "catalog:search:" + query + ":" + strconv.Itoa(limit)
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			var routes []ExternalRoute
			if json.Unmarshal([]byte(cached), &routes) == nil {
				return routes, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/v1/routes/search?query=%s&limit=%d",
		c.baseURL, url.QueryEscape(query), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog search returned status %d", resp.StatusCode)
	}

	var payload struct {
		Routes []ExternalRoute `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if encoded, err := json.Marshal(payload.Routes); err == nil {
			_ = c.cache.Set(ctx, cacheKey, encoded, searchCacheTTL).Err()
		}
	}
	return payload.Routes, nil
}
