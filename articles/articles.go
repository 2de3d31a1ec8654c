// Package articles relays diet-related headlines from newsapi.org. Any upstream failure
// degrades to an empty list.
package articles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	DefaultURL = "https://newsapi.org/v2/everything"

	cacheKey = "articles:latest"
	cacheTTL = 15 * time.Minute
	query    = "vegan OR gluten OR vegetarian"
	pageSize = "20"
)

type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type newsResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// Cache is satisfied by *rdx.Cache.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
}

type Config struct {
	APIKey string
	URL    string
	// FailureThreshold consecutive failures open the breaker for OpenTimeout.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type Client struct {
	cfg     Config
	http    *http.Client
	cache   Cache
	breaker *gobreaker.CircuitBreaker[[]Article]
	log     *zap.Logger
}

func NewClient(cfg Config, cache Cache, log *zap.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: 10 * time.Second},
		cache: cache,
		log:   log,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]Article](gobreaker.Settings{
		Name:        "newsapi",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return c
}

// Latest returns the current headlines, never nil.
func (c *Client) Latest(ctx context.Context) []Article {
	if c.cfg.APIKey == "" {
		return []Article{}
	}
	var cached []Article
	if c.cache != nil && c.cache.GetJSON(ctx, cacheKey, &cached) {
		return cached
	}
	found, err := c.breaker.Execute(func() ([]Article, error) { return c.fetch(ctx) })
	if err != nil {
		c.log.Warn("news fetch failed", zap.Error(err))
		return []Article{}
	}
	if c.cache != nil {
		c.cache.SetJSON(ctx, cacheKey, found, cacheTTL)
	}
	return found
}

func (c *Client) fetch(ctx context.Context) ([]Article, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("news url: %w", err)
	}
	q := u.Query()
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("language", "en")
	q.Set("q", query)
	q.Set("searchIn", "title")
	q.Set("pageSize", pageSize)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode news response (status %d): %w", resp.StatusCode, err)
	}
	if body.Status != "ok" {
		return nil, errors.New("newsapi: " + body.Code + ": " + body.Message)
	}
	if body.Articles == nil {
		body.Articles = []Article{}
	}
	return body.Articles, nil
}
