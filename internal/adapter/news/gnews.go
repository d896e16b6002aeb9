package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/model"
	"finpulse/internal/domain/ports"
)

const (
	gnewsName          = "GNews"
	DefaultGNewsURL    = "https://gnews.io/api/v4"
	DefaultGNewsQuery  = "اقتصاد OR تضخم OR مالية"
	DefaultGNewsLang   = "ar"
	DefaultGNewsMax    = 10
	gnewsErrorBodySize = 1024
)

// GNewsConfig controls the GNews search request.
type GNewsConfig struct {
	APIKey   string
	BaseURL  string
	Query    string
	Language string
	Max      int
	Timeout  time.Duration
}

// GNewsProvider searches GNews.io for economic headlines.
type GNewsProvider struct {
	httpClient *http.Client
	cfg        GNewsConfig
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.NewsSource = (*GNewsProvider)(nil)

// NewGNewsProvider builds a GNewsProvider, filling unset fields with defaults.
func NewGNewsProvider(cfg GNewsConfig, logger ports.Logger) *GNewsProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGNewsURL
	}
	if cfg.Query == "" {
		cfg.Query = DefaultGNewsQuery
	}
	if cfg.Language == "" {
		cfg.Language = DefaultGNewsLang
	}
	if cfg.Max <= 0 {
		cfg.Max = DefaultGNewsMax
	}
	return &GNewsProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// Name identifies the provider in logs.
func (g *GNewsProvider) Name() string {
	return gnewsName
}

// FetchNews runs the configured search. Without an API key nothing is sent.
func (g *GNewsProvider) FetchNews(ctx context.Context) ([]model.NewsArticle, error) {
	if g.cfg.APIKey == "" {
		return nil, fallback.Skipped(gnewsName, "api key not configured")
	}

	if g.logger != nil {
		g.logger.Info(ctx, "querying gnews", "lang", g.cfg.Language, "max", g.cfg.Max)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(), http.NoBody)
	if err != nil {
		return nil, fallback.Upstream(gnewsName, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fallback.Transport(gnewsName, fmt.Errorf("perform request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, gnewsErrorBodySize))
		return nil, fallback.Upstream(gnewsName, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fallback.Upstream(gnewsName, fmt.Errorf("decode response: %w", err))
	}

	if len(payload.Articles) == 0 {
		return nil, fallback.Empty(gnewsName)
	}

	items := payload.Articles
	if len(items) > g.cfg.Max {
		items = items[:g.cfg.Max]
	}

	articles := make([]model.NewsArticle, 0, len(items))
	for _, item := range items {
		source := strings.TrimSpace(item.Source.Name)
		if source == "" {
			source = gnewsName
		}
		publishedAt := strings.TrimSpace(item.PublishedAt)
		if publishedAt == "" {
			publishedAt = g.now().UTC().Format(time.RFC3339)
		}
		articles = append(articles, model.NewsArticle{
			Title:       htmlToText(item.Title),
			Description: htmlToText(item.Description),
			URL:         strings.TrimSpace(item.URL),
			Source:      source,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

func (g *GNewsProvider) searchURL() string {
	params := url.Values{}
	params.Set("q", g.cfg.Query)
	params.Set("lang", g.cfg.Language)
	params.Set("max", strconv.Itoa(g.cfg.Max))
	params.Set("apikey", g.cfg.APIKey)
	return strings.TrimSuffix(g.cfg.BaseURL, "/") + "/search?" + params.Encode()
}
