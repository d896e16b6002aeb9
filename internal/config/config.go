package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Config contains runtime configuration values shared by both jobs.
type Config struct {
	NewsAPIKey   string
	NewsBaseURL  string
	NewsQuery    string
	NewsLanguage string
	NewsLimit    int
	NewsTimeout  time.Duration
	NewsFeedURLs []string

	ModelAPIKey  string
	ModelBaseURL string
	ModelReferer string
	ModelTitle   string
	Models       []string
	ModelTimeout time.Duration

	DataDir      string
	ScheduleCron string
	LogLevel     string
}

const (
	defaultNewsBaseURL  = "https://gnews.io/api/v4"
	defaultNewsQuery    = "اقتصاد OR تضخم OR مالية"
	defaultNewsLanguage = "ar"
	defaultNewsLimit    = 10
	defaultNewsTimeout  = 10 * time.Second
	defaultModelBaseURL = "https://openrouter.ai/api/v1/"
	defaultModelReferer = "https://github.com/kaledh4/calc"
	defaultModelTitle   = "Smart Finance Calculator"
	defaultModelTimeout = 30 * time.Second
	defaultDataDir      = "data"
	defaultLogLevel     = "info"

	newsFile      = "news.json"
	insightsFile  = "insights.json"
	inflationFile = "inflation.json"
)

var defaultModels = []string{
	"google/gemini-2.0-flash-exp:free",
	"meta-llama/llama-3.2-3b-instruct:free",
}

// Load builds a Config from environment variables with sane defaults.
// Missing API keys are not an error; the jobs fall back to canned content.
func Load() (*Config, error) {
	cfg := &Config{
		NewsAPIKey:   strings.TrimSpace(os.Getenv("NEWS_API_KEY")),
		NewsBaseURL:  getenvDefault("NEWS_BASE_URL", defaultNewsBaseURL),
		NewsQuery:    getenvDefault("NEWS_QUERY", defaultNewsQuery),
		NewsLanguage: getenvDefault("NEWS_LANGUAGE", defaultNewsLanguage),
		NewsLimit:    parseIntDefault("NEWS_LIMIT", defaultNewsLimit),
		NewsTimeout:  parseDurationDefault("NEWS_TIMEOUT", defaultNewsTimeout),
		NewsFeedURLs: parseListDefault("NEWS_FEED_URLS", nil),
		ModelAPIKey:  strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		ModelBaseURL: getenvDefault("OPENROUTER_BASE_URL", defaultModelBaseURL),
		ModelReferer: getenvDefault("OPENROUTER_REFERER", defaultModelReferer),
		ModelTitle:   getenvDefault("OPENROUTER_TITLE", defaultModelTitle),
		Models:       parseListDefault("OPENROUTER_MODELS", defaultModels),
		ModelTimeout: parseDurationDefault("MODEL_TIMEOUT", defaultModelTimeout),
		DataDir:      getenvDefault("DATA_DIR", defaultDataDir),
		ScheduleCron: strings.TrimSpace(os.Getenv("SCHEDULE_CRON")),
		LogLevel:     getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.NewsLimit <= 0 || cfg.NewsLimit > defaultNewsLimit {
		cfg.NewsLimit = defaultNewsLimit
	}

	if cfg.NewsTimeout <= 0 {
		cfg.NewsTimeout = defaultNewsTimeout
	}

	if cfg.ModelTimeout <= 0 {
		cfg.ModelTimeout = defaultModelTimeout
	}

	if cfg.ScheduleCron != "" {
		if _, err := cron.ParseStandard(cfg.ScheduleCron); err != nil {
			return nil, fmt.Errorf("invalid SCHEDULE_CRON %q: %w", cfg.ScheduleCron, err)
		}
	}

	return cfg, nil
}

// NewsPath is where the news artifact is written.
func (c *Config) NewsPath() string {
	return filepath.Join(c.DataDir, newsFile)
}

// InsightsPath is where the insight artifact is written.
func (c *Config) InsightsPath() string {
	return filepath.Join(c.DataDir, insightsFile)
}

// InflationPath is the inflation collaborator's artifact.
func (c *Config) InflationPath() string {
	return filepath.Join(c.DataDir, inflationFile)
}

func getenvDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(val)); err == nil {
			return d
		}
	}
	return fallback
}

func parseListDefault(key string, fallback []string) []string {
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		return append([]string(nil), fallback...)
	}

	var items []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), fallback...)
	}
	return items
}
