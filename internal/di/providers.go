package di

import (
	"log/slog"
	"os"

	"finpulse/internal/adapter/logging"
	"finpulse/internal/adapter/news"
	"finpulse/internal/adapter/writing"
	"finpulse/internal/app"
	"finpulse/internal/config"
	"finpulse/internal/domain/ports"
	"finpulse/internal/usecase"
)

const (
	newsJobName     = "fetch-news"
	insightsJobName = "generate-insights"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

// provideNewsSources orders the chain: GNews first, then each configured feed.
func provideNewsSources(cfg *config.Config, logger ports.Logger) []ports.NewsSource {
	sources := []ports.NewsSource{
		news.NewGNewsProvider(news.GNewsConfig{
			APIKey:   cfg.NewsAPIKey,
			BaseURL:  cfg.NewsBaseURL,
			Query:    cfg.NewsQuery,
			Language: cfg.NewsLanguage,
			Max:      cfg.NewsLimit,
			Timeout:  cfg.NewsTimeout,
		}, logger),
	}
	for _, feed := range news.NewFeedProviders(cfg.NewsFeedURLs, cfg.NewsLimit, cfg.NewsTimeout, logger) {
		sources = append(sources, feed)
	}
	return sources
}

func provideNewsCorpus() ports.NewsCorpus {
	return news.NewStaticCorpus()
}

func provideNewsDigestConfig(cfg *config.Config) usecase.NewsDigestConfig {
	return usecase.NewsDigestConfig{
		OutputPath: cfg.NewsPath(),
		Limit:      cfg.NewsLimit,
	}
}

func provideNewsApp(digest *usecase.NewsDigest, logger ports.Logger, cfg *config.Config) *app.App {
	return app.New(newsJobName, digest, logger, cfg.ScheduleCron)
}

func provideCompleter(cfg *config.Config, logger ports.Logger) ports.Completer {
	return writing.NewOpenRouterWriter(writing.OpenRouterConfig{
		APIKey:  cfg.ModelAPIKey,
		BaseURL: cfg.ModelBaseURL,
		Referer: cfg.ModelReferer,
		Title:   cfg.ModelTitle,
		Timeout: cfg.ModelTimeout,
	}, logger)
}

func provideInsightConfig(cfg *config.Config) usecase.InsightConfig {
	return usecase.InsightConfig{
		InflationPath: cfg.InflationPath(),
		NewsPath:      cfg.NewsPath(),
		OutputPath:    cfg.InsightsPath(),
		Models:        cfg.Models,
	}
}

func provideInsightsApp(gen *usecase.InsightGenerator, logger ports.Logger, cfg *config.Config) *app.App {
	return app.New(insightsJobName, gen, logger, cfg.ScheduleCron)
}
