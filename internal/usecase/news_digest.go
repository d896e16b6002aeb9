package usecase

import (
	"context"
	"fmt"
	"time"

	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/model"
	"finpulse/internal/domain/ports"
)

// MaxNewsArticles caps the news artifact regardless of what a source returned.
const MaxNewsArticles = 10

// NewsDigestConfig controls where and how much news is persisted.
type NewsDigestConfig struct {
	OutputPath string
	Limit      int
}

// NewsDigest resolves the news fallback chain and writes the news artifact.
type NewsDigest struct {
	sources []ports.NewsSource
	corpus  ports.NewsCorpus
	writer  ports.ArtifactWriter
	logger  ports.Logger
	path    string
	limit   int
}

// NewNewsDigest constructs a NewsDigest use case. Nil sources are ignored.
func NewNewsDigest(
	sources []ports.NewsSource,
	corpus ports.NewsCorpus,
	writer ports.ArtifactWriter,
	logger ports.Logger,
	cfg NewsDigestConfig,
) *NewsDigest {
	active := make([]ports.NewsSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			active = append(active, s)
		}
	}

	limit := cfg.Limit
	if limit <= 0 || limit > MaxNewsArticles {
		limit = MaxNewsArticles
	}

	return &NewsDigest{
		sources: active,
		corpus:  corpus,
		writer:  writer,
		logger:  logger,
		path:    cfg.OutputPath,
		limit:   limit,
	}
}

// Run fetches news and persists it. Only a local write failure is returned.
func (d *NewsDigest) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "fetching news", "sources", len(d.sources))

	chainSources := make([]fallback.Source[[]model.NewsArticle], 0, len(d.sources))
	for _, s := range d.sources {
		chainSources = append(chainSources, fallback.Source[[]model.NewsArticle]{
			Name:  s.Name(),
			Fetch: s.FetchNews,
		})
	}

	chain := fallback.NewChain(d.logger, fallback.IsEmptySlice[model.NewsArticle], chainSources...)
	outcome := chain.Resolve(ctx, d.corpus.Articles)

	articles := outcome.Value
	if len(articles) > d.limit {
		articles = articles[:d.limit]
	}

	d.logger.Info(ctx, "fetched news articles", "count", len(articles), "source", outcome.Source)

	if err := d.writer.Write(ctx, d.path, articles); err != nil {
		d.logger.Error(ctx, "failed to write news artifact", "path", d.path, "error", err)
		return fmt.Errorf("persist news: %w", err)
	}

	d.logger.Info(ctx, "news digest completed", "duration", time.Since(start))
	return nil
}
