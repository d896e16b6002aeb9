package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/model"
	"finpulse/internal/domain/ports"
)

const (
	insightModelLabel = "Smart-AI"
	insightLanguage   = "ar"
)

// InsightConfig names the collaborator artifacts, the output path and the model priority list.
type InsightConfig struct {
	InflationPath string
	NewsPath      string
	OutputPath    string
	Models        []string
}

// InsightGenerator asks language models for commentary on inflation and headlines.
type InsightGenerator struct {
	completer ports.Completer
	store     ports.ArtifactStore
	logger    ports.Logger
	cfg       InsightConfig
	now       func() time.Time
}

// NewInsightGenerator constructs an InsightGenerator use case.
func NewInsightGenerator(completer ports.Completer, store ports.ArtifactStore, logger ports.Logger, cfg InsightConfig) *InsightGenerator {
	return &InsightGenerator{
		completer: completer,
		store:     store,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Run builds the insight record and persists it. Only a local write failure is returned.
func (g *InsightGenerator) Run(ctx context.Context) error {
	start := time.Now()
	g.logger.Info(ctx, "generating insights", "models", len(g.cfg.Models))

	reading := g.loadInflation(ctx)
	headlines := g.loadHeadlines(ctx)
	prompt := buildInsightPrompt(reading, headlines)

	sources := make([]fallback.Source[string], 0, len(g.cfg.Models))
	if g.completer != nil {
		for _, modelName := range g.cfg.Models {
			modelName := modelName
			sources = append(sources, fallback.Source[string]{
				Name: modelName,
				Fetch: func(ctx context.Context) (string, error) {
					return g.completer.Complete(ctx, modelName, prompt)
				},
			})
		}
	}

	chain := fallback.NewChain(g.logger, isBlank, sources...)
	outcome := chain.Resolve(ctx, func() string { return fallbackInsight(reading) })

	record := model.InsightRecord{
		Summary:   outcome.Value,
		Timestamp: g.now().UTC().Format(time.RFC3339),
		Model:     insightModelLabel,
		Language:  insightLanguage,
	}

	if err := g.store.Write(ctx, g.cfg.OutputPath, record); err != nil {
		g.logger.Error(ctx, "failed to write insight artifact", "path", g.cfg.OutputPath, "error", err)
		return fmt.Errorf("persist insights: %w", err)
	}

	g.logger.Info(ctx, "insights generated",
		"source", outcome.Source,
		"fallback", outcome.UsedFallback(),
		"duration", time.Since(start))
	return nil
}

func (g *InsightGenerator) loadInflation(ctx context.Context) model.InflationReading {
	type inflationFile struct {
		Current *float64 `json:"current"`
		Change  *float64 `json:"change"`
	}

	raw := loadOrDefault(ctx, g.store, g.logger, g.cfg.InflationPath, inflationFile{}, func(f inflationFile) error {
		if f.Current == nil {
			return errors.New("missing current rate")
		}
		return nil
	})

	if raw.Current == nil {
		return model.DefaultInflation()
	}

	reading := model.InflationReading{Current: *raw.Current}
	if raw.Change != nil {
		reading.Change = *raw.Change
	}
	return reading
}

func (g *InsightGenerator) loadHeadlines(ctx context.Context) string {
	articles := loadOrDefault[[]model.NewsArticle](ctx, g.store, g.logger, g.cfg.NewsPath, nil, nil)
	return joinHeadlines(articles)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
