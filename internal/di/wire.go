//go:build wireinject

package di

import (
	"github.com/google/wire"

	"finpulse/internal/adapter/logging"
	"finpulse/internal/adapter/storage"
	"finpulse/internal/app"
	"finpulse/internal/config"
	"finpulse/internal/domain/ports"
	"finpulse/internal/usecase"
)

var commonSet = wire.NewSet(
	config.Load,
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	storage.NewJSONStore,
)

// InitializeNewsApp wires the news fetching job.
func InitializeNewsApp() (*app.App, error) {
	wire.Build(
		commonSet,
		wire.Bind(new(ports.ArtifactWriter), new(*storage.JSONStore)),
		provideNewsSources,
		provideNewsCorpus,
		provideNewsDigestConfig,
		usecase.NewNewsDigest,
		provideNewsApp,
	)
	return nil, nil
}

// InitializeInsightsApp wires the insight generation job.
func InitializeInsightsApp() (*app.App, error) {
	wire.Build(
		commonSet,
		wire.Bind(new(ports.ArtifactStore), new(*storage.JSONStore)),
		provideCompleter,
		provideInsightConfig,
		usecase.NewInsightGenerator,
		provideInsightsApp,
	)
	return nil, nil
}
