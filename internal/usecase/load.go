package usecase

import (
	"context"
	"fmt"

	"finpulse/internal/domain/ports"
)

// loadOrDefault reads a collaborator artifact into a T. A missing file, undecodable
// content or a validate error yields fallback instead; the reason is logged.
func loadOrDefault[T any](ctx context.Context, reader ports.ArtifactReader, logger ports.Logger, path string, fallback T, validate func(T) error) T {
	var value T
	if err := reader.Read(ctx, path, &value); err != nil {
		logger.Warn(ctx, "artifact unusable, using default", "path", path, "error", err)
		return fallback
	}

	if validate != nil {
		if err := validate(value); err != nil {
			logger.Warn(ctx, "artifact unusable, using default", "path", path, "error", fmt.Errorf("validate: %w", err))
			return fallback
		}
	}

	return value
}
