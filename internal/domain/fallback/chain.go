package fallback

import (
	"context"

	"finpulse/internal/domain/ports"
)

// FallbackName is reported as the winning source when every source failed.
const FallbackName = "fallback"

// Source is one nullary strategy in a chain.
type Source[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
}

// Outcome describes how a chain was resolved.
type Outcome[T any] struct {
	Value    T
	Source   string
	Failures []*FetchError
}

// UsedFallback reports whether no source produced the value.
func (o Outcome[T]) UsedFallback() bool {
	return o.Source == FallbackName
}

// Chain tries its sources strictly in order and stops at the first non-empty success.
type Chain[T any] struct {
	logger  ports.Logger
	isEmpty func(T) bool
	sources []Source[T]
}

// NewChain builds a chain. Sources without a Fetch func are dropped.
func NewChain[T any](logger ports.Logger, isEmpty func(T) bool, sources ...Source[T]) *Chain[T] {
	active := make([]Source[T], 0, len(sources))
	for _, s := range sources {
		if s.Fetch != nil {
			active = append(active, s)
		}
	}
	return &Chain[T]{
		logger:  logger,
		isEmpty: isEmpty,
		sources: active,
	}
}

// Resolve returns the first usable source value, or fallback() when none succeeds.
// Source failures are logged and recorded, never returned.
func (c *Chain[T]) Resolve(ctx context.Context, fallback func() T) Outcome[T] {
	var failures []*FetchError

	for _, source := range c.sources {
		value, err := source.Fetch(ctx)
		if err == nil && c.isEmpty != nil && c.isEmpty(value) {
			err = Empty(source.Name)
		}

		if err != nil {
			fe := Classify(source.Name, err)
			failures = append(failures, fe)
			c.logFailure(ctx, fe)
			continue
		}

		if c.logger != nil {
			c.logger.Info(ctx, "source succeeded", "source", source.Name)
		}
		return Outcome[T]{Value: value, Source: source.Name, Failures: failures}
	}

	if c.logger != nil {
		c.logger.Warn(ctx, "all sources failed, using fallback", "attempted", len(c.sources))
	}
	return Outcome[T]{Value: fallback(), Source: FallbackName, Failures: failures}
}

func (c *Chain[T]) logFailure(ctx context.Context, fe *FetchError) {
	if c.logger == nil {
		return
	}
	if fe.Kind == KindSkipped {
		c.logger.Info(ctx, "source skipped", "source", fe.Source, "reason", fe.Err)
		return
	}
	c.logger.Error(ctx, "source failed", "source", fe.Source, "kind", fe.Kind.String(), "error", fe.Err)
}

// IsEmptySlice is the emptiness test for list-valued chains.
func IsEmptySlice[E any](items []E) bool {
	return len(items) == 0
}
