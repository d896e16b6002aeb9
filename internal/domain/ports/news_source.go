package ports

import (
	"context"

	"finpulse/internal/domain/model"
)

// NewsSource is one entry of the news fallback chain.
type NewsSource interface {
	Name() string
	FetchNews(ctx context.Context) ([]model.NewsArticle, error)
}

// NewsCorpus supplies the terminal, always non-empty news list.
type NewsCorpus interface {
	Articles() []model.NewsArticle
}
