package usecase

import (
	"context"
	"errors"

	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type stubSource struct {
	name     string
	articles []model.NewsArticle
	err      error
	calls    int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchNews(context.Context) ([]model.NewsArticle, error) {
	s.calls++
	return s.articles, s.err
}

type stubCompleter struct {
	replies map[string]string
	errs    map[string]error
	calls   []string
	prompts []string
}

func (c *stubCompleter) Complete(_ context.Context, modelName, prompt string) (string, error) {
	c.calls = append(c.calls, modelName)
	c.prompts = append(c.prompts, prompt)
	if err, ok := c.errs[modelName]; ok {
		return "", err
	}
	return c.replies[modelName], nil
}

type failingWriter struct{}

func (failingWriter) Write(context.Context, string, any) error {
	return errors.New("permission denied")
}

func (failingWriter) Read(context.Context, string, any) error {
	return errors.New("permission denied")
}

func articles(n int) []model.NewsArticle {
	out := make([]model.NewsArticle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.NewsArticle{Title: "headline", Source: "test"})
	}
	return out
}

var errUpstream = fallback.Upstream("stub", errors.New("status 500"))
