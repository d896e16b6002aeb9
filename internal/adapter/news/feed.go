package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/model"
	"finpulse/internal/domain/ports"
)

const feedUserAgent = "Mozilla/5.0 (compatible; FinPulse/1.0)"

// FeedProvider reads a single RSS or Atom feed.
type FeedProvider struct {
	feedURL string
	limit   int
	parser  *gofeed.Parser
	logger  ports.Logger
	now     func() time.Time
}

var _ ports.NewsSource = (*FeedProvider)(nil)

// NewFeedProvider builds a provider for feedURL keeping at most limit items.
func NewFeedProvider(feedURL string, limit int, timeout time.Duration, logger ports.Logger) *FeedProvider {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = feedUserAgent
	return &FeedProvider{
		feedURL: feedURL,
		limit:   limit,
		parser:  parser,
		logger:  logger,
		now:     time.Now,
	}
}

// NewFeedProviders builds one provider per non-blank URL, preserving order.
func NewFeedProviders(urls []string, limit int, timeout time.Duration, logger ports.Logger) []*FeedProvider {
	providers := make([]*FeedProvider, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		providers = append(providers, NewFeedProvider(u, limit, timeout, logger))
	}
	return providers
}

// Name identifies the feed in logs.
func (f *FeedProvider) Name() string {
	return "feed:" + f.feedURL
}

// FetchNews parses the feed and maps its items to articles.
func (f *FeedProvider) FetchNews(ctx context.Context) ([]model.NewsArticle, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, fallback.Upstream(f.Name(), fmt.Errorf("feed status %d", httpErr.StatusCode))
		}
		return nil, fallback.Classify(f.Name(), fmt.Errorf("parse feed: %w", err))
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = f.feedURL
	}

	articles := make([]model.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if f.limit > 0 && len(articles) >= f.limit {
			break
		}
		title := htmlToText(item.Title)
		if title == "" {
			continue
		}
		description := item.Description
		if strings.TrimSpace(description) == "" {
			description = item.Content
		}
		articles = append(articles, model.NewsArticle{
			Title:       title,
			Description: htmlToText(description),
			URL:         strings.TrimSpace(item.Link),
			Source:      source,
			PublishedAt: f.publishedAt(item),
		})
	}

	if len(articles) == 0 {
		return nil, fallback.Empty(f.Name())
	}

	if f.logger != nil {
		f.logger.Info(ctx, "feed parsed", "feed", f.feedURL, "items", len(articles))
	}
	return articles, nil
}

func (f *FeedProvider) publishedAt(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	default:
		return f.now().UTC().Format(time.RFC3339)
	}
}
