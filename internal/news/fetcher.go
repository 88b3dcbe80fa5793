// Package news keeps the AI-news feed fresh. A Fetcher pulls configured RSS
// feeds and prepends the newest entries to the news store; a Scheduler runs
// it on a cron expression, decoupled from any HTTP request.
package news

import (
	"context"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

const (
	// MaxStored caps the news list after every prepend.
	MaxStored = 50
	// ServeLimit is the most items the feed endpoint ever returns.
	ServeLimit = 10
	// itemsPerFeed bounds how many entries one refresh takes per feed.
	itemsPerFeed = 5

	fetchTimeout = 30 * time.Second
)

// Fetcher pulls RSS feeds and appends their entries to the news store.
type Fetcher struct {
	news   store.NewsStore
	parser *gofeed.Parser
	feeds  []string
	logger *zap.Logger
}

// NewFetcher creates a fetcher over the given feed URLs.
func NewFetcher(news store.NewsStore, feeds []string, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		news:   news,
		parser: gofeed.NewParser(),
		feeds:  feeds,
		logger: logger,
	}
}

// Refresh fetches every configured feed once and prepends the collected
// items to the store, truncated to MaxStored. A feed that fails to fetch is
// logged and skipped; the remaining feeds still contribute.
func (f *Fetcher) Refresh(ctx context.Context) error {
	var items []store.NewsItem
	for _, feedURL := range f.feeds {
		fetched, err := f.fetchFeed(ctx, feedURL)
		if err != nil {
			metrics.NewsRefreshErrorsTotal.Inc()
			f.logger.Warn("fetch feed failed", zap.String("feed", feedURL), zap.Error(err))
			continue
		}
		items = append(items, fetched...)
	}
	if len(items) == 0 {
		return nil
	}
	if err := f.news.Prepend(ctx, items, MaxStored); err != nil {
		return err
	}
	metrics.NewsRefreshesTotal.Inc()
	f.logger.Info("news updated", zap.Int("items", len(items)))
	return nil
}

func (f *Fetcher) fetchFeed(ctx context.Context, feedURL string) ([]store.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	limit := len(feed.Items)
	if limit > itemsPerFeed {
		limit = itemsPerFeed
	}
	items := make([]store.NewsItem, 0, limit)
	for _, entry := range feed.Items[:limit] {
		date := time.Now().UTC()
		if entry.PublishedParsed != nil {
			date = entry.PublishedParsed.UTC()
		}
		content := entry.Description
		if content == "" {
			content = entry.Content
		}
		items = append(items, store.NewsItem{
			ID:      uuid.New().String(),
			Title:   entry.Title,
			Content: content,
			Date:    date,
			Link:    entry.Link,
		})
	}
	return items, nil
}
