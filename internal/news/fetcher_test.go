package news_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/news"
	"github.com/aitoolhub/aitoolhub/internal/store/jsonstore"
	"go.uber.org/zap"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>AI Wire</title>
    <item>
      <title>New model released</title>
      <description>A lab shipped a new model.</description>
      <link>https://example.com/new-model</link>
      <pubDate>Mon, 24 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Benchmark results published</title>
      <description>Benchmarks moved again.</description>
      <link>https://example.com/benchmarks</link>
      <pubDate>Sun, 23 Aug 2026 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetcher_Refresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody))
	}))
	defer srv.Close()

	stores, err := jsonstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open jsonstore: %v", err)
	}

	fetcher := news.NewFetcher(stores.News, []string{srv.URL}, zap.NewNop())
	if err := fetcher.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	items, err := stores.News.Recent(context.Background(), news.ServeLimit)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Title != "New model released" {
		t.Errorf("title = %q", items[0].Title)
	}
	if items[0].ID == "" {
		t.Error("item has no id")
	}
	if items[0].Link != "https://example.com/new-model" {
		t.Errorf("link = %q", items[0].Link)
	}
	if items[0].Content == "" {
		t.Error("item has no content")
	}
}

func TestFetcher_Refresh_SkipsBrokenFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody))
	}))
	defer srv.Close()
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer broken.Close()

	stores, err := jsonstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open jsonstore: %v", err)
	}

	fetcher := news.NewFetcher(stores.News, []string{broken.URL, srv.URL}, zap.NewNop())
	if err := fetcher.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	items, err := stores.News.Recent(context.Background(), news.ServeLimit)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2 from the healthy feed", len(items))
	}
}

func TestFetcher_Refresh_NoFeedsIsNoOp(t *testing.T) {
	stores, err := jsonstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open jsonstore: %v", err)
	}

	fetcher := news.NewFetcher(stores.News, nil, zap.NewNop())
	if err := fetcher.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	items, err := stores.News.Recent(context.Background(), news.ServeLimit)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}
