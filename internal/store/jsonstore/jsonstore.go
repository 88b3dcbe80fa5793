package jsonstore

import (
	"fmt"
	"os"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Open prepares the data directory and returns JSON-file-backed stores for
// every collection. Files are created lazily on first write; a missing file
// reads as an empty collection.
func Open(dataDir string) (store.Stores, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return store.Stores{}, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	return store.Stores{
		Tools:   &Tools{c: newCollection[store.Tool](dataDir, "tools")},
		Users:   &Users{c: newCollection[store.User](dataDir, "users")},
		Reviews: &Reviews{c: newCollection[store.Review](dataDir, "reviews")},
		News:    &News{c: newCollection[store.NewsItem](dataDir, "news")},
	}, nil
}
