package jsonstore_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/internal/store/jsonstore"
)

func openStores(t *testing.T, dir string) store.Stores {
	t.Helper()
	stores, err := jsonstore.Open(dir)
	if err != nil {
		t.Fatalf("open jsonstore: %v", err)
	}
	return stores
}

func newTool(id, name string) *store.Tool {
	return &store.Tool{
		ID:        id,
		Name:      name,
		Category:  store.CategoryText,
		CreatedAt: time.Now().UTC(),
	}
}

func TestTools_CreateAndReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	stores := openStores(t, dir)
	if err := stores.Tools.Create(ctx, newTool("t1", "ChatGPT")); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh handle over the same directory sees the data.
	reopened := openStores(t, dir)
	tool, err := reopened.Tools.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if tool.Name != "ChatGPT" {
		t.Errorf("name = %q, want ChatGPT", tool.Name)
	}
}

func TestTools_FileIsPrettyPrintedArray(t *testing.T) {
	dir := t.TempDir()
	stores := openStores(t, dir)
	if err := stores.Tools.Create(context.Background(), newTool("t1", "ChatGPT")); err != nil {
		t.Fatalf("create: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tools.json"))
	if err != nil {
		t.Fatalf("read tools.json: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "[") {
		t.Errorf("tools.json does not start with an array: %q", content[:1])
	}
	if !strings.Contains(content, "\n  ") {
		t.Error("tools.json is not indented")
	}
}

func TestTools_GetByID_NotFound(t *testing.T) {
	stores := openStores(t, t.TempDir())
	_, err := stores.Tools.GetByID(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTools_UpdateAndDelete_NotFound(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	if err := stores.Tools.Update(ctx, newTool("nope", "X")); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update err = %v, want ErrNotFound", err)
	}
	if err := stores.Tools.Delete(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete err = %v, want ErrNotFound", err)
	}
	if err := stores.Tools.SetAggregate(ctx, "nope", 4.5, 2); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("set aggregate err = %v, want ErrNotFound", err)
	}
}

func TestTools_SetAggregate(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	if err := stores.Tools.Create(ctx, newTool("t1", "ChatGPT")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := stores.Tools.SetAggregate(ctx, "t1", 4.5, 2); err != nil {
		t.Fatalf("set aggregate: %v", err)
	}
	tool, err := stores.Tools.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tool.Rating != 4.5 || tool.ReviewCount != 2 {
		t.Errorf("aggregate = %v/%d, want 4.5/2", tool.Rating, tool.ReviewCount)
	}
}

func TestCorruptedFile_SurfacesError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tools.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupted file: %v", err)
	}

	stores := openStores(t, dir)
	if _, err := stores.Tools.ListAll(context.Background()); err == nil {
		t.Error("ListAll over a corrupted file returned no error")
	}
}

func TestMissingFile_IsEmptyCollection(t *testing.T) {
	stores := openStores(t, t.TempDir())
	tools, err := stores.Tools.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tools) != 0 {
		t.Errorf("len = %d, want 0", len(tools))
	}
}

func TestUsers_DuplicateEmail(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	user := &store.User{ID: "u1", Name: "Root", Email: "root@example.com", Role: store.RoleAdmin}
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := &store.User{ID: "u2", Name: "Imposter", Email: "ROOT@example.com", Role: store.RoleUser}
	if err := stores.Users.Create(ctx, dup); !errors.Is(err, store.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}

	n, err := stores.Users.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestUsers_GetByEmail_CaseInsensitive(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	user := &store.User{ID: "u1", Name: "Root", Email: "Root@Example.com", Role: store.RoleAdmin}
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := stores.Users.GetByEmail(ctx, "root@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("id = %q, want u1", got.ID)
	}
}

func TestNews_PrependAndTruncate(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	older := []store.NewsItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if err := stores.News.Prepend(ctx, older, 4); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	newer := []store.NewsItem{{ID: "x"}, {ID: "y"}}
	if err := stores.News.Prepend(ctx, newer, 4); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	items, err := stores.News.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []string{"x", "y", "a", "b"}
	if len(items) != len(want) {
		t.Fatalf("len = %d, want %d", len(items), len(want))
	}
	for i, item := range items {
		if item.ID != want[i] {
			t.Errorf("items[%d] = %s, want %s", i, item.ID, want[i])
		}
	}
}

func TestNews_Recent_Limit(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	var items []store.NewsItem
	for i := 0; i < 5; i++ {
		items = append(items, store.NewsItem{ID: fmt.Sprintf("n%d", i)})
	}
	if err := stores.News.Prepend(ctx, items, 50); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	got, err := stores.News.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

// Concurrent review writers must not lose appends.
func TestReviews_ConcurrentCreates(t *testing.T) {
	stores := openStores(t, t.TempDir())
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			review := &store.Review{
				ID:     fmt.Sprintf("r%d", i),
				ToolID: "t1",
				Rating: 5,
			}
			if err := stores.Reviews.Create(ctx, review); err != nil {
				t.Errorf("create review %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	reviews, err := stores.Reviews.ListByTool(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != writers {
		t.Errorf("len = %d, want %d (lost writes)", len(reviews), writers)
	}
}
