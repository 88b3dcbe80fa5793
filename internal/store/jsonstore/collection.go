// Package jsonstore persists each collection as a single pretty-printed
// JSON array file, rewritten in full on every mutation. All mutations on a
// collection are serialized behind a mutex so concurrent in-process writers
// cannot lose a read-modify-write cycle.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// collection owns one on-disk JSON array file.
type collection[T any] struct {
	mu   sync.Mutex
	path string
}

func newCollection[T any](dir, name string) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, name+".json")}
}

// load reads the whole collection. A missing file is an empty collection; a
// file that exists but does not parse is an error, never silently empty.
func (c *collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	return items, nil
}

// save rewrites the whole collection. The write goes to a temp file in the
// same directory and is renamed into place, so readers never observe a
// partially written file.
func (c *collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", c.path, err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}

// view runs fn with a consistent snapshot of the collection.
func (c *collection[T]) view(fn func(items []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	return fn(items)
}

// update runs fn over the current items and, when fn reports changed,
// rewrites the file with fn's result. The whole cycle holds the collection
// lock.
func (c *collection[T]) update(fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	next, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.save(next)
}
