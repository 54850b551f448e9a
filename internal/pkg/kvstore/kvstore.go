// Package kvstore persists named collections as JSON documents under
// namespaced, versioned keys of the form "shiftsync:<collection>:v<version>".
//
// Every collection is read and written whole. Callers that read, modify and
// write back must do so inside WithinTx so that concurrent writers cannot
// interleave and a failure part way through restores the previous state.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Namespace prefixes every key written by this package.
const Namespace = "shiftsync"

var ErrCorruptValue = errors.New("stored value is not valid JSON")

// Store is a transactional byte-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	Close() error
}

// Key builds the storage key for a collection.
func Key(collection string, version int) string {
	return fmt.Sprintf("%s:%s:v%d", Namespace, collection, version)
}

// Collection is a list of T stored under a single key.
type Collection[T any] struct {
	store Store
	key   string
}

func NewCollection[T any](store Store, name string, version int) *Collection[T] {
	return &Collection[T]{store: store, key: Key(name, version)}
}

// Key returns the storage key of the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns every item. A missing key is an empty collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("load %s: %w: %v", c.key, ErrCorruptValue, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	if err := c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Update loads the collection, applies fn and saves the result atomically.
// Nothing is written when fn returns an error.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	return c.store.WithinTx(ctx, func(ctx context.Context) error {
		items, err := c.Load(ctx)
		if err != nil {
			return err
		}
		updated, err := fn(items)
		if err != nil {
			return err
		}
		return c.Save(ctx, updated)
	})
}

// Document is a single object stored under one key.
type Document[T any] struct {
	store Store
	key   string
}

func NewDocument[T any](store Store, name string, version int) *Document[T] {
	return &Document[T]{store: store, key: Key(name, version)}
}

// Load returns the stored object and whether it existed.
func (d *Document[T]) Load(ctx context.Context) (T, bool, error) {
	var out T
	raw, ok, err := d.store.Get(ctx, d.key)
	if err != nil {
		return out, false, fmt.Errorf("load %s: %w", d.key, err)
	}
	if !ok || len(raw) == 0 {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("load %s: %w: %v", d.key, ErrCorruptValue, err)
	}
	return out, true, nil
}

func (d *Document[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", d.key, err)
	}
	if err := d.store.Put(ctx, d.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", d.key, err)
	}
	return nil
}
