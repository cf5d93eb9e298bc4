// Package view holds the screen-side collection machinery every page shares:
// fetch a full collection, keep the raw copy, derive a filtered projection,
// and re-fetch after each mutation. Filtering is always a pure function of
// the raw slice plus the current filter inputs; it is never pushed to the
// server.
package view

import (
	"context"
	"strings"
	"sync/atomic"
)

// FetchFunc loads the full collection for the screen's current tab/scope.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection caches one fetched collection. Mutations go through the API
// wrappers directly; callers then Refresh and re-derive their projection.
//
// Refresh carries a generation counter so that if two refreshes ever overlap
// (they cannot in the synchronous shell, but a future caller might), only the
// latest one publishes its result; a stale response is dropped instead of
// overwriting newer data.
type Collection[T any] struct {
	fetch  FetchFunc[T]
	items  []T
	loaded bool
	gen    atomic.Uint64
}

func NewCollection[T any](fetch FetchFunc[T]) *Collection[T] {
	return &Collection[T]{fetch: fetch}
}

// Refresh replaces the cached items with a fresh fetch.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	gen := c.gen.Add(1)

	items, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	if c.gen.Load() != gen {
		// A newer refresh finished first; keep its result.
		return nil
	}
	c.items = items
	c.loaded = true
	return nil
}

// Items returns the raw cached collection (never a copy; callers must not
// mutate it).
func (c *Collection[T]) Items() []T { return c.items }

// Loaded reports whether at least one fetch has succeeded. Screens show the
// full loading state only while this is false; later refreshes redraw in
// place.
func (c *Collection[T]) Loaded() bool { return c.loaded }

// SetFetch swaps the fetch function (tab changes) and marks the collection
// stale so the next Refresh repopulates it.
func (c *Collection[T]) SetFetch(fetch FetchFunc[T]) {
	c.fetch = fetch
	c.items = nil
	c.loaded = false
}

// Filter returns the elements of items for which keep is true. The input
// slice is left untouched.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// MatchText reports whether any of the fields contains term,
// case-insensitively. An empty term matches everything, so clearing the
// search box restores the full collection.
func MatchText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
