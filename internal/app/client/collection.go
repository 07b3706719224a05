package client

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/exp/slog"

	"cryptofolio/internal/app/client/seed"
)

// Provenance records which tier actually supplied a collection, so
// callers can surface degraded mode instead of guessing.
type Provenance string

const (
	ProvenanceRemote Provenance = "remote"
	ProvenanceCache  Provenance = "cache"
	ProvenanceSeed   Provenance = "seed"
	ProvenanceEmpty  Provenance = "empty"
)

// Loaded is a collection snapshot tagged with its origin.
type Loaded[T any] struct {
	Items      []T
	Provenance Provenance
}

// store bundles the plumbing every collection shares: the proxy client,
// the persisted cache tier, and one mutex per filename so concurrent
// read-modify-write cycles in this process cannot eat each other's
// updates. (Two separate processes still race; the content store's
// version token is the only guard there.)
type store struct {
	http  *httpClient
	cache DocumentCache
	log   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStore(http *httpClient, cache DocumentCache, log *slog.Logger) *store {
	return &store{
		http:  http,
		cache: cache,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *store) lock(filename string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[filename]
	if !ok {
		l = &sync.Mutex{}
		s.locks[filename] = l
	}
	return l
}

// readDocument walks the fallback chain: proxy, persisted cache,
// bundled seed, empty. It never returns an error; total failure is an
// empty collection by design, so callers have no third state to handle.
func readDocument[T any](ctx context.Context, s *store, filename string) Loaded[T] {
	body, err := s.http.ReadDocument(ctx, filename)
	if err == nil {
		var items []T
		jsonErr := json.Unmarshal(body, &items)
		if jsonErr == nil {
			// Refresh the cache tier so the next outage serves this copy.
			if cacheErr := s.cache.Put(filename, body); cacheErr != nil {
				s.log.Warn("failed to refresh document cache", "filename", filename, "error", cacheErr)
			}
			return Loaded[T]{Items: items, Provenance: ProvenanceRemote}
		}
		s.log.Warn("remote document is not a valid collection", "filename", filename, "error", jsonErr)
	} else {
		s.log.Warn("remote read failed, falling back", "filename", filename, "error", err)
	}

	if cached, err := s.cache.Get(filename); err == nil {
		var items []T
		jsonErr := json.Unmarshal(cached, &items)
		if jsonErr == nil {
			return Loaded[T]{Items: items, Provenance: ProvenanceCache}
		}
		s.log.Warn("cached document is corrupt", "filename", filename, "error", jsonErr)
	}

	if bundled, ok := seed.Collection(filename); ok {
		var items []T
		if jsonErr := json.Unmarshal(bundled, &items); jsonErr == nil {
			return Loaded[T]{Items: items, Provenance: ProvenanceSeed}
		}
	}

	return Loaded[T]{Items: []T{}, Provenance: ProvenanceEmpty}
}

// writeDocument pushes the whole collection through the proxy. When the
// proxy fails, the array lands in the persisted cache instead and the
// write still reports success: locally durable, remotely lost until the
// next successful remote write of the same file.
func writeDocument[T any](ctx context.Context, s *store, filename string, items []T) bool {
	if err := s.http.WriteDocument(ctx, filename, items, ""); err != nil {
		s.log.Warn("remote write failed, persisting locally", "filename", filename, "error", err)

		payload, jsonErr := json.Marshal(items)
		if jsonErr != nil {
			s.log.Error("failed to serialize collection", "filename", filename, "error", jsonErr)
			return false
		}
		if cacheErr := s.cache.Put(filename, payload); cacheErr != nil {
			s.log.Error("local write failed too", "filename", filename, "error", cacheErr)
			return false
		}
		return true
	}

	if payload, err := json.Marshal(items); err == nil {
		if cacheErr := s.cache.Put(filename, payload); cacheErr != nil {
			s.log.Warn("failed to refresh document cache", "filename", filename, "error", cacheErr)
		}
	}
	return true
}

// Collection exposes one named JSON document as a typed in-memory
// array with whole-document persistence. Every mutation re-reads,
// mutates, and rewrites the full array.
type Collection[T any] struct {
	store    *store
	filename string
}

func NewCollection[T any](s *store, filename string) *Collection[T] {
	return &Collection[T]{store: s, filename: filename}
}

func (c *Collection[T]) GetAll(ctx context.Context) Loaded[T] {
	return readDocument[T](ctx, c.store, c.filename)
}

// Filter returns the elements matching pred, keeping relative order.
func (c *Collection[T]) Filter(ctx context.Context, pred func(T) bool) Loaded[T] {
	loaded := readDocument[T](ctx, c.store, c.filename)
	filtered := make([]T, 0, len(loaded.Items))
	for _, item := range loaded.Items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	loaded.Items = filtered
	return loaded
}

// Create appends the entity and persists the whole array.
func (c *Collection[T]) Create(ctx context.Context, item T) bool {
	l := c.store.lock(c.filename)
	l.Lock()
	defer l.Unlock()

	items := readDocument[T](ctx, c.store, c.filename).Items
	items = append(items, item)
	return writeDocument(ctx, c.store, c.filename, items)
}

// Update applies fn to the first element matching pred and persists.
// Returns false when no element matches (nothing is written).
func (c *Collection[T]) Update(ctx context.Context, pred func(T) bool, fn func(*T)) bool {
	l := c.store.lock(c.filename)
	l.Lock()
	defer l.Unlock()

	items := readDocument[T](ctx, c.store, c.filename).Items
	for i := range items {
		if pred(items[i]) {
			fn(&items[i])
			return writeDocument(ctx, c.store, c.filename, items)
		}
	}
	return false
}

// Delete removes every element matching pred and persists.
func (c *Collection[T]) Delete(ctx context.Context, pred func(T) bool) bool {
	l := c.store.lock(c.filename)
	l.Lock()
	defer l.Unlock()

	items := readDocument[T](ctx, c.store, c.filename).Items
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	return writeDocument(ctx, c.store, c.filename, kept)
}
