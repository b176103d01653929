// Package querydb implements the incremental document database.
// Documents are inputs set under a key; derivations are pure functions of those
// inputs whose results are memoized per (derivation, key) until an input they
// read is replaced.
package querydb

import (
	"context"
	"slices"
	"sync"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.trai.ch/quill/internal/adapters/telemetry" //nolint:depguard // default tracer
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Func computes one derivation for key. It must read documents through
// Database.Input and other derivations through Database.Derive (or the typed
// helpers) so the database can track what the result depends on.
type Func func(ctx context.Context, db *Database, key domain.Key) (any, error)

// Stats reports memoization counters.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Computations  uint64
	Invalidations uint64
}

// memoKey identifies one cache entry.
type memoKey struct {
	name domain.DerivationName
	key  domain.Key
}

// entry is a memoized artifact and the key revisions it was computed from.
type entry struct {
	value any
	deps  map[domain.Key]uint64
}

// Database stores documents and memoizes derivations over them.
// A Database is scoped to one pipeline run and is safe for concurrent use.
type Database struct {
	mu          sync.RWMutex
	docs        map[domain.Key]domain.Document
	revisions   map[domain.Key]uint64
	revision    uint64
	memo        map[memoKey]*entry
	derivations map[domain.DerivationName]Func
	// generations counts Register calls per name so results of a replaced
	// function are never memoized.
	generations map[domain.DerivationName]uint64

	flight  singleflight.Group
	tracer  ports.Tracer
	markup  ports.MarkupRenderer
	links   domain.LinkPolicy
	baseURL string
	readers []sdkmetric.Reader
	metrics *metrics
}

// Option configures a Database.
type Option func(*Database)

// WithTracer traces every derivation computation.
func WithTracer(t ports.Tracer) Option {
	return func(db *Database) {
		db.tracer = t
	}
}

// WithMarkup sets the renderer used by the render derivation.
func WithMarkup(r ports.MarkupRenderer) Option {
	return func(db *Database) {
		db.markup = r
	}
}

// WithLinks sets the policy used by the permalink derivation.
func WithLinks(p domain.LinkPolicy) Option {
	return func(db *Database) {
		db.links = p
	}
}

// WithBaseURL sets the site URL feed items are made absolute against.
func WithBaseURL(u string) Option {
	return func(db *Database) {
		db.baseURL = u
	}
}

// WithMetricReader exposes the memo counters to r in addition to Stats.
func WithMetricReader(r sdkmetric.Reader) Option {
	return func(db *Database) {
		db.readers = append(db.readers, r)
	}
}

// New creates an empty Database with the built-in derivations registered.
func New(opts ...Option) *Database {
	db := &Database{
		docs:        make(map[domain.Key]domain.Document),
		revisions:   make(map[domain.Key]uint64),
		memo:        make(map[memoKey]*entry),
		derivations: make(map[domain.DerivationName]Func),
		generations: make(map[domain.DerivationName]uint64),
		tracer:      telemetry.NewNoOpTracer(),
		links:       domain.DefaultLinkPolicy(),
	}
	for name, fn := range builtins() {
		db.derivations[name] = fn
	}
	for _, opt := range opts {
		opt(db)
	}
	db.metrics = newMetrics(db.readers...)
	return db
}

// Set inserts or replaces the document at key and drops every memoized
// artifact that was computed from the previous value.
func (db *Database) Set(key domain.Key, doc domain.Document) error {
	if key.IsZero() {
		return domain.ErrInvalidKey
	}
	doc = doc.Clone()
	doc.Key = key

	db.mu.Lock()
	db.revision++
	db.docs[key] = doc
	db.revisions[key] = db.revision

	dropped := 0
	for id, e := range db.memo {
		if _, ok := e.deps[key]; ok || id.key == key {
			delete(db.memo, id)
			dropped++
		}
	}
	db.mu.Unlock()

	db.metrics.invalidated(dropped)
	return nil
}

// Get returns a copy of the document at key.
func (db *Database) Get(key domain.Key) (domain.Document, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	doc, ok := db.docs[key]
	if !ok {
		return domain.Document{}, notFound(key)
	}
	return doc.Clone(), nil
}

// Input returns the document at key and records it as a dependency of the
// derivation running in ctx, if any.
func (db *Database) Input(ctx context.Context, key domain.Key) (domain.Document, error) {
	db.mu.RLock()
	doc, ok := db.docs[key]
	rev := db.revisions[key]
	db.mu.RUnlock()

	if !ok {
		return domain.Document{}, notFound(key)
	}
	if f := frameFrom(ctx); f != nil {
		f.record(key, rev)
	}
	return doc.Clone(), nil
}

// Keys returns the stored keys in lexical order.
func (db *Database) Keys() []domain.Key {
	db.mu.RLock()
	keys := make([]domain.Key, 0, len(db.docs))
	for k := range db.docs {
		keys = append(keys, k)
	}
	db.mu.RUnlock()

	slices.SortFunc(keys, domain.Key.Compare)
	return keys
}

// Register adds or replaces a derivation. Artifacts memoized under a replaced
// derivation are dropped, and computations still running under the old function
// return their result without memoizing it.
//
// Cycles are detected along one call chain only. Two goroutines that derive
// artifacts depending on each other across keys, entering the chain from
// opposite ends, wait on each other's in-flight computation forever. A
// derivation that reads other keys must not be reachable from the artifacts
// of those keys.
func (db *Database) Register(name domain.DerivationName, fn Func) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.derivations[name] = fn
	db.generations[name]++
	for id := range db.memo {
		if id.name == name {
			delete(db.memo, id)
		}
	}
}

// Stats returns a snapshot of the memoization counters.
func (db *Database) Stats() Stats {
	return db.metrics.stats()
}

func notFound(key domain.Key) error {
	return domain.Annotate(domain.ErrDocumentNotFound, "key", key.String())
}

// currentLocked reports whether every recorded revision is still the live one.
// The caller must hold mu.
func (db *Database) currentLocked(deps map[domain.Key]uint64) bool {
	for k, rev := range deps {
		if db.revisions[k] != rev {
			return false
		}
	}
	return true
}
