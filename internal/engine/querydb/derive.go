package querydb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/quill/internal/adapters/telemetry" //nolint:depguard // span naming
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

type frameKey struct{}

// frame tracks one running derivation: its caller chain for cycle detection
// and the key revisions it has read so far.
type frame struct {
	parent *frame
	id     memoKey

	mu   sync.Mutex
	deps map[domain.Key]uint64
}

func frameFrom(ctx context.Context) *frame {
	f, _ := ctx.Value(frameKey{}).(*frame)
	return f
}

// record notes that key was read at rev. When the same key is seen at two
// revisions the older one is kept so the result is never stored as current.
func (f *frame) record(key domain.Key, rev uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if old, ok := f.deps[key]; !ok || rev < old {
		f.deps[key] = rev
	}
}

func (f *frame) merge(deps map[domain.Key]uint64) {
	for k, rev := range deps {
		f.record(k, rev)
	}
}

func (f *frame) snapshot() map[domain.Key]uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[domain.Key]uint64, len(f.deps))
	for k, v := range f.deps {
		out[k] = v
	}
	return out
}

func (f *frame) contains(id memoKey) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if cur.id == id {
			return true
		}
	}
	return false
}

// cyclePath renders the chain from the first occurrence of id down to f, closed by id.
func (f *frame) cyclePath(id memoKey) string {
	var chain []memoKey
	for cur := f; cur != nil; cur = cur.parent {
		chain = append(chain, cur.id)
		if cur.id == id {
			break
		}
	}
	parts := make([]string, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		parts = append(parts, chain[i].String())
	}
	parts = append(parts, id.String())
	return strings.Join(parts, " -> ")
}

func (id memoKey) String() string {
	return fmt.Sprintf("%s(%s)", id.name, id.key)
}

type result struct {
	value any
	deps  map[domain.Key]uint64
}

// Derive returns the artifact of derivation name for key, computing it on first
// request and serving the memoized value until an input it read is replaced.
//
// A missing document fails with domain.ErrDocumentNotFound. A failing
// derivation fails with domain.ErrDerivationFailed wrapping the cause. Failed
// attempts are never memoized.
func (db *Database) Derive(ctx context.Context, name domain.DerivationName, key domain.Key) (any, error) {
	res, err := db.derive(ctx, name, key)
	if err != nil {
		return nil, err
	}
	if parent := frameFrom(ctx); parent != nil {
		parent.merge(res.deps)
	}
	return res.value, nil
}

func (db *Database) derive(ctx context.Context, name domain.DerivationName, key domain.Key) (result, error) {
	id := memoKey{name: name, key: key}
	parent := frameFrom(ctx)
	if parent != nil && parent.contains(id) {
		return result{}, domain.Annotate(domain.ErrDerivationCycle, "cycle", parent.cyclePath(id))
	}

	db.mu.RLock()
	fn, registered := db.derivations[name]
	gen := db.generations[name]
	cached, hit := db.memo[id]
	if hit {
		hit = db.currentLocked(cached.deps)
	}
	_, exists := db.docs[key]
	rev := db.revisions[key]
	db.mu.RUnlock()

	if !registered {
		return result{}, domain.Annotate(domain.ErrUnknownDerivation, "derivation", string(name))
	}
	if hit {
		db.metrics.hit(ctx, name)
		return result{value: cached.value, deps: cached.deps}, nil
	}
	if !exists {
		return result{}, notFound(key)
	}

	db.metrics.miss(ctx, name)

	v, err, _ := db.flight.Do(fmt.Sprintf("%s\x00%d\x00%s\x00%d", name, gen, key, rev), func() (any, error) {
		return db.compute(ctx, parent, id, rev, gen, fn)
	})
	if err != nil {
		return result{}, err
	}
	return v.(result), nil
}

func (db *Database) compute(ctx context.Context, parent *frame, id memoKey, rev, gen uint64, fn Func) (result, error) {
	// A flight for the same revision may have stored the entry while we waited.
	db.mu.RLock()
	if e, ok := db.memo[id]; ok && db.currentLocked(e.deps) {
		db.mu.RUnlock()
		return result{value: e.value, deps: e.deps}, nil
	}
	db.mu.RUnlock()

	f := &frame{
		parent: parent,
		id:     id,
		deps:   map[domain.Key]uint64{id.key: rev},
	}
	ctx = context.WithValue(ctx, frameKey{}, f)
	ctx, span := db.tracer.Start(ctx, telemetry.DerivePrefix+string(id.name), ports.WithAttribute("key", id.key.String()))
	defer span.End()

	db.metrics.computed(ctx, id.name)
	value, err := fn(ctx, db, id.key)
	if err != nil {
		err = derivationError(id, err)
		span.RecordError(err)
		return result{}, err
	}

	deps := f.snapshot()

	db.mu.Lock()
	stored := db.generations[id.name] == gen && db.currentLocked(deps)
	if stored {
		db.memo[id] = &entry{value: value, deps: deps}
	}
	db.mu.Unlock()

	span.SetAttribute("memoized", stored)
	return result{value: value, deps: deps}, nil
}

// derivationError classifies a failure. Failures that already identify their
// origin pass through; anything else becomes a derivation failure carrying the
// derivation name and key.
func derivationError(id memoKey, err error) error {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrDerivationFailed),
		errors.Is(err, domain.ErrDerivationCycle),
		errors.Is(err, domain.ErrUnknownDerivation):
		return err
	}
	wrapped := domain.Annotate(errors.Join(domain.ErrDerivationFailed, err), "derivation", string(id.name))
	return zerr.With(wrapped, "key", id.key.String())
}
