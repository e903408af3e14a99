package algebra

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Entry is one cached derivation. Entries are immutable after publication.
type Entry struct {
	// ID identifies this registration in diagnostics and logs.
	ID string

	// Interface is the derived interface name (Monad, Alternative, Foldable).
	Interface string

	// Type is the client-chosen constructor description, e.g. "Option[int]".
	Type string

	// Arity is the constructor arity (1 or 2).
	Arity int

	// Instance is the derived instance. Callers assert it back to the
	// concrete Instance type they derived, since each instantiation is a
	// distinct Go type.
	Instance any
}

// Registry caches derived instances so a derivation runs at most once per
// (type, interface, arity) triple. The cache is write-once: an entry is
// computed on first use, published atomically, and never mutated afterward,
// so it may be shared across concurrent readers without further
// synchronization. Because derivation is deterministic and pure, caching is
// never observable in derived behavior; it only amortizes the work.
//
// The zero value is ready to use.
type Registry struct {
	entries sync.Map // string key -> *Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func entryKey(iface, typeName string, arity int) string {
	return fmt.Sprintf("%s/%d/%s", iface, arity, typeName)
}

// Resolve returns the cached entry for the triple, running derive on first
// use. When concurrent resolvers race on the same triple, each may run
// derive, but exactly one result wins publication and all callers observe
// that one; losing results are discarded, which derivation's purity makes
// unobservable.
//
// A failed derive publishes nothing: there is no partial or degraded entry,
// and a later Resolve retries.
func (r *Registry) Resolve(iface, typeName string, arity int, derive func() (any, error)) (*Entry, error) {
	k := entryKey(iface, typeName, arity)
	if v, ok := r.entries.Load(k); ok {
		return v.(*Entry), nil
	}
	inst, err := derive()
	if err != nil {
		return nil, fmt.Errorf("deriving %s for %s: %w", iface, typeName, err)
	}
	e := &Entry{
		ID:        uuid.NewString(),
		Interface: iface,
		Type:      typeName,
		Arity:     arity,
		Instance:  inst,
	}
	if prev, loaded := r.entries.LoadOrStore(k, e); loaded {
		return prev.(*Entry), nil
	}
	return e, nil
}

// Lookup returns the cached entry for the triple without deriving.
func (r *Registry) Lookup(iface, typeName string, arity int) (*Entry, bool) {
	v, ok := r.entries.Load(entryKey(iface, typeName, arity))
	if !ok {
		return nil, false
	}
	return v.(*Entry), true
}

// Len reports the number of published entries.
func (r *Registry) Len() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
