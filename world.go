package depot

import (
	"iter"
	"maps"
	"reflect"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// World composes a fixed, ordered set of stores, one per tracked component
// type, and owns entity-id allocation. The composition is part of the
// world's identity: it is chosen once at construction and never changes.
type World struct {
	stores     []Store
	byType     map[reflect.Type]int
	registered mask.Mask
	nextID     EntityID
}

func newWorld(stores ...Store) (*World, error) {
	w := &World{
		stores: stores,
		byType: make(map[reflect.Type]int, len(stores)),
	}
	for i, s := range stores {
		t := s.ComponentType()
		if _, exists := w.byType[t]; exists {
			return nil, DuplicateStoreError{Type: t}
		}
		w.byType[t] = i
		w.registered.Mark(uint32(i))
	}
	return w, nil
}

// NewEntity allocates the next entity handle. Every composed store is grown
// to cover the new id before it is handed out, so later lookups never need
// bounds checking. IDs are never recycled.
func (w *World) NewEntity() EntityID {
	for _, s := range w.stores {
		s.EnsureCapacity(w.nextID)
	}
	id := w.nextID
	w.nextID++
	return id
}

// MaxID is the exclusive upper bound for iteration; it equals the count of
// ids ever allocated.
func (w *World) MaxID() EntityID {
	return w.nextID
}

// HasAll reports whether id holds every tagged component. Unknown component
// types never match.
func (w *World) HasAll(id EntityID, tags ...ComponentTag) bool {
	set, err := w.ResolveTags(tags...)
	if err != nil {
		return false
	}
	return set.Matches(id)
}

// SetMapResult interprets a map function's result for id, dispatching on the
// result's shape: overwrite for a plain value, overwrite-or-delete for an
// Option, each element in declared order for All, and only the selected
// branch for OneOf. A nil result is a no-op.
func (w *World) SetMapResult(id EntityID, r Result) {
	if r == nil {
		return
	}
	r.apply(w, id)
}

// Clone deep-copies the world: every store's full contents plus the id
// counter, with no aliasing between original and copy. This is the mechanism
// for snapshot/restore of simulation state.
func (w *World) Clone() *World {
	stores := make([]Store, len(w.stores))
	for i, s := range w.stores {
		stores[i] = s.Clone()
	}
	return &World{
		stores:     stores,
		byType:     maps.Clone(w.byType),
		registered: w.registered,
		nextID:     w.nextID,
	}
}

// Registered reports the mask of composed store bits, indexed by store
// position. A TagSet naming every tracked type resolves to this mask.
func (w *World) Registered() mask.Mask {
	return w.registered
}

// ComponentTypes yields the tracked component types in store order.
func (w *World) ComponentTypes() iter.Seq[reflect.Type] {
	return func(yield func(reflect.Type) bool) {
		for _, s := range w.stores {
			if !yield(s.ComponentType()) {
				return
			}
		}
	}
}

// TrackedTypes collects the tracked component types into a slice.
func (w *World) TrackedTypes() []reflect.Type {
	return iter_util.Collect(w.ComponentTypes())
}
