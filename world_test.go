package depot

import (
	"errors"
	"reflect"
	"testing"
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

type Health struct {
	Current int
	Max     int
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := Factory.NewWorld(
		FactoryNewDenseStore[Position](),
		FactoryNewSparseStore[Velocity](),
		FactoryNewTableStore[Health](),
	)
	if err != nil {
		t.Fatalf("Failed to compose world: %v", err)
	}
	return w
}

// TestNewEntityIDs tests monotonic 0-based allocation
func TestNewEntityIDs(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"none", 0},
		{"one", 1},
		{"many", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)

			for i := 0; i < tt.count; i++ {
				id := w.NewEntity()
				if id != EntityID(i) {
					t.Fatalf("NewEntity call %d returned %d, want %d", i, id, i)
				}
			}
			if got := w.MaxID(); got != EntityID(tt.count) {
				t.Errorf("MaxID: %d, want %d", got, tt.count)
			}
		})
	}
}

// TestUnallocatedIDsHaveNothing tests that ids never handed out hold no components
func TestUnallocatedIDsHaveNothing(t *testing.T) {
	w := newTestWorld(t)
	w.NewEntity()

	for _, id := range []EntityID{1, 2, 500} {
		if HasComponent[Position](w, id) {
			t.Errorf("HasComponent[Position](%d): true for unallocated id", id)
		}
		if HasComponent[Velocity](w, id) {
			t.Errorf("HasComponent[Velocity](%d): true for unallocated id", id)
		}
		if HasComponent[Health](w, id) {
			t.Errorf("HasComponent[Health](%d): true for unallocated id", id)
		}
	}
}

// TestDuplicateStore tests rejection of two stores for one component type
func TestDuplicateStore(t *testing.T) {
	_, err := Factory.NewWorld(
		FactoryNewDenseStore[Position](),
		FactoryNewSparseStore[Position](),
	)
	if err == nil {
		t.Fatalf("Composing duplicate stores succeeded, want DuplicateStoreError")
	}
	var dup DuplicateStoreError
	if !errors.As(err, &dup) {
		t.Fatalf("error: %v (%T), want DuplicateStoreError", err, err)
	}
	if dup.Type != reflect.TypeFor[Position]() {
		t.Errorf("DuplicateStoreError.Type: %v, want Position", dup.Type)
	}
}

// TestComponentRoundTrip tests add-then-read through the world's typed dispatch
func TestComponentRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	id := w.NewEntity()

	AddComponent(w, id, Position{X: 1, Y: 2})
	AddComponent(w, id, Health{Current: 5, Max: 10})

	if got, ok := GetSafe[Position](w, id).Get(); !ok || got != (Position{X: 1, Y: 2}) {
		t.Errorf("GetSafe[Position]: (%v, %v), want ({1 2}, true)", got, ok)
	}
	if got := GetRequired[Health](w, id); got != (Health{Current: 5, Max: 10}) {
		t.Errorf("GetRequired[Health]: %v, want {5 10}", got)
	}

	// Overwrite has no precondition on prior existence
	AddComponent(w, id, Position{X: 9, Y: 9})
	if got := GetRequired[Position](w, id); got != (Position{X: 9, Y: 9}) {
		t.Errorf("GetRequired after overwrite: %v, want {9 9}", got)
	}
}

// TestRemoveComponent tests deletion regardless of prior state
func TestRemoveComponent(t *testing.T) {
	w := newTestWorld(t)
	id := w.NewEntity()

	AddComponent(w, id, Velocity{X: 1})
	RemoveComponent[Velocity](w, id)
	if HasComponent[Velocity](w, id) {
		t.Errorf("HasComponent after remove: true, want false")
	}

	// Removing an absent component stays a no-op
	RemoveComponent[Velocity](w, id)
	if HasComponent[Velocity](w, id) {
		t.Errorf("HasComponent after double remove: true, want false")
	}
}

// TestHasAll tests the conjunctive presence query, including optional and
// unknown component types
func TestHasAll(t *testing.T) {
	w := newTestWorld(t)
	id := w.NewEntity()
	AddComponent(w, id, Position{})
	AddComponent(w, id, Velocity{})

	type untracked struct{}

	tests := []struct {
		name string
		tags []ComponentTag
		want bool
	}{
		{"all present", []ComponentTag{Tag[Position](), Tag[Velocity]()}, true},
		{"one absent", []ComponentTag{Tag[Position](), Tag[Health]()}, false},
		{"empty list", nil, true},
		{"optional absent component", []ComponentTag{Tag[Position](), Tag[Option[Health]]()}, true},
		{"untracked type", []ComponentTag{Tag[untracked]()}, false},
		{"duplicate tags", []ComponentTag{Tag[Position](), Tag[Position]()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.HasAll(id, tt.tags...); got != tt.want {
				t.Errorf("HasAll: %v, want %v", got, tt.want)
			}
		})
	}
}

// TestResolveTagsDedup tests that duplicate tags collapse through the mask
func TestResolveTagsDedup(t *testing.T) {
	w := newTestWorld(t)

	set, err := w.ResolveTags(Tag[Position](), Tag[Position](), Tag[Velocity]())
	if err != nil {
		t.Fatalf("ResolveTags failed: %v", err)
	}
	if len(set.required) != 2 {
		t.Errorf("resolved requirement count: %d, want 2", len(set.required))
	}

	full, err := w.ResolveTags(Tag[Position](), Tag[Velocity](), Tag[Health]())
	if err != nil {
		t.Fatalf("ResolveTags failed: %v", err)
	}
	if full.Mask() != w.Registered() {
		t.Errorf("full tag set mask does not equal the world's registered mask")
	}
}

// TestWorldClone tests deep-copy value semantics for snapshot/restore
func TestWorldClone(t *testing.T) {
	w := newTestWorld(t)
	a := w.NewEntity()
	b := w.NewEntity()
	AddComponent(w, a, Position{X: 1})
	AddComponent(w, b, Health{Current: 3, Max: 3})

	snapshot := w.Clone()

	// Mutations after the copy must not leak either way
	AddComponent(w, a, Position{X: 42})
	RemoveComponent[Health](w, b)
	AddComponent(snapshot, b, Velocity{X: 7})

	if got := GetRequired[Position](snapshot, a); got != (Position{X: 1}) {
		t.Errorf("snapshot Position: %v, want {1 0}", got)
	}
	if !HasComponent[Health](snapshot, b) {
		t.Errorf("snapshot lost Health removed from original")
	}
	if HasComponent[Velocity](w, b) {
		t.Errorf("original gained Velocity written to snapshot")
	}
	if snapshot.MaxID() != w.MaxID() {
		t.Errorf("snapshot MaxID: %d, want %d", snapshot.MaxID(), w.MaxID())
	}
}

// TestTrackedTypes tests the composed type listing keeps store order
func TestTrackedTypes(t *testing.T) {
	w := newTestWorld(t)

	got := w.TrackedTypes()
	want := []reflect.Type{
		reflect.TypeFor[Position](),
		reflect.TypeFor[Velocity](),
		reflect.TypeFor[Health](),
	}
	if len(got) != len(want) {
		t.Fatalf("TrackedTypes length: %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TrackedTypes[%d]: %v, want %v", i, got[i], want[i])
		}
	}
}

// TestOptionalComponentQuery tests that Option-typed queries always answer
func TestOptionalComponentQuery(t *testing.T) {
	w := newTestWorld(t)
	id := w.NewEntity()

	if !HasComponent[Option[Position]](w, id) {
		t.Errorf("HasComponent[Option[Position]]: false, want true")
	}
	if HasComponent[Position](w, id) {
		t.Errorf("HasComponent[Position] without value: true, want false")
	}
}
