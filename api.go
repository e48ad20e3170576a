package depot

import (
	"reflect"
)

// EntityID is a permanent, non-negative handle identifying an entity across
// every store in a world. IDs are allocated monotonically from 0 and never
// reused.
type EntityID int

// Store is a single-component-type container keyed by EntityID. Absence is a
// first-class state, not an error. Backends are provided by the factory
// constructors; all share this contract and differ only in cost model.
type Store interface {
	// ComponentType reports the component type this store holds.
	ComponentType() reflect.Type
	// Exists reports whether a value is currently stored for id.
	Exists(id EntityID) bool
	// Remove deletes the value for id if present; no-op if absent.
	Remove(id EntityID)
	// EnsureCapacity hints that id is about to become a valid handle,
	// letting array-backed stores pre-grow. No-op for map-backed stores.
	EnsureCapacity(id EntityID)
	// Len reports the number of occupied entries.
	Len() int
	// Clone returns a deep copy sharing no state with the receiver.
	Clone() Store

	sealedStore()
}

// Result is the interpreted shape of a map function's return value. A Result
// is one of four shapes, built by the package constructors:
//
//   - Value[T]: unconditional overwrite of component T.
//   - Option[T]: overwrite if populated, delete if empty.
//   - All: apply each element left to right; later writes to the same
//     component type win.
//   - OneOf: apply only the selected branch.
//
// Shapes nest arbitrarily as long as every leaf resolves to a component type
// the world tracks.
type Result interface {
	apply(w *World, id EntityID)
}

// Shape describes a Result's structure without carrying values, so a world
// can reject a malformed result shape at assembly time, before any entity is
// processed. Built by ShapeOf, ShapeAll and ShapeOneOf.
type Shape interface {
	check(w *World) error
}
