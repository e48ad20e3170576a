package depot

import "reflect"

// HasComponent reports whether id currently holds a T component. Requesting
// Option[T] always reports true for tracked T, since absence is itself a
// valid answer there.
func HasComponent[T any](w *World, id EntityID) bool {
	var probe T
	if opt, ok := any(probe).(optionalArg); ok {
		_, tracked := w.byType[opt.elemType()]
		return tracked
	}
	idx, ok := w.byType[reflect.TypeFor[T]()]
	return ok && w.stores[idx].Exists(id)
}

// GetSafe returns the current T component for id, or the empty Option.
// Panics if the world does not track T.
func GetSafe[T any](w *World, id EntityID) Option[T] {
	return mustStoreFor[T](w).getSafe(id)
}

// GetRequired returns the T component for id. Callers must establish
// presence first; a violating call panics with ContractViolationError.
func GetRequired[T any](w *World, id EntityID) T {
	return mustStoreFor[T](w).getRequired(id)
}

// AddComponent inserts or overwrites the T component for id. There is no
// precondition on prior existence. Panics if the world does not track T.
func AddComponent[T any](w *World, id EntityID, v T) {
	mustStoreFor[T](w).set(id, v)
}

// RemoveComponent deletes the T component for id; no-op if absent. Panics if
// the world does not track T.
func RemoveComponent[T any](w *World, id EntityID) {
	mustStoreFor[T](w).Remove(id)
}
