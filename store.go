package depot

import "reflect"

// typedStore is the typed half of the store contract. Every backend
// implements it alongside Store; the world's dispatch table asserts down to
// it when routing typed access.
type typedStore[T any] interface {
	Store
	getSafe(id EntityID) Option[T]
	getRequired(id EntityID) T
	set(id EntityID, v T)
}

func storeFor[T any](w *World) (typedStore[T], error) {
	t := reflect.TypeFor[T]()
	idx, ok := w.byType[t]
	if !ok {
		return nil, UnknownComponentError{Type: t}
	}
	return w.stores[idx].(typedStore[T]), nil
}

// mustStoreFor panics on an untracked component type. World composition is
// fixed at construction, so reaching an untracked type is a programmer
// error, not a runtime condition.
func mustStoreFor[T any](w *World) typedStore[T] {
	s, err := storeFor[T](w)
	if err != nil {
		panic(err)
	}
	return s
}
