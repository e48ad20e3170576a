package depot

import (
	"maps"
	"reflect"
)

var _ Store = &SparseStore[int]{}

// SparseStore is backed by a hash map. Memory is proportional to occupied
// entries only, making it the better fit for components held by few
// entities. EnsureCapacity is a no-op. The zero value is ready to use.
type SparseStore[T any] struct {
	items map[EntityID]T
}

func (s *SparseStore[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *SparseStore[T]) Exists(id EntityID) bool {
	_, ok := s.items[id]
	return ok
}

func (s *SparseStore[T]) getSafe(id EntityID) Option[T] {
	if v, ok := s.items[id]; ok {
		return Some(v)
	}
	return None[T]()
}

func (s *SparseStore[T]) getRequired(id EntityID) T {
	v, ok := s.items[id]
	if !ok {
		panic(ContractViolationError{Type: reflect.TypeFor[T](), ID: id})
	}
	return v
}

func (s *SparseStore[T]) set(id EntityID, v T) {
	if s.items == nil {
		s.items = make(map[EntityID]T)
	}
	s.items[id] = v
}

func (s *SparseStore[T]) Remove(id EntityID) {
	delete(s.items, id)
}

func (s *SparseStore[T]) EnsureCapacity(EntityID) {}

func (s *SparseStore[T]) Len() int {
	return len(s.items)
}

func (s *SparseStore[T]) Clone() Store {
	return &SparseStore[T]{items: maps.Clone(s.items)}
}

func (s *SparseStore[T]) sealedStore() {}
