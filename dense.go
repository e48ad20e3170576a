package depot

import "reflect"

var _ Store = &DenseStore[int]{}

// DenseStore is backed by a growable slice of optional slots. Access is O(1)
// and iteration is cache-friendly, but memory is proportional to the highest
// id ever allocated regardless of occupancy.
type DenseStore[T any] struct {
	slots    []Option[T]
	occupied int
}

func (s *DenseStore[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *DenseStore[T]) Exists(id EntityID) bool {
	if id < 0 || int(id) >= len(s.slots) {
		return false
	}
	return s.slots[id].present
}

func (s *DenseStore[T]) getSafe(id EntityID) Option[T] {
	if id < 0 || int(id) >= len(s.slots) {
		return None[T]()
	}
	return s.slots[id]
}

func (s *DenseStore[T]) getRequired(id EntityID) T {
	if !s.Exists(id) {
		panic(ContractViolationError{Type: reflect.TypeFor[T](), ID: id})
	}
	return s.slots[id].value
}

func (s *DenseStore[T]) set(id EntityID, v T) {
	s.EnsureCapacity(id)
	if !s.slots[id].present {
		s.occupied++
	}
	s.slots[id] = Some(v)
}

func (s *DenseStore[T]) Remove(id EntityID) {
	if id < 0 || int(id) >= len(s.slots) {
		return
	}
	if s.slots[id].present {
		s.occupied--
	}
	s.slots[id] = None[T]()
}

func (s *DenseStore[T]) EnsureCapacity(id EntityID) {
	needed := int(id) + 1
	if needed <= len(s.slots) {
		return
	}
	if cap(s.slots) < needed {
		// Grow by doubling or extending to fit, whichever is larger
		newCap := max(needed, 2*cap(s.slots))
		grown := make([]Option[T], len(s.slots), newCap)
		copy(grown, s.slots)
		s.slots = grown
	}
	s.slots = s.slots[:needed]
}

func (s *DenseStore[T]) Len() int {
	return s.occupied
}

func (s *DenseStore[T]) Clone() Store {
	slots := make([]Option[T], len(s.slots))
	copy(slots, s.slots)
	return &DenseStore[T]{slots: slots, occupied: s.occupied}
}

func (s *DenseStore[T]) sealedStore() {}
