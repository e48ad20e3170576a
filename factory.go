package depot

type factory struct{}

var Factory factory

// NewWorld composes a world from per-type stores. The ordered store list is
// fixed for the world's lifetime; composing two stores for the same
// component type fails with DuplicateStoreError.
func (f factory) NewWorld(stores ...Store) (*World, error) {
	return newWorld(stores...)
}

// FactoryNewDenseStore returns an array-backed store for T.
func FactoryNewDenseStore[T any]() *DenseStore[T] {
	return &DenseStore[T]{}
}

// FactoryNewSparseStore returns a map-backed store for T.
func FactoryNewSparseStore[T any]() *SparseStore[T] {
	return &SparseStore[T]{items: make(map[EntityID]T)}
}

// FactoryNewTableStore returns a table-backed store for T.
func FactoryNewTableStore[T any]() *TableStore[T] {
	return newTableStore[T]()
}
