package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

var _ Store = &TableStore[int]{}

// TableStore satisfies the store contract on top of the table storage
// engine. Each store owns a single-element-type table plus a side index from
// EntityID to table entry id. Deleting a row swap-removes it, which moves
// another row into its slot, so entry values must never be cached: every
// access re-fetches the current entry from the store's entry index.
//
// The zero value is not usable; construct through FactoryNewTableStore.
type TableStore[T any] struct {
	schema   table.Schema
	elem     table.ElementType
	accessor table.Accessor[T]
	index    table.EntryIndex
	tbl      table.Table
	ids      map[EntityID]int
}

func newTableStore[T any]() *TableStore[T] {
	iden := table.FactoryNewElementType[T]()
	schema := table.Factory.NewSchema()
	index := table.Factory.NewEntryIndex()
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(index).
		WithElementTypes(iden).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		// A single-type table can only fail to build on broken schema
		// wiring, which is a bug in this package
		panic(err)
	}
	return &TableStore[T]{
		schema:   schema,
		elem:     iden,
		accessor: table.FactoryNewAccessor[T](iden),
		index:    index,
		tbl:      tbl,
		ids:      make(map[EntityID]int),
	}
}

// entry re-fetches the live entry for a table entry id. Entry ids are
// 1-based within the store's index.
func (s *TableStore[T]) entry(entryID int) table.Entry {
	entry, err := s.index.Entry(entryID - 1)
	if err != nil {
		panic(err)
	}
	return entry
}

func (s *TableStore[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *TableStore[T]) Exists(id EntityID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *TableStore[T]) getSafe(id EntityID) Option[T] {
	entryID, ok := s.ids[id]
	if !ok {
		return None[T]()
	}
	return Some(*s.accessor.Get(s.entry(entryID).Index(), s.tbl))
}

func (s *TableStore[T]) getRequired(id EntityID) T {
	entryID, ok := s.ids[id]
	if !ok {
		panic(ContractViolationError{Type: reflect.TypeFor[T](), ID: id})
	}
	return *s.accessor.Get(s.entry(entryID).Index(), s.tbl)
}

func (s *TableStore[T]) set(id EntityID, v T) {
	if entryID, ok := s.ids[id]; ok {
		*s.accessor.Get(s.entry(entryID).Index(), s.tbl) = v
		return
	}
	created, err := s.tbl.NewEntries(1)
	if err != nil {
		panic(err)
	}
	entry := created[0]
	s.ids[id] = int(entry.ID())
	*s.accessor.Get(entry.Index(), s.tbl) = v
}

func (s *TableStore[T]) Remove(id EntityID) {
	entryID, ok := s.ids[id]
	if !ok {
		return
	}
	// DeleteEntries takes the row index, not the entry id
	if _, err := s.tbl.DeleteEntries(s.entry(entryID).Index()); err != nil {
		panic(err)
	}
	delete(s.ids, id)
}

func (s *TableStore[T]) EnsureCapacity(EntityID) {}

func (s *TableStore[T]) Len() int {
	return len(s.ids)
}

// Clone rebuilds a fresh table and re-inserts every held value. Entries are
// re-allocated, so the copy shares no table state with the receiver.
func (s *TableStore[T]) Clone() Store {
	fresh := newTableStore[T]()
	for id, entryID := range s.ids {
		fresh.set(id, *s.accessor.Get(s.entry(entryID).Index(), s.tbl))
	}
	return fresh
}

func (s *TableStore[T]) sealedStore() {}
