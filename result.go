package depot

// The four result shapes are interpreted here, one apply rule per shape, so
// the overwrite/delete/multi-write/single-branch semantics live centrally
// rather than at call sites. Option's apply rule is with the Option type.

type scalarResult[T any] struct {
	value T
}

// Value returns a Result that unconditionally overwrites (or adds) the T
// component of the mapped entity.
func Value[T any](v T) Result {
	return scalarResult[T]{value: v}
}

func (r scalarResult[T]) apply(w *World, id EntityID) {
	mustStoreFor[T](w).set(id, r.value)
}

type tupleResult struct {
	elems []Result
}

// All returns a Result applying each element in declared left-to-right
// order. Two elements targeting the same component type are permitted; the
// later one wins, at the cost of the redundant earlier write.
func All(results ...Result) Result {
	return tupleResult{elems: results}
}

func (r tupleResult) apply(w *World, id EntityID) {
	for _, elem := range r.elems {
		if elem != nil {
			elem.apply(w, id)
		}
	}
}

type variantResult struct {
	selected Result
}

// OneOf returns a Result applying only the selected branch of a declared
// alternative set. Non-selected alternatives are untouched no-ops; in
// particular they are never implicitly cleared. Declare the full alternative
// set with ShapeOneOf when validating shapes up front.
func OneOf(selected Result) Result {
	return variantResult{selected: selected}
}

func (r variantResult) apply(w *World, id EntityID) {
	if r.selected != nil {
		r.selected.apply(w, id)
	}
}
