package depot

import "reflect"

// Shape descriptors let a caller validate an update function's declared
// result structure against a world at assembly time, before any entity is
// processed. This is the place where a variant's full alternative set is
// declared, since at apply time only the selected branch exists.

type leafShape struct {
	t reflect.Type
}

// ShapeOf returns the leaf shape for component type T. A leaf stands for
// both the plain-value and the Option result over T; both demand that the
// world can add and remove T.
func ShapeOf[T any]() Shape {
	t := reflect.TypeFor[T]()
	if isOptionType(t) {
		t = optionElemType(t)
	}
	return leafShape{t: t}
}

func (s leafShape) check(w *World) error {
	if _, ok := w.byType[s.t]; !ok {
		return MalformedShapeError{Type: s.t}
	}
	return nil
}

type groupShape struct {
	elems []Shape
}

// ShapeAll returns the shape of an All result over the element shapes.
func ShapeAll(elems ...Shape) Shape {
	return groupShape{elems: elems}
}

func (s groupShape) check(w *World) error {
	for _, elem := range s.elems {
		if err := elem.check(w); err != nil {
			return err
		}
	}
	return nil
}

type choiceShape struct {
	alternatives []Shape
}

// ShapeOneOf returns the shape of a OneOf result. Every declared alternative
// must resolve, not just the branch that happens to be selected at runtime.
func ShapeOneOf(alternatives ...Shape) Shape {
	return choiceShape{alternatives: alternatives}
}

func (s choiceShape) check(w *World) error {
	for _, alt := range s.alternatives {
		if err := alt.check(w); err != nil {
			return err
		}
	}
	return nil
}

// CheckShape reports whether every leaf of the shape resolves to a component
// type this world tracks. A non-nil error means a map function returning
// results of this shape would hit an untracked store.
func (w *World) CheckShape(s Shape) error {
	return s.check(w)
}
