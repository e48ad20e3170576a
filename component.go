package depot

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// ComponentTag names a component type at runtime so requirement lists can be
// built without values. Tags can be used to create presence queries.
type ComponentTag struct {
	t reflect.Type
}

// Tag returns the tag for component type T. Tagging Option[T] yields a
// requirement that always matches, mirroring the optional map argument.
func Tag[T any]() ComponentTag {
	return ComponentTag{t: reflect.TypeFor[T]()}
}

// Type reports the tagged component type.
func (c ComponentTag) Type() reflect.Type {
	return c.t
}

// TagSet is an ordered component requirement list resolved once against a
// world. Duplicate tags are deduplicated through the set's mask; optional
// tags contribute no requirement.
type TagSet struct {
	required []Store
	mask     mask.Mask
}

// ResolveTags resolves tags into a TagSet, rejecting component types the
// world does not track. Resolve once at setup, then Matches per entity.
func (w *World) ResolveTags(tags ...ComponentTag) (TagSet, error) {
	var set TagSet
	for _, tag := range tags {
		if isOptionType(tag.t) {
			elem := optionElemType(tag.t)
			if _, ok := w.byType[elem]; !ok {
				return TagSet{}, UnknownComponentError{Type: elem}
			}
			// Optional requirements always match
			continue
		}
		idx, ok := w.byType[tag.t]
		if !ok {
			return TagSet{}, UnknownComponentError{Type: tag.t}
		}
		var bit mask.Mask
		bit.Mark(uint32(idx))
		if set.mask.ContainsAll(bit) {
			continue
		}
		set.mask.Mark(uint32(idx))
		set.required = append(set.required, w.stores[idx])
	}
	return set, nil
}

// Matches reports whether every required component is present for id.
func (ts TagSet) Matches(id EntityID) bool {
	for _, s := range ts.required {
		if !s.Exists(id) {
			return false
		}
	}
	return true
}

// Mask reports the set's resolved component bits, indexed by store position
// within the world that resolved it.
func (ts TagSet) Mask() mask.Mask {
	return ts.mask
}
