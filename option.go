package depot

import "reflect"

// Option holds a component value of type T or nothing. It serves three roles:
// the return type of GetSafe, a Result shape (populated means overwrite,
// empty means delete), and a map argument type that always matches so a
// function can read a component that may or may not exist.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrZero returns the held value, or the zero value of T when empty.
func (o Option[T]) OrZero() T {
	return o.value
}

// OrElse returns the held value, or fallback when empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// apply interprets the Option as a Result: populated overwrites the T
// component, empty removes it.
func (o Option[T]) apply(w *World, id EntityID) {
	s := mustStoreFor[T](w)
	if o.present {
		s.set(id, o.value)
	} else {
		s.Remove(id)
	}
}

// optionalArg is implemented by every Option instantiation. The map engine
// probes argument types against it so Option arguments always match and
// resolve through the safe read path.
type optionalArg interface {
	elemType() reflect.Type
	loadFrom(w *World, id EntityID) any
}

func (Option[T]) elemType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (Option[T]) loadFrom(w *World, id EntityID) any {
	return GetSafe[T](w, id)
}

var optionalArgType = reflect.TypeOf((*optionalArg)(nil)).Elem()

func isOptionType(t reflect.Type) bool {
	return t.Implements(optionalArgType)
}

func optionElemType(t reflect.Type) reflect.Type {
	return reflect.Zero(t).Interface().(optionalArg).elemType()
}
