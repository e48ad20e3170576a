package depot

// The map engine is a single deterministic synchronous pass: ascending id
// order over [0, MaxID()), no early exit, cost O(MaxID) regardless of match
// density. The iteration bound is read once at the head of the pass, so an
// update function must not allocate entities on the world it is currently
// mapped over; a mid-pass allocation would not be visited.
//
// Argument access is resolved once per call: each declared argument type
// becomes a presence check plus a read. Option arguments always match and
// read through the safe path; plain arguments require presence and read
// through the required path, which the presence filter has already proven
// safe.

type argAccessor[T any] struct {
	matches func(id EntityID) bool
	read    func(id EntityID) T
}

func accessFor[T any](w *World) (argAccessor[T], error) {
	var probe T
	if opt, ok := any(probe).(optionalArg); ok {
		if _, tracked := w.byType[opt.elemType()]; !tracked {
			return argAccessor[T]{}, UnknownComponentError{Type: opt.elemType()}
		}
		return argAccessor[T]{
			matches: func(EntityID) bool { return true },
			read:    func(id EntityID) T { return opt.loadFrom(w, id).(T) },
		}, nil
	}
	s, err := storeFor[T](w)
	if err != nil {
		return argAccessor[T]{}, err
	}
	return argAccessor[T]{matches: s.Exists, read: s.getRequired}, nil
}

// Map1 invokes fn for every entity holding an A component, in ascending id
// order, and applies the returned result shape back through SetMapResult.
func Map1[A any](w *World, fn func(A) Result) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) {
			continue
		}
		w.SetMapResult(id, fn(a.read(id)))
	}
	return nil
}

// Map2 is Map1 over entities holding both declared components.
func Map2[A, B any](w *World, fn func(A, B) Result) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	b, err := accessFor[B](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) || !b.matches(id) {
			continue
		}
		w.SetMapResult(id, fn(a.read(id), b.read(id)))
	}
	return nil
}

// Map3 is Map1 over entities holding all three declared components.
func Map3[A, B, C any](w *World, fn func(A, B, C) Result) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	b, err := accessFor[B](w)
	if err != nil {
		return err
	}
	c, err := accessFor[C](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) || !b.matches(id) || !c.matches(id) {
			continue
		}
		w.SetMapResult(id, fn(a.read(id), b.read(id), c.read(id)))
	}
	return nil
}

// Map4 is Map1 over entities holding all four declared components.
func Map4[A, B, C, D any](w *World, fn func(A, B, C, D) Result) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	b, err := accessFor[B](w)
	if err != nil {
		return err
	}
	c, err := accessFor[C](w)
	if err != nil {
		return err
	}
	d, err := accessFor[D](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) || !b.matches(id) || !c.matches(id) || !d.matches(id) {
			continue
		}
		w.SetMapResult(id, fn(a.read(id), b.read(id), c.read(id), d.read(id)))
	}
	return nil
}

// Each1 shares Map1's filter and ordering but performs no write-back.
// Intended for read-only observation such as reporting.
func Each1[A any](w *World, fn func(A)) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) {
			continue
		}
		fn(a.read(id))
	}
	return nil
}

// Each2 is the two-component read-only pass.
func Each2[A, B any](w *World, fn func(A, B)) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	b, err := accessFor[B](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) || !b.matches(id) {
			continue
		}
		fn(a.read(id), b.read(id))
	}
	return nil
}

// Each3 is the three-component read-only pass.
func Each3[A, B, C any](w *World, fn func(A, B, C)) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	b, err := accessFor[B](w)
	if err != nil {
		return err
	}
	c, err := accessFor[C](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) || !b.matches(id) || !c.matches(id) {
			continue
		}
		fn(a.read(id), b.read(id), c.read(id))
	}
	return nil
}

// Each4 is the four-component read-only pass.
func Each4[A, B, C, D any](w *World, fn func(A, B, C, D)) error {
	a, err := accessFor[A](w)
	if err != nil {
		return err
	}
	b, err := accessFor[B](w)
	if err != nil {
		return err
	}
	c, err := accessFor[C](w)
	if err != nil {
		return err
	}
	d, err := accessFor[D](w)
	if err != nil {
		return err
	}
	bound := w.MaxID()
	for id := EntityID(0); id < bound; id++ {
		if !a.matches(id) || !b.matches(id) || !c.matches(id) || !d.matches(id) {
			continue
		}
		fn(a.read(id), b.read(id), c.read(id), d.read(id))
	}
	return nil
}
