package optref

import (
	"gopkg.microglot.org/types.go/internal/hardening"
	"gopkg.microglot.org/types.go/optional"
)

// A View is a read-only borrowed reference to a value of type T, obtained
// from Ref.ReadOnly. It can read and copy the referent but exposes no
// pointer to it, so a View cannot be used to mutate the referent or to
// smuggle its address back out. The zero value is empty.
type View[T any] struct {
	ref Ref[T]
}

// NoneView returns an empty View.
func NoneView[T any]() View[T] {
	return View[T]{}
}

// HasValue reports whether the View refers to a value.
func (v View[T]) HasValue() bool {
	return v.ref.ptr != nil
}

// Value returns a copy of the referent, or optional.ErrNoValue when the
// View is empty.
func (v View[T]) Value() (T, error) {
	return v.ref.Value()
}

// ValueOr returns a copy of the referent when present and def otherwise.
func (v View[T]) ValueOr(def T) T {
	return v.ref.ValueOr(def)
}

// Deref returns a copy of the referent. An empty View is handled by the
// hardening check, like Ref.Deref.
func (v View[T]) Deref() T {
	hardening.Assert(v.ref.ptr != nil, "optref: Deref of empty View")
	return *v.ref.ptr
}

// AsOptional copies the referent into a value-holding container. An empty
// View produces an empty Optional.
func (v View[T]) AsOptional() optional.Optional[T] {
	return v.ref.AsOptional()
}
