// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optref provides a nullable borrowed reference: a one-word value
// that either refers to an object owned elsewhere or refers to nothing.
//
// A Ref is for APIs that accept "maybe a reference to a value" without
// making callers copy the value into an optional.Optional and without
// overloading the meaning of a raw nil pointer. It can be constructed in
// the following ways:
//
//	r := optref.None[T]()           // empty, same as the zero value Ref[T]{}
//	v := ...
//	r := optref.New(&v)             // refers to v
//	r := optref.New(p)              // refers to *p, empty when p is nil
//	o := optional.Some(...)
//	r := optref.FromOptional(&o)    // refers to the contained value
//	r := optref.Index(s, i)         // refers to s[i], empty when out of range
//	w := optref.Widen(r, upcast)    // same referent under a wider type
//
// Note that optref.New(nil) does not compile: an untyped nil carries no
// element type to infer. Use None to express absence.
//
// A Ref never owns its referent and must not outlive it. It is a single
// word, is passed by value, and cannot be rebound after construction.
// There is deliberately no boolean conversion; use HasValue.
//
// The == operator on Ref values compares stored addresses, which is the
// same shallow identity AsPointer exposes. Use Equal, EqualValue, or
// EqualFunc to compare referents by value.
package optref

import (
	"gopkg.microglot.org/types.go/internal/hardening"
	"gopkg.microglot.org/types.go/optional"
)

// A Ref is a nullable borrowed reference to a value of type T. The zero
// value is empty. Copying a Ref duplicates the stored address only and
// never invokes any behavior of the referent.
type Ref[T any] struct {
	ptr *T
}

// New returns a Ref to the pointee. A nil pointer produces an empty Ref,
// so a typed nil is the caller saying "nothing" in pointer form. To refer
// to a variable, pass its address: New(&v).
func New[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// None returns an empty Ref.
func None[T any]() Ref[T] {
	return Ref[T]{}
}

// FromOptional returns a Ref to the value held by o, without copying it.
// An empty or nil container produces an empty Ref. The container is taken
// by pointer so the Ref aliases the container's own storage; it is invalid
// after the container goes away.
func FromOptional[T any](o *optional.Optional[T]) Ref[T] {
	if o == nil {
		return Ref[T]{}
	}
	return Ref[T]{ptr: o.Ptr()}
}

// Index returns a Ref to s[i], or an empty Ref when i is out of range.
// The Ref points into the slice's backing array; growing the slice may
// leave the Ref referring to the old array.
func Index[T any](s []T, i int) Ref[T] {
	if i < 0 || i >= len(s) {
		return Ref[T]{}
	}
	return Ref[T]{ptr: &s[i]}
}

// Widen converts a Ref[T] into a Ref[U] viewing the same referent. up is
// called only when r is non-empty and must be address-preserving: it
// returns a pointer aliasing the same referent, such as a pointer to an
// embedded field. The inverse narrowing has no counterpart here.
//
//	base := optref.Widen(dref, func(d *Derived) *Base { return &d.Base })
func Widen[T any, U any](r Ref[T], up func(*T) *U) Ref[U] {
	if r.ptr == nil {
		return Ref[U]{}
	}
	return Ref[U]{ptr: up(r.ptr)}
}

// HasValue reports whether the Ref refers to a value.
func (r Ref[T]) HasValue() bool {
	return r.ptr != nil
}

// Value returns a copy of the referent, or optional.ErrNoValue when the
// Ref is empty. This is the same error the container's checked accessor
// reports, and the recoverable counterpart of Deref.
func (r Ref[T]) Value() (T, error) {
	if r.ptr == nil {
		var zero T
		return zero, optional.ErrNoValue
	}
	return *r.ptr, nil
}

// ValueOr returns a copy of the referent when present and def otherwise.
func (r Ref[T]) ValueOr(def T) T {
	if r.ptr == nil {
		return def
	}
	return *r.ptr
}

// Deref returns a copy of the referent. The emptiness precondition is
// enforced by the hardening check: an empty Ref traps, asserts, or falls
// through to the runtime's nil dereference depending on the build mode.
func (r Ref[T]) Deref() T {
	hardening.Assert(r.ptr != nil, "optref: Deref of empty Ref")
	return *r.ptr
}

// Ptr returns a pointer to the referent for member access and mutation.
// The emptiness precondition is enforced the same way as Deref.
func (r Ref[T]) Ptr() *T {
	hardening.Assert(r.ptr != nil, "optref: Ptr of empty Ref")
	return r.ptr
}

// AsPointer returns the stored address verbatim, nil when empty. This is
// the explicit escape hatch for pointer identity.
func (r Ref[T]) AsPointer() *T {
	return r.ptr
}

// AsOptional copies the referent into a value-holding container. An empty
// Ref produces an empty Optional. This is the one operation here that
// copies the referent, and it only happens when asked for.
func (r Ref[T]) AsOptional() optional.Optional[T] {
	if r.ptr == nil {
		return optional.None[T]()
	}
	return optional.Some(*r.ptr)
}

// ReadOnly converts the Ref into a View of the same referent. This is the
// widening from a mutable reference to a read-only one; nothing converts a
// View back.
func (r Ref[T]) ReadOnly() View[T] {
	return View[T]{ref: r}
}
