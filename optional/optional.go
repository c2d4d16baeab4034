// Package optional provides a generic container for values that may be
// absent. The zero value of Optional is empty.
package optional

type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the contained value without checking for presence. When the
// Optional is empty this is the zero value of T. Use Get or IsPresent when
// the zero value of T is meaningful.
func (self Optional[T]) Value() T {
	return self.value
}

// Get returns the contained value, or ErrNoValue when the Optional is empty.
func (self Optional[T]) Get() (T, error) {
	if !self.present {
		var zero T
		return zero, ErrNoValue
	}
	return self.value, nil
}

// ValueOr returns the contained value when present and def otherwise.
func (self Optional[T]) ValueOr(def T) T {
	if !self.present {
		return def
	}
	return self.value
}

// Ptr returns the address of the contained value, or nil when the Optional
// is empty. The pointer aliases the Optional's own storage so writes through
// it modify the contained value in place. The receiver must be addressable.
func (self *Optional[T]) Ptr() *T {
	if !self.present {
		return nil
	}
	return &self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr copies the pointee into a new Optional. A nil pointer produces an
// empty Optional.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

// Map converts an Optional[T] into an Optional[U] by applying f to the
// contained value. An empty input produces an empty output and f is not
// called.
func Map[T any, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
