package optref

// Equal reports whether a and b are both empty or both refer to equal
// values. The comparison is by value, never by address: two Refs to
// distinct variables holding the same value are Equal, and a Ref is never
// Equal to an empty one.
func Equal[T comparable](a Ref[T], b Ref[T]) bool {
	if a.ptr == nil || b.ptr == nil {
		return a.ptr == nil && b.ptr == nil
	}
	return *a.ptr == *b.ptr
}

// EqualValue reports whether r refers to a value equal to v. An empty Ref
// compares unequal to every value.
func EqualValue[T comparable](r Ref[T], v T) bool {
	return r.ptr != nil && *r.ptr == v
}

// EqualFunc is Equal with a caller-supplied comparison, for element types
// that are not comparable or that live on different types. Both-empty is
// true and eq is only called when both sides are present.
func EqualFunc[T any, U any](a Ref[T], b Ref[U], eq func(T, U) bool) bool {
	if a.ptr == nil || b.ptr == nil {
		return a.ptr == nil && b.ptr == nil
	}
	return eq(*a.ptr, *b.ptr)
}

// EqualView is Equal for read-only references.
func EqualView[T comparable](a View[T], b View[T]) bool {
	return Equal(a.ref, b.ref)
}

// EqualViewValue is EqualValue for read-only references.
func EqualViewValue[T comparable](v View[T], x T) bool {
	return EqualValue(v.ref, x)
}

// EqualViewFunc is EqualFunc for read-only references.
func EqualViewFunc[T any, U any](a View[T], b View[U], eq func(T, U) bool) bool {
	return EqualFunc(a.ref, b.ref, eq)
}
