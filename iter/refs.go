// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"context"

	"gopkg.microglot.org/types.go/optional"
	"gopkg.microglot.org/types.go/optref"
)

// RefIterator is the by-reference counterpart of Iterator. Next yields a
// borrowed reference to each element rather than a copy; an empty Ref
// marks exhaustion.
type RefIterator[T any] interface {
	Next(ctx context.Context) optref.Ref[T]
	Closer
}

// NewSliceRefs iterates a slice by reference. Each yielded Ref points into
// the slice's backing array, so elements are never copied and callers may
// mutate them in place through Ref.Ptr.
func NewSliceRefs[T any](vs []T) RefIterator[T] {
	return &sliceRefs[T]{slice: vs, offset: -1}
}

type sliceRefs[T any] struct {
	slice  []T
	offset int
}

func (it *sliceRefs[T]) Next(ctx context.Context) optref.Ref[T] {
	it.offset = it.offset + 1
	return optref.Index(it.slice, it.offset)
}

func (it *sliceRefs[T]) Close(ctx context.Context) error {
	return nil
}

// NewRefValues converts a RefIterator into a value Iterator by copying
// each referent out at yield time, so by-reference sources compose with
// the value-based combinators like NewLookahead and NewIteratorFilter.
func NewRefValues[T any](it RefIterator[T]) Iterator[T] {
	return &refValues[T]{iter: it}
}

type refValues[T any] struct {
	iter RefIterator[T]
}

func (it *refValues[T]) Next(ctx context.Context) optional.Optional[T] {
	return it.iter.Next(ctx).AsOptional()
}

func (it *refValues[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewRefFilter wraps a RefIterator with a filter so that only referents
// that pass the filter are yielded. The filter reads elements through a
// read-only View.
func NewRefFilter[T any](it RefIterator[T], f Filter[optref.View[T]]) RefIterator[T] {
	return &refFilter[T]{
		iter:   it,
		filter: f,
	}
}

type refFilter[T any] struct {
	iter   RefIterator[T]
	filter Filter[optref.View[T]]
}

func (it *refFilter[T]) Next(ctx context.Context) optref.Ref[T] {
	for {
		r := it.iter.Next(ctx)
		if !r.HasValue() {
			return r
		}
		if it.filter.Keep(ctx, r.ReadOnly()) {
			return r
		}
	}
}

func (it *refFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}
