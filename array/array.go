// Package array provides Array, a thin owned buffer of constructed values.
//
// Every slot of an Array holds a constructed value. New(), Init() and Resize() default
// construct new slots with the New hook given by elem.WithNew() (the zero value by default).
// Indexing is not checked beyond Go's own bounds checks: the caller guarantees the index is in
// range, unlike list.List and vector.Vector.
//
// An Array is not safe for concurrent use.
package array

import (
	"fmt"
	"iter"

	"github.com/bearlytools/adt/elem"
)

// Array is an owned, resizable buffer. Use New() to create one, the zero value is not usable.
type Array[T any] struct {
	traits elem.Traits[T]

	// data is nil when the length is 0.
	data []T
}

// New creates an Array holding size default constructed values. This panics if size is negative.
func New[T any](size int, options ...elem.Option[T]) *Array[T] {
	a := &Array[T]{traits: elem.Build[T](nil, options...)}
	a.Init(size)
	return a
}

// Init destroys and releases the current values and replaces them with size default
// constructed values. This panics if size is negative.
func (a *Array[T]) Init(size int) {
	if size < 0 {
		panic(fmt.Sprintf("array.Array cannot have a negative size(%d)", size))
	}
	a.Destroy()
	if size > 0 {
		a.data = make([]T, size)
		a.traits.Construct(a.data)
	}
}

// Len returns the number of values.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Resize changes the length to size. Values at index < min(size, Len()) are kept as they are.
// New slots are default constructed and values at index >= size are destroyed.
// This panics if size is negative.
func (a *Array[T]) Resize(size int) {
	if size < 0 {
		panic(fmt.Sprintf("array.Array cannot have a negative size(%d)", size))
	}
	if size == len(a.data) {
		return
	}

	var data []T
	if size > 0 {
		data = make([]T, size)
		n := copy(data, a.data)
		a.traits.Construct(data[n:])
	}
	if size < len(a.data) {
		a.traits.DestroyAll(a.data[size:])
	}
	clear(a.data)
	a.data = data
}

// Get returns the value at index.
func (a *Array[T]) Get(index int) T {
	return a.data[index]
}

// Set replaces the value at index with a copy of value, destroying the previous value.
func (a *Array[T]) Set(index int, value T) {
	c := a.traits.Copy(value)
	a.traits.Destroy(&a.data[index])
	a.data[index] = c
}

// Ref returns a pointer to the value at index. It is valid until the next Init(), Resize(),
// Move() or Destroy().
func (a *Array[T]) Ref(index int) *T {
	return &a.data[index]
}

// Data returns the owned buffer. Changes to it change the Array.
func (a *Array[T]) Data() []T {
	return a.data
}

// Traverse calls visit with every value in index order.
func (a *Array[T]) Traverse(visit func(item *T)) {
	for i := range a.data {
		visit(&a.data[i])
	}
}

// All returns an iterator over the index and a reference to each value.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range a.data {
			if !yield(i, &a.data[i]) {
				return
			}
		}
	}
}

// Clone returns an Array of the same length holding copies of each value.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{traits: a.traits}
	c.copyFrom(a)
	return c
}

// CopyFrom destroys the Array's values and replaces them with copies of src's.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if src == a {
		return
	}
	a.Destroy()
	a.copyFrom(src)
}

// Move returns an Array that owns a's buffer. a is left with a length of 0.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{traits: a.traits}
	m.data, a.data = a.data, nil
	return m
}

// MoveFrom destroys the Array's values and takes ownership of src's buffer. src is left with
// a length of 0.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if src == a {
		return
	}
	a.Destroy()
	a.data, src.data = src.data, nil
}

// Destroy destroys every value and releases the buffer. Calling Destroy() on an empty Array
// does nothing.
func (a *Array[T]) Destroy() {
	a.traits.DestroyAll(a.data)
	clear(a.data)
	a.data = nil
}

func (a *Array[T]) copyFrom(src *Array[T]) {
	if len(src.data) == 0 {
		return
	}
	a.data = make([]T, len(src.data))
	a.traits.CopyAll(a.data, src.data)
}
