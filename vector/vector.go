// Package vector provides Vector, a contiguous container with an explicit capacity.
//
// A Vector separates its capacity (slots that are allocated) from its count (slots that hold a
// live value). Slots in [Len(), Cap()) are never constructed: they are all zero bytes and no
// element hook (Copy, Destroy, Equal) ever sees them. Growing or shrinking the capacity moves
// live values without running hooks, and only values that fall outside a shrunken capacity are
// destroyed.
//
// Add() on a full Vector does nothing. A Vector never grows on its own, use Resize() or check
// with TryAdd().
//
// A Vector is not safe for concurrent use.
package vector

import (
	"fmt"
	"iter"

	"github.com/bearlytools/adt/elem"
	"github.com/bearlytools/adt/errors"
	"github.com/bearlytools/adt/internal/conversions"
)

// Vector is a fixed capacity array of values.
// Use New() or NewFunc() to create one, the zero value is not usable.
type Vector[T any] struct {
	traits elem.Traits[T]

	// storage has len == capacity. It is nil when capacity is 0.
	storage []T
	count   int
}

// New creates a new Vector with room for capacity values. Equality is ==, unless overridden with elem.WithEqual().
func New[T comparable](capacity int, options ...elem.Option[T]) *Vector[T] {
	v := &Vector[T]{traits: elem.Comparable(options...)}
	v.Init(capacity)
	return v
}

// NewFunc creates a new Vector with room for capacity values that uses equal for Remove() and Contains().
func NewFunc[T any](capacity int, equal func(a, b T) bool, options ...elem.Option[T]) *Vector[T] {
	v := &Vector[T]{traits: elem.Build(equal, options...)}
	v.Init(capacity)
	return v
}

// Init destroys all values, releases the storage and allocates new zeroed storage with room
// for capacity values. This panics if capacity is negative.
func (v *Vector[T]) Init(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("vector.Vector cannot have a negative capacity(%d)", capacity))
	}
	v.Destroy()
	if capacity > 0 {
		v.storage = make([]T, capacity)
	}
}

// Len returns the number of live values.
func (v *Vector[T]) Len() int {
	return v.count
}

// Cap returns the number of values the Vector can hold.
func (v *Vector[T]) Cap() int {
	return len(v.storage)
}

// Add copies item into the first free slot. If the Vector is full, this does nothing.
func (v *Vector[T]) Add(item T) {
	if v.count == len(v.storage) {
		return
	}
	v.storage[v.count] = v.traits.Copy(item)
	v.count++
}

// TryAdd is Add(), except it returns an error wrapping errors.ErrFull if the Vector is full.
func (v *Vector[T]) TryAdd(item T) error {
	if v.count == len(v.storage) {
		return errors.Full(len(v.storage))
	}
	v.Add(item)
	return nil
}

// Insert copies item into index position, shifting the values at and after position up one
// slot. If position is >= Len() or negative, this is the same as Add(). If the Vector is full,
// this does nothing.
func (v *Vector[T]) Insert(item T, position int) {
	if v.count == len(v.storage) {
		return
	}
	if position < 0 || position >= v.count {
		v.Add(item)
		return
	}
	copy(v.storage[position+1:v.count+1], v.storage[position:v.count])
	v.storage[position] = v.traits.Copy(item)
	v.count++
}

// RemoveAt destroys the value at index and shifts all values after it down one slot.
// If index is not a live value, this does nothing.
func (v *Vector[T]) RemoveAt(index int) {
	if index < 0 || index >= v.count {
		return
	}
	v.traits.Destroy(&v.storage[index])
	copy(v.storage[index:v.count-1], v.storage[index+1:v.count])
	v.count--
	clear(v.storage[v.count : v.count+1])
}

// TryRemoveAt is RemoveAt(), except it returns an error wrapping errors.ErrOutOfBounds
// instead of doing nothing.
func (v *Vector[T]) TryRemoveAt(index int) error {
	if index < 0 || index >= v.count {
		return errors.Bounds(index, v.count)
	}
	v.RemoveAt(index)
	return nil
}

// Remove removes the first value equal to item. If there is no such value, this does nothing.
func (v *Vector[T]) Remove(item T) {
	if i := v.Index(item); i >= 0 {
		v.RemoveAt(i)
	}
}

// Index returns the index of the first value equal to item, or -1.
func (v *Vector[T]) Index(item T) int {
	for i := 0; i < v.count; i++ {
		if v.traits.Equal(v.storage[i], item) {
			return i
		}
	}
	return -1
}

// Contains returns true if a value equal to item is in the Vector.
func (v *Vector[T]) Contains(item T) bool {
	return v.Index(item) >= 0
}

// Resize changes the capacity to capacity. Live values that fit are kept, values at index
// >= capacity are destroyed and Len() is clamped to capacity. This panics if capacity is negative.
func (v *Vector[T]) Resize(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("vector.Vector cannot have a negative capacity(%d)", capacity))
	}
	if capacity == len(v.storage) {
		return
	}

	if capacity < v.count {
		v.traits.DestroyAll(v.storage[capacity:v.count])
		clear(v.storage[capacity:v.count])
		v.count = capacity
	}

	var storage []T
	if capacity > 0 {
		storage = make([]T, capacity)
		copy(storage, v.storage[:v.count])
	}
	clear(v.storage)
	v.storage = storage
}

// Clear destroys all live values. The capacity is not changed.
func (v *Vector[T]) Clear() {
	v.traits.DestroyAll(v.storage[:v.count])
	clear(v.storage[:v.count])
	v.count = 0
}

// Destroy destroys all live values and releases the storage. Afterwards Cap() is 0 and the
// Vector can be reused with Init() or Resize().
func (v *Vector[T]) Destroy() {
	v.Clear()
	v.storage = nil
}

// Get returns the value at index. This panics if index is not a live value.
func (v *Vector[T]) Get(index int) T {
	return *v.Ref(index)
}

// Set replaces the value at index with a copy of value, destroying the previous value.
// This panics if index is not a live value.
func (v *Vector[T]) Set(index int, value T) {
	p := v.Ref(index)
	c := v.traits.Copy(value)
	v.traits.Destroy(p)
	*p = c
}

// Ref returns a pointer to the value at index. The pointer is only valid until the next
// operation that changes Len() or Cap(). This panics if index is not a live value.
func (v *Vector[T]) Ref(index int) *T {
	if index < 0 || index >= v.count {
		panic(fmt.Sprintf("vector.Vector with len %d cannot access index %d", v.count, index))
	}
	return &v.storage[index]
}

// TryGet is Get(), except it returns an error wrapping errors.ErrOutOfBounds instead of panicking.
func (v *Vector[T]) TryGet(index int) (T, error) {
	if index < 0 || index >= v.count {
		var zero T
		return zero, errors.Bounds(index, v.count)
	}
	return v.storage[index], nil
}

// All returns an iterator over the index and a reference to each live value.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, &v.storage[i]) {
				return
			}
		}
	}
}

// Traverse calls visit with every live value in index order.
func (v *Vector[T]) Traverse(visit func(item *T)) {
	for i := 0; i < v.count; i++ {
		visit(&v.storage[i])
	}
}

// Slice returns a copy of the live values. If there are none, this returns a nil slice.
func (v *Vector[T]) Slice() []T {
	if v.count == 0 {
		return nil
	}
	s := make([]T, v.count)
	copy(s, v.storage[:v.count])
	return s
}

// Clone returns a Vector with the same capacity holding copies of the live values.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{traits: v.traits}
	c.copyFrom(v)
	return c
}

// CopyFrom destroys the Vector's values and replaces them with copies of src's. The capacity
// becomes src.Cap().
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if src == v {
		return
	}
	v.Destroy()
	v.copyFrom(src)
}

// Move returns a Vector that owns v's storage. v is left with no storage and a capacity of 0.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{traits: v.traits}
	m.take(v)
	return m
}

// MoveFrom destroys the Vector's values and takes ownership of src's storage. src is left
// with no storage and a capacity of 0.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == v {
		return
	}
	v.Destroy()
	v.take(src)
}

// Check verifies the Vector's invariants, including that every slot outside the live range
// is all zero bytes. A non-nil error is always an errors.Error of type errors.TypeBug.
func (v *Vector[T]) Check() error {
	if v.count < 0 || v.count > len(v.storage) {
		return errors.Bug("vector: count %d outside of [0, %d]", v.count, len(v.storage))
	}
	if (v.storage == nil) != (len(v.storage) == 0) {
		return errors.Bug("vector: storage nil=%v with capacity %d", v.storage == nil, len(v.storage))
	}
	for i := v.count; i < len(v.storage); i++ {
		if !conversions.IsZero(v.storage[i : i+1]) {
			return errors.Bug("vector: slot %d is outside the live range but is not zeroed", i)
		}
	}
	return nil
}

func (v *Vector[T]) copyFrom(src *Vector[T]) {
	if len(src.storage) == 0 {
		return
	}
	v.storage = make([]T, len(src.storage))
	v.traits.CopyAll(v.storage, src.storage[:src.count])
	v.count = src.count
}

func (v *Vector[T]) take(src *Vector[T]) {
	v.storage, v.count = src.storage, src.count
	src.storage, src.count = nil, 0
}
