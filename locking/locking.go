// Package locking combines the containers in this module with lock.Primitive.
//
// Each type here embeds a container and a lock.Primitive. The container's methods are promoted
// unchanged and no method takes the lock on its own: callers bracket their calls with
// Lock()/Unlock() or SpinLock()/SpinUnlock() as they see fit.
//
//	l := locking.NewList[string]()
//	l.Lock()
//	l.Add("hello")
//	l.Unlock()
//
// Clone() and Move() return a value with a new, unlocked lock.Primitive no matter what state the
// source's locks are in. Do not copy these types by value, use Clone() or Move().
package locking

import (
	"github.com/bearlytools/adt/array"
	"github.com/bearlytools/adt/elem"
	"github.com/bearlytools/adt/list"
	"github.com/bearlytools/adt/lock"
	"github.com/bearlytools/adt/vector"
)

// Locker is implemented by every type in this package.
type Locker interface {
	Lock()
	Unlock()
	SpinLock()
	SpinUnlock()
}

var (
	_ Locker = (*List[int])(nil)
	_ Locker = (*Vector[int])(nil)
	_ Locker = (*Array[int])(nil)
)

// List is a list.List with lock primitives.
type List[T any] struct {
	*list.List[T]
	lock.Primitive
}

// NewList creates a List for comparable types.
func NewList[T comparable](options ...elem.Option[T]) *List[T] {
	return WrapList(list.New(options...))
}

// NewListFunc creates a List that uses equal for Remove() and Contains().
func NewListFunc[T any](equal func(a, b T) bool, options ...elem.Option[T]) *List[T] {
	return WrapList(list.NewFunc(equal, options...))
}

// WrapList returns a List that owns l. l should not be used directly afterwards.
func WrapList[T any](l *list.List[T]) *List[T] {
	return &List[T]{List: l}
}

// Clone returns a deep copy of the list with unlocked lock primitives.
func (l *List[T]) Clone() *List[T] {
	return WrapList(l.List.Clone())
}

// Move returns a List with unlocked lock primitives that owns all of l's items. l is left empty.
func (l *List[T]) Move() *List[T] {
	return WrapList(l.List.Move())
}

// CopyFrom replaces the items with copies of src's items. Neither lock primitive is changed.
func (l *List[T]) CopyFrom(src *List[T]) {
	l.List.CopyFrom(src.List)
}

// MoveFrom replaces the items with src's items, leaving src empty. Neither lock primitive is changed.
func (l *List[T]) MoveFrom(src *List[T]) {
	l.List.MoveFrom(src.List)
}

// Vector is a vector.Vector with lock primitives.
type Vector[T any] struct {
	*vector.Vector[T]
	lock.Primitive
}

// NewVector creates a Vector for comparable types with room for capacity values.
func NewVector[T comparable](capacity int, options ...elem.Option[T]) *Vector[T] {
	return WrapVector(vector.New(capacity, options...))
}

// NewVectorFunc creates a Vector with room for capacity values that uses equal for Remove() and Contains().
func NewVectorFunc[T any](capacity int, equal func(a, b T) bool, options ...elem.Option[T]) *Vector[T] {
	return WrapVector(vector.NewFunc(capacity, equal, options...))
}

// WrapVector returns a Vector that owns v. v should not be used directly afterwards.
func WrapVector[T any](v *vector.Vector[T]) *Vector[T] {
	return &Vector[T]{Vector: v}
}

// Clone returns a copy of the Vector with unlocked lock primitives.
func (v *Vector[T]) Clone() *Vector[T] {
	return WrapVector(v.Vector.Clone())
}

// Move returns a Vector with unlocked lock primitives that owns v's storage. v is left with a capacity of 0.
func (v *Vector[T]) Move() *Vector[T] {
	return WrapVector(v.Vector.Move())
}

// CopyFrom replaces the values with copies of src's values. Neither lock primitive is changed.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	v.Vector.CopyFrom(src.Vector)
}

// MoveFrom takes src's storage. Neither lock primitive is changed.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.Vector.MoveFrom(src.Vector)
}

// Array is an array.Array with lock primitives.
type Array[T any] struct {
	*array.Array[T]
	lock.Primitive
}

// NewArray creates an Array holding size default constructed values.
func NewArray[T any](size int, options ...elem.Option[T]) *Array[T] {
	return WrapArray(array.New(size, options...))
}

// WrapArray returns an Array that owns a. a should not be used directly afterwards.
func WrapArray[T any](a *array.Array[T]) *Array[T] {
	return &Array[T]{Array: a}
}

// Clone returns a copy of the Array with unlocked lock primitives.
func (a *Array[T]) Clone() *Array[T] {
	return WrapArray(a.Array.Clone())
}

// Move returns an Array with unlocked lock primitives that owns a's buffer. a is left with a length of 0.
func (a *Array[T]) Move() *Array[T] {
	return WrapArray(a.Array.Move())
}

// CopyFrom replaces the values with copies of src's values. Neither lock primitive is changed.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	a.Array.CopyFrom(src.Array)
}

// MoveFrom takes src's buffer. Neither lock primitive is changed.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	a.Array.MoveFrom(src.Array)
}
