// Package list provides List, a singly linked list that owns its elements.
//
// A List owns every node in its head to tail chain exclusively. Each node is reachable from
// exactly one predecessor, or from the List itself if it is the head. Copying a List with
// Clone() or CopyFrom() copies every element, so the copy and the original never share nodes.
// Move() and MoveFrom() transfer the chain and leave the source empty.
//
// Structural changes (Add, Insert, Remove, RemoveAt, Clear, Move, MoveFrom, CopyFrom) invalidate
// any iteration that is in progress. An iteration from All(), Values() or Traverse() that
// observes such a change panics with an errors.Error of type errors.TypeModified.
//
// A List is not safe for concurrent use. See the locking package for a List that carries
// its own lock primitives.
package list

import (
	"fmt"
	"iter"

	"github.com/bearlytools/adt/elem"
	"github.com/bearlytools/adt/errors"
)

type node[T any] struct {
	data T
	next *node[T]
}

// List is a singly linked list with O(1) append and O(n) positional access.
// Use New() or NewFunc() to create one, the zero value is not usable.
type List[T any] struct {
	traits elem.Traits[T]

	count int
	head  *node[T]
	tail  *node[T]

	// mods is incremented on every structural change.
	mods uint64
}

// New creates a new List for comparable types. Equality is ==, unless overridden with elem.WithEqual().
func New[T comparable](options ...elem.Option[T]) *List[T] {
	return &List[T]{traits: elem.Comparable(options...)}
}

// NewFunc creates a new List that uses equal for Remove() and Contains().
func NewFunc[T any](equal func(a, b T) bool, options ...elem.Option[T]) *List[T] {
	return &List[T]{traits: elem.Build(equal, options...)}
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	return l.count
}

// Add appends a copy of item to the end of the list.
func (l *List[T]) Add(item T) {
	l.push(&node[T]{data: l.traits.Copy(item)})
}

// Insert inserts a copy of item so that it is at index position. If position is >= Len()
// or negative, this is the same as Add().
func (l *List[T]) Insert(item T, position int) {
	if position < 0 || position >= l.count {
		l.Add(item)
		return
	}

	n := &node[T]{data: l.traits.Copy(item)}
	if position == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.nodeAt(position - 1)
		n.next = prev.next
		prev.next = n
	}
	l.count++
	l.mods++
}

// Remove removes the first item that is equal to item. If there is no such item, this does nothing.
func (l *List[T]) Remove(item T) {
	var prev *node[T]
	for n := l.head; n != nil; n = n.next {
		if l.traits.Equal(n.data, item) {
			l.unlink(prev, n)
			return
		}
		prev = n
	}
}

// RemoveAt removes the item at index. If index is not in the list, this does nothing.
func (l *List[T]) RemoveAt(index int) {
	if index < 0 || index >= l.count {
		return
	}
	if index == 0 {
		l.unlink(nil, l.head)
		return
	}
	prev := l.nodeAt(index - 1)
	l.unlink(prev, prev.next)
}

// TryRemoveAt is RemoveAt(), except that it returns an error wrapping errors.ErrOutOfBounds
// instead of doing nothing.
func (l *List[T]) TryRemoveAt(index int) error {
	if index < 0 || index >= l.count {
		return errors.Bounds(index, l.count)
	}
	l.RemoveAt(index)
	return nil
}

// Clear removes all items from the list. Calling Clear() on an empty list does nothing.
func (l *List[T]) Clear() {
	if l.count == 0 {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		l.release(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
	l.mods++
}

// Contains returns true if an item in the list is equal to item.
func (l *List[T]) Contains(item T) bool {
	return l.Index(item) >= 0
}

// Index returns the index of the first item equal to item, or -1.
func (l *List[T]) Index(item T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.traits.Equal(n.data, item) {
			return i
		}
		i++
	}
	return -1
}

// Get gets the item at index. This panics if index is not in the list.
func (l *List[T]) Get(index int) T {
	return *l.Ref(index)
}

// Set sets the item at index to a copy of value, destroying the value it replaces.
// This panics if index is not in the list.
func (l *List[T]) Set(index int, value T) {
	p := l.Ref(index)
	c := l.traits.Copy(value)
	l.traits.Destroy(p)
	*p = c
}

// Ref returns a pointer to the item at index. The pointer is valid until the item
// is removed. This panics if index is not in the list.
func (l *List[T]) Ref(index int) *T {
	if index < 0 || index >= l.count {
		panic(fmt.Sprintf("list.List with len %d cannot access index %d", l.count, index))
	}
	return &l.nodeAt(index).data
}

// TryGet is Get(), except it returns an error wrapping errors.ErrOutOfBounds instead of panicking.
func (l *List[T]) TryGet(index int) (T, error) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, errors.Bounds(index, l.count)
	}
	return l.nodeAt(index).data, nil
}

// Traverse calls visit with every item from head to tail. visit may change the item it is
// given, but must not add or remove items.
func (l *List[T]) Traverse(visit func(item *T)) {
	start := l.mods
	for n := l.head; n != nil; n = n.next {
		visit(&n.data)
		if l.mods != start {
			panic(errors.Modified())
		}
	}
}

// All returns an iterator over references to the items in the list, from head to tail.
// Every range over the iterator starts a new pass from the head.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		start := l.mods
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.data) {
				return
			}
			if l.mods != start {
				panic(errors.Modified())
			}
		}
	}
}

// Values returns an iterator over the items in the list, from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range l.All() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Slice returns a copy of the items as a []T. If there are no items, this returns a nil slice.
func (l *List[T]) Slice() []T {
	if l.count == 0 {
		return nil
	}
	s := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.data)
	}
	return s
}

// Clone returns a deep copy of the list. Every item is copied with the list's copy function.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{traits: l.traits}
	c.appendCopies(l)
	return c
}

// CopyFrom replaces the contents of the list with copies of the items in src.
func (l *List[T]) CopyFrom(src *List[T]) {
	if src == l {
		return
	}
	l.Clear()
	l.appendCopies(src)
}

// Move returns a new List that owns all the items in l. l is left empty.
func (l *List[T]) Move() *List[T] {
	m := &List[T]{traits: l.traits}
	m.take(l)
	return m
}

// MoveFrom clears the list and then takes ownership of all the items in src. src is left empty.
func (l *List[T]) MoveFrom(src *List[T]) {
	if src == l {
		return
	}
	l.Clear()
	l.take(src)
}

// Check verifies the internal structure of the list. A non-nil error is always an
// errors.Error of type errors.TypeBug.
func (l *List[T]) Check() error {
	if l.count < 0 {
		return errors.Bug("list: negative count %d", l.count)
	}
	if (l.head == nil) != (l.tail == nil) {
		return errors.Bug("list: head(nil=%v) and tail(nil=%v) disagree", l.head == nil, l.tail == nil)
	}
	if (l.count == 0) != (l.head == nil) {
		return errors.Bug("list: count is %d but head nil=%v", l.count, l.head == nil)
	}

	seen := 0
	var last *node[T]
	for n := l.head; n != nil; n = n.next {
		seen++
		if seen > l.count {
			return errors.Bug("list: more than %d nodes reachable from head", l.count)
		}
		last = n
	}
	if seen != l.count {
		return errors.Bug("list: count is %d but %d nodes are reachable", l.count, seen)
	}
	if last != l.tail {
		return errors.Bug("list: tail is not the last reachable node")
	}
	return nil
}

func (l *List[T]) push(n *node[T]) {
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
	l.mods++
}

// nodeAt returns the node at index. index must be in the list.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// unlink removes n, whose predecessor is prev (nil if n is the head), and releases it.
func (l *List[T]) unlink(prev, n *node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if n == l.tail {
		l.tail = prev
	}
	l.count--
	l.mods++
	l.release(n)
}

// release destroys the node's item and detaches it so it cannot reach the rest of the chain.
func (l *List[T]) release(n *node[T]) {
	l.traits.Destroy(&n.data)
	var zero T
	n.data = zero
	n.next = nil
}

func (l *List[T]) appendCopies(src *List[T]) {
	for n := src.head; n != nil; n = n.next {
		l.push(&node[T]{data: l.traits.Copy(n.data)})
	}
}

// take moves src's chain into l, which must be empty.
func (l *List[T]) take(src *List[T]) {
	l.head, l.tail, l.count = src.head, src.tail, src.count
	src.head, src.tail, src.count = nil, nil, 0
	l.mods++
	src.mods++
}
