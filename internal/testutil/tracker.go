// Package testutil holds helpers shared by the container tests.
package testutil

import (
	"github.com/bearlytools/adt/elem"
)

// Tracker counts the lifecycle hooks a container runs on values of type T.
type Tracker[T comparable] struct {
	// Destroyed counts Destroy calls per value.
	Destroyed map[T]int
	// Copies counts Copy calls.
	Copies int
	// News counts New calls.
	News int

	newFn func() T
}

// NewTracker returns a Tracker. newFn is used for default construction and may be nil,
// in which case the zero value is constructed.
func NewTracker[T comparable](newFn func() T) *Tracker[T] {
	return &Tracker[T]{Destroyed: map[T]int{}, newFn: newFn}
}

// Options returns container options that record into the Tracker.
func (tr *Tracker[T]) Options() []elem.Option[T] {
	return []elem.Option[T]{
		elem.WithNew(func() T {
			tr.News++
			if tr.newFn == nil {
				var zero T
				return zero
			}
			return tr.newFn()
		}),
		elem.WithCopy(func(src T) T {
			tr.Copies++
			return src
		}),
		elem.WithDestroy(func(v *T) {
			tr.Destroyed[*v]++
		}),
	}
}

// TotalDestroyed is the number of Destroy calls across all values.
func (tr *Tracker[T]) TotalDestroyed() int {
	n := 0
	for _, c := range tr.Destroyed {
		n += c
	}
	return n
}

// Reset zeros all counters.
func (tr *Tracker[T]) Reset() {
	tr.Destroyed = map[T]int{}
	tr.Copies = 0
	tr.News = 0
}
