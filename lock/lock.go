// Package lock provides Primitive, a pair of locks that can be composed onto any type.
//
// Primitive holds a blocking mutex and a spin lock. It doesn't guard anything by itself:
// a type that embeds a Primitive gains Lock(), Unlock(), SpinLock() and SpinUnlock(), and the
// caller decides when to use them.
//
// A Primitive must not be copied after first use. Types in this module that embed one
// (see the locking package) provide Clone() and Move() methods that give the destination
// a new, unlocked Primitive.
package lock

import (
	"runtime"
	stdsync "sync"

	"github.com/gostdlib/base/concurrency/sync"
	"go.uber.org/atomic"
)

// Primitive is a mutex and a spin lock. The zero value is unlocked and ready to use.
type Primitive struct {
	mu   sync.Mutex
	spin atomic.Bool
}

// Lock locks the mutex, blocking until it is available. It is not reentrant: calling Lock()
// again from the goroutine holding the lock deadlocks.
func (p *Primitive) Lock() {
	p.mu.Lock()
}

// Unlock unlocks the mutex. It is a run-time error if the mutex is not locked.
func (p *Primitive) Unlock() {
	p.mu.Unlock()
}

// SpinLock busy-waits until it can set the spin flag. Each failed attempt yields the processor
// but there is no backoff and no fairness, so a waiter can starve under contention. Only use it
// around very short critical sections.
func (p *Primitive) SpinLock() {
	for !p.spin.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// SpinUnlock clears the spin flag. This panics if the flag is not set.
func (p *Primitive) SpinUnlock() {
	if !p.spin.CompareAndSwap(true, false) {
		panic("lock: SpinUnlock of unlocked spin lock")
	}
}

// Spinner returns a sync.Locker that uses SpinLock() and SpinUnlock().
func (p *Primitive) Spinner() stdsync.Locker {
	return spinner{p: p}
}

type spinner struct {
	p *Primitive
}

func (s spinner) Lock() {
	s.p.SpinLock()
}

func (s spinner) Unlock() {
	s.p.SpinUnlock()
}
