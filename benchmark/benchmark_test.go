// Package benchmark compares the containers in this module with the stdlib.
package benchmark

import (
	stdlist "container/list"
	"testing"

	"github.com/bearlytools/adt/array"
	"github.com/bearlytools/adt/list"
	"github.com/bearlytools/adt/locking"
	"github.com/bearlytools/adt/vector"
)

const listSize = 1000

// Benchmarks for appending and walking a linked list.
func BenchmarkListAdd(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := list.New[int]()
		for j := 0; j < listSize; j++ {
			l.Add(j)
		}
	}
}

func BenchmarkStdListPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := stdlist.New()
		for j := 0; j < listSize; j++ {
			l.PushBack(j)
		}
	}
}

func BenchmarkListAll(b *testing.B) {
	l := list.New[int]()
	for j := 0; j < listSize; j++ {
		l.Add(j)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := 0
		for p := range l.All() {
			sum += *p
		}
		if sum == 0 {
			b.Fatal("sum was 0")
		}
	}
}

func BenchmarkListClone(b *testing.B) {
	l := list.New[int]()
	for j := 0; j < listSize; j++ {
		l.Add(j)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if l.Clone().Len() != listSize {
			b.Fatal("bad clone")
		}
	}
}

// Benchmarks for a fixed capacity array against append().
func BenchmarkVectorAdd(b *testing.B) {
	v := vector.New[int](listSize)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < listSize; j++ {
			v.Add(j)
		}
		v.Clear()
	}
}

func BenchmarkSliceAppend(b *testing.B) {
	s := make([]int, 0, listSize)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < listSize; j++ {
			s = append(s, j)
		}
		clear(s)
		s = s[:0]
	}
}

func BenchmarkVectorRemoveAtHead(b *testing.B) {
	v := vector.New[int](listSize)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < listSize; j++ {
			v.Add(j)
		}
		for v.Len() > 0 {
			v.RemoveAt(0)
		}
	}
}

func BenchmarkArrayResize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := array.New[int](listSize)
		a.Resize(listSize * 2)
		a.Resize(listSize / 2)
	}
}

// Benchmarks for the two lock primitives on an uncontended and a contended counter.
func BenchmarkLockingMutex(b *testing.B) {
	a := locking.NewArray[int](1)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a.Lock()
			*a.Ref(0)++
			a.Unlock()
		}
	})
}

func BenchmarkLockingSpin(b *testing.B) {
	a := locking.NewArray[int](1)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a.SpinLock()
			*a.Ref(0)++
			a.SpinUnlock()
		}
	})
}
