package adt_test

import (
	"fmt"

	"github.com/bearlytools/adt"
	"github.com/bearlytools/adt/array"
	"github.com/bearlytools/adt/elem"
	"github.com/bearlytools/adt/list"
	"github.com/bearlytools/adt/locking"
	"github.com/bearlytools/adt/vector"
)

func ExampleList() {
	var l *adt.List[string] = list.New[string]()
	l.Add("b")
	l.Insert("a", 0)
	l.Add("c")
	l.Remove("b")

	for s := range l.Values() {
		fmt.Println(s)
	}
	// Output:
	// a
	// c
}

func ExampleVector() {
	var v *adt.Vector[int] = vector.New(2, elem.WithDestroy(func(v *int) {
		fmt.Println("destroy", *v)
	}))
	v.Add(1)
	v.Add(2)
	v.Add(3) // dropped, the Vector is full
	fmt.Println(v.Len(), v.Cap())

	v.Resize(1)
	fmt.Println(v.Slice())
	// Output:
	// 2 2
	// destroy 2
	// [1]
}

func ExampleArray() {
	var a *adt.Array[string] = array.New(2, elem.WithNew(func() string { return "-" }))
	a.Set(0, "x")
	a.Resize(3)
	fmt.Println(a.Data())
	// Output:
	// [x - -]
}

func Example_locking() {
	l := locking.NewList[int]()

	l.Lock()
	l.Add(1)
	l.Unlock()

	l.SpinLock()
	fmt.Println(l.Len())
	l.SpinUnlock()
	// Output:
	// 1
}
