// Package adt holds generic containers that own their elements: a singly linked List,
// a capacity managed Vector and a resizable Array.
//
// The containers live in their own packages (list, vector, array) and share the element
// lifecycle hooks in package elem. Package locking adds lock primitives from package lock to
// each of them. The aliases here are for callers that want a single import.
package adt

import (
	"github.com/bearlytools/adt/array"
	"github.com/bearlytools/adt/list"
	"github.com/bearlytools/adt/vector"
)

// List is a list.List.
type List[T any] = list.List[T]

// Vector is a vector.Vector.
type Vector[T any] = vector.Vector[T]

// Array is an array.Array.
type Array[T any] = array.Array[T]
