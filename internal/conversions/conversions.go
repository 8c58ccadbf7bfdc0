// Package conversions is a set of unsafe conversions from one type to another. Such as converting
// a slice of values to the bytes that hold them.
package conversions

import (
	"unsafe"
)

// SliceBytes returns the underlying storage of every element of s. It is nil when s is empty.
func SliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*size)
}

// IsZero reports if every byte of every element of s is 0. This includes padding, which Go's
// == would ignore.
func IsZero[T any](s []T) bool {
	for _, b := range SliceBytes(s) {
		if b != 0 {
			return false
		}
	}
	return true
}
