// Package errors provides the errors used by the containers in this module. It includes
// passthroughs for the stdlib's functions so callers only need to import one errors package.
package errors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
	pkgerrors "github.com/pkg/errors"
)

// Category represents the category of the error.
type Category uint32

// Category implements a categorizer for logging and metrics packages.
func (c Category) Category() string {
	return c.String()
}

func (c Category) String() string {
	switch c {
	case CatUser:
		return "User"
	case CatInternal:
		return "Internal"
	}
	return "Unknown"
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error that is caused by the caller, such as an index that
	// is not in the container.
	CatUser Category = Category(1) // User
	// CatInternal represents an internal error.
	CatInternal Category = Category(2) // Internal
)

// Type represents the type of the error.
type Type uint16

// Type implements a typer for logging and metrics packages.
func (t Type) Type() string {
	return t.String()
}

func (t Type) String() string {
	switch t {
	case TypeBug:
		return "Bug"
	case TypeParameter:
		return "Parameter"
	case TypeBounds:
		return "Bounds"
	case TypeCapacity:
		return "Capacity"
	case TypeModified:
		return "Modified"
	}
	return "Unknown"
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = Type(0) // Unknown
	// TypeBug represents a bug in this module. A container whose invariants do not hold
	// reports an error of this type from Check().
	TypeBug Type = Type(1) // Bug
	// TypeParameter represents an error with a parameter that didn't pass validation.
	TypeParameter Type = Type(2) // Parameter
	// TypeBounds represents an index outside of a container's live range.
	TypeBounds Type = Type(3) // Bounds
	// TypeCapacity represents an insert into a container that has no free capacity.
	TypeCapacity Type = Type(4) // Capacity
	// TypeModified represents a structural change to a container while it is being iterated.
	TypeModified Type = Type(5) // Modified
)

var (
	// ErrOutOfBounds is wrapped by errors returned when an index is outside a container.
	ErrOutOfBounds = New("index out of bounds")
	// ErrFull is wrapped by errors returned when a container is at capacity.
	ErrFull = New("container is at capacity")
	// ErrModified is the panic value's cause when a container is structurally modified
	// while it is being iterated.
	ErrModified = New("container modified during iteration")
)

// Error is the error type for this module. Error implements github.com/gostdlib/base/errors.E .
// Error() returns the wrapped message, use the Category and Type fields to classify it.
type Error = errors.Error

// EOption is an optional argument for E().
type EOption = errors.EOption

// WithCallNum is used if you need to set the runtime.CallNum() in order to get the correct filename and line.
// This defaults to the frame of the caller of E().
func WithCallNum(i int) EOption {
	return errors.WithCallNum(i)
}

// WithStackTrace will add a stack trace to the error.
func WithStackTrace() EOption {
	return errors.WithStackTrace()
}

// E creates a new Error with the given parameters. If msg is already an Error, it is returned as is.
func E(ctx context.Context, c Category, t Type, msg error, options ...EOption) Error {
	// We are a wrapper, so the caller is one frame further up. A WithCallNum() in options wins.
	opts := make([]EOption, 0, len(options)+1)
	opts = append(opts, WithCallNum(2))
	opts = append(opts, options...)

	return errors.E(ctx, c, t, msg, opts...)
}

// The helpers below are called from container operations, which don't take a Context.

// Bounds returns a CatUser/TypeBounds Error wrapping ErrOutOfBounds that describes
// index against a container of length n.
func Bounds(index, n int) Error {
	return E(context.TODO(), CatUser, TypeBounds, pkgerrors.Wrapf(ErrOutOfBounds, "index %d, length %d", index, n), WithCallNum(3))
}

// Full returns a CatUser/TypeCapacity Error wrapping ErrFull for a container with capacity n.
func Full(n int) Error {
	return E(context.TODO(), CatUser, TypeCapacity, pkgerrors.Wrapf(ErrFull, "capacity %d", n), WithCallNum(3))
}

// Modified returns a CatUser/TypeModified Error wrapping ErrModified. Containers panic with
// this value when an open iteration observes a structural change.
func Modified() Error {
	return E(context.TODO(), CatUser, TypeModified, pkgerrors.WithStack(ErrModified), WithCallNum(3))
}

// Bug returns a CatInternal/TypeBug Error with a formatted message.
func Bug(format string, args ...any) Error {
	return E(context.TODO(), CatInternal, TypeBug, pkgerrors.Errorf(format, args...), WithCallNum(3))
}
