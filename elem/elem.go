// Package elem describes how containers in this module manage the values they own.
//
// A container never relies on Go's zero value to stand in for a constructed element. Values
// enter a container through Traits.Copy (or Traits.New for containers that default-construct)
// and leave it through Traits.Destroy, which runs exactly once per value. Memory that a
// container holds but that does not contain a live value is never passed to a hook.
package elem

// Traits holds the lifecycle hooks for values of type T.
type Traits[T any] struct {
	// Equal reports whether a and b are equal. Containers use this for Remove() and Contains().
	Equal func(a, b T) bool
	// New returns a default constructed T.
	New func() T
	// Copy returns a copy of src that the container will own.
	Copy func(src T) T
	// Destroy releases anything v holds. It is called once for every value that leaves a container.
	Destroy func(v *T)
}

// Option is an optional argument for container constructors.
type Option[T any] func(*Traits[T])

// WithEqual overrides the equality function.
func WithEqual[T any](f func(a, b T) bool) Option[T] {
	return func(t *Traits[T]) {
		t.Equal = f
	}
}

// WithNew sets the function used to default construct values. If not provided, the zero value of T is used.
func WithNew[T any](f func() T) Option[T] {
	return func(t *Traits[T]) {
		t.New = f
	}
}

// WithCopy sets the function used to copy values into a container. If not provided, values
// are copied by assignment, which is a shallow copy for pointer types.
func WithCopy[T any](f func(src T) T) Option[T] {
	return func(t *Traits[T]) {
		t.Copy = f
	}
}

// WithDestroy sets a function that is called on every value that leaves a container.
func WithDestroy[T any](f func(v *T)) Option[T] {
	return func(t *Traits[T]) {
		t.Destroy = f
	}
}

// Comparable returns Traits for a comparable type using == for equality.
func Comparable[T comparable](options ...Option[T]) Traits[T] {
	return Build(func(a, b T) bool { return a == b }, options...)
}

// Build returns Traits with equal as the equality function, options applied and
// every unset hook filled with its default. equal may be nil for containers that never compare.
func Build[T any](equal func(a, b T) bool, options ...Option[T]) Traits[T] {
	t := Traits[T]{Equal: equal}
	for _, o := range options {
		o(&t)
	}
	return t.withDefaults()
}

func (t Traits[T]) withDefaults() Traits[T] {
	if t.Equal == nil {
		t.Equal = func(a, b T) bool {
			panic("elem: Equal called on Traits without an equality function")
		}
	}
	if t.New == nil {
		t.New = func() T {
			var zero T
			return zero
		}
	}
	if t.Copy == nil {
		t.Copy = func(src T) T { return src }
	}
	if t.Destroy == nil {
		t.Destroy = func(*T) {}
	}
	return t
}

// DestroyAll calls Destroy on every value in s in order.
func (t Traits[T]) DestroyAll(s []T) {
	for i := range s {
		t.Destroy(&s[i])
	}
}

// CopyAll copy constructs every value in src into dst. len(dst) must be >= len(src).
func (t Traits[T]) CopyAll(dst, src []T) {
	for i := range src {
		dst[i] = t.Copy(src[i])
	}
}

// Construct default constructs every slot in s.
func (t Traits[T]) Construct(s []T) {
	for i := range s {
		s[i] = t.New()
	}
}
