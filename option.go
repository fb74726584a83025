package xgxresult

import "fmt"

// Option represents a value that may be absent. A present Option (Some) is
// always truthy; the absent Option (None) never equals a present one.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates a present Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None creates the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value. Calling it on None panics with an *AssertionError.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(newAssertion("None: unwrap of absent value"))
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied message.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(newAssertion("None: " + msg))
	}
	return o.value
}

// UnwrapOr returns the value, or alternative when absent.
func (o Option[T]) UnwrapOr(alternative T) T {
	if o.ok {
		return o.value
	}
	return alternative
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Equal reports whether both are None, or both are Some with equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || valuesEqual(o.value, other.value)
}

// Hash returns a hash of presence and value. Equal Options hash alike.
func (o Option[T]) Hash() uint64 {
	if !o.ok {
		return hashOf(tagNone, nil)
	}
	return hashOf(tagSome, o.value)
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
