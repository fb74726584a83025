package xgxresult

import "fmt"

// Result holds either a success value (Ok) or a failure (Err). The failure
// payload is always an error. Results are immutable values; build them with
// Ok or Err. The zero Result is neither and should not be used.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result holding err. A nil err is a programming error.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic(newAssertion("Err called with a nil error"))
	}
	return Result[T]{err: err}
}

// IsOk reports whether r is Ok. It is the Result's truth value.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr reports whether r is Err.
func (r Result[T]) IsErr() bool { return !r.ok }

// Expect returns the success value. On Err it panics with an *AssertionError
// carrying msg.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(r.unexpected(msg))
	}
	return r.value
}

// Unwrap returns the success value. On Err it panics with an *AssertionError.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(r.unexpected(""))
	}
	return r.value
}

// ExpectErr returns the failure. On Ok it panics with an *AssertionError
// carrying msg.
func (r Result[T]) ExpectErr(msg string) error {
	if r.ok {
		panic(r.unexpected(msg))
	}
	return r.err
}

// UnwrapErr returns the failure. On Ok it panics with an *AssertionError.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic(r.unexpected(""))
	}
	return r.err
}

// UnwrapOr returns the success value, or alternative on Err.
func (r Result[T]) UnwrapOr(alternative T) T {
	if r.ok {
		return r.value
	}
	return alternative
}

// UnwrapOrRaise returns the success value. On Err it re-raises the failure
// with panic, so the nearest enclosing adapter classifies it again: an
// expected kind comes back out as Err, anything else escalates as a *Panic.
func (r Result[T]) UnwrapOrRaise() T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// UnwrapOrReturn is UnwrapOrRaise, named for use inside functions that
// themselves return a Result through an adapter.
func (r Result[T]) UnwrapOrReturn() T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// Value returns the success value and whether r is Ok.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Err returns the failure, or nil when r is Ok.
func (r Result[T]) Err() error { return r.err }

// Get returns r in the (value, error) shape plain Go code expects.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// Trace renders the failure's filtered trace and exception line. It returns
// "" for Ok.
func (r Result[T]) Trace() string {
	if r.ok {
		return ""
	}
	return FormatTraceAndException(r.err)
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%s)", FormatException(r.err))
}

// Equal reports whether r and other are the same variant with equal payloads.
// Values compare deeply. Errors compare by identity, except that two
// *Failure values of the same kind and message are equal.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return valuesEqual(r.value, other.value)
	}
	return errorsEqual(r.err, other.err)
}

// Hash returns a hash of the variant and payload. Equal Results hash alike;
// Ok(v) and Err(v) hash differently.
func (r Result[T]) Hash() uint64 {
	if r.ok {
		return hashOf(tagOk, r.value)
	}
	return hashOf(tagErr, r.err)
}

func (r Result[T]) unexpected(msg string) *AssertionError {
	s := r.String()
	if msg != "" {
		s += ": " + msg
	}
	return newAssertion(s)
}

// Map applies f to the success value of r.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.ok {
		return Ok(f(r.value))
	}
	return Result[U]{err: r.err}
}

// AndThen chains a fallible step onto the success value of r.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.ok {
		return f(r.value)
	}
	return Result[U]{err: r.err}
}

// MapErr applies f to the failure of r. f must not return nil.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// Match calls onOk or onErr depending on the variant of r.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}
