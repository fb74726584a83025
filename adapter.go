// adapter.go — call-boundary adapters.
//
// Every adapter runs the wrapped code, observes what it raises and sends it
// through the same Policy:
//
//	+--------------------------+--------------------------------------------+
//	| raised                   | outcome                                    |
//	+--------------------------+--------------------------------------------+
//	| nothing                  | the wrapped code's value passes through    |
//	| *Panic                   | re-panicked unchanged                      |
//	| *AssertionError          | re-panicked unchanged                      |
//	| kind in notExpects       | new *Panic, failure's trace preserved      |
//	| kind in expects          | Err(failure)                               |
//	| anything else            | new *Panic                                 |
//	+--------------------------+--------------------------------------------+
//
// "Raised" means a value passed to panic, including the re-raise done by
// Result.UnwrapOrRaise, and, for adapters around plain (T, error) code, a
// non-nil returned error.
package xgxresult

import "fmt"

// guard runs fn under p and converts whatever fn panics with.
func guard[T any](p Policy, fn func() Result[T]) (res Result[T]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		res = Err[T](p.absorb(r))
	}()
	return fn()
}

// guardCall runs a (T, error) function under p. A returned error counts as a
// raised failure.
func guardCall[T any](p Policy, fn func() (T, error)) Result[T] {
	return guard(p, func() Result[T] {
		v, err := fn()
		if err != nil {
			return Err[T](p.decide(err, nil, captureStackDefault(1)))
		}
		return Ok(v)
	})
}

// Do runs fn immediately under the policy built from opts.
func Do[T any](fn func() Result[T], opts ...PolicyOption) Result[T] {
	return guard(NewPolicy(opts...), fn)
}

// Call runs a plain Go function immediately under the policy built from opts.
// A nil error yields Ok(value).
//
// A returned error is observed only after fn has returned, so an escalating
// error without its own stack gets a trace that starts at Call. Return a
// failure built with New, Errorf or Wrap to keep the frames of its origin.
func Call[T any](fn func() (T, error), opts ...PolicyOption) Result[T] {
	return guardCall(NewPolicy(opts...), fn)
}

// Returns wraps a Result-returning function so failures it raises become Err
// or escalate according to opts. The policy is fixed when Returns is called.
func Returns[T any](fn func() Result[T], opts ...PolicyOption) func() Result[T] {
	p := NewPolicy(opts...)
	return func() Result[T] {
		return guard(p, fn)
	}
}

// Returns1 is Returns for functions of one argument.
func Returns1[A, T any](fn func(A) Result[T], opts ...PolicyOption) func(A) Result[T] {
	p := NewPolicy(opts...)
	return func(a A) Result[T] {
		return guard(p, func() Result[T] { return fn(a) })
	}
}

// Returns2 is Returns for functions of two arguments.
func Returns2[A, B, T any](fn func(A, B) Result[T], opts ...PolicyOption) func(A, B) Result[T] {
	p := NewPolicy(opts...)
	return func(a A, b B) Result[T] {
		return guard(p, func() Result[T] { return fn(a, b) })
	}
}

// Constructor wraps a constructor so that calling it yields a Result of the
// constructed value instead of a value/error pair or a panic.
func Constructor[A, T any](ctor func(A) (T, error), opts ...PolicyOption) func(A) Result[T] {
	p := NewPolicy(opts...)
	return func(a A) Result[T] {
		return guardCall(p, func() (T, error) { return ctor(a) })
	}
}

// Constructor0 is Constructor for constructors without arguments.
func Constructor0[T any](ctor func() (T, error), opts ...PolicyOption) func() Result[T] {
	p := NewPolicy(opts...)
	return func() Result[T] {
		return guardCall(p, ctor)
	}
}

// Noexcept wraps fn, which is not expected to fail at all. Any failure it
// raises other than a *Panic or *AssertionError is re-raised as an
// *AssertionError; the raw return value otherwise passes through.
func Noexcept[T any](fn func() T) func() T {
	return func() T {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, isErr := r.(error)
			if isErr && (IsPanic(err) || IsAssertion(err)) {
				panic(r)
			}
			stk := captureStackDefault(0)
			var desc string
			if isErr {
				desc = FormatException(err)
				if s := stackOf(err); s != nil {
					stk = s
				}
			} else {
				desc = fmt.Sprint(r)
			}
			panic(&AssertionError{msg: "unhandled failure: " + desc, stk: stk})
		}()
		return fn()
	}
}
