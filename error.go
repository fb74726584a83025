// error.go — concrete failure values for xgx-result.
//
// Two error types live here:
//   - *Failure: an ordinary, classifiable failure tagged with a Kind. The
//     adapters turn it into Err or escalate it depending on the policy.
//   - *AssertionError: a programming error. It is never classified; adapters
//     let it through untouched.
//
// Both capture the call stack at construction so traces point at the place
// the failure originated rather than at the adapter that observed it.
package xgxresult

import (
	"errors"
	"fmt"
)

// Kinded is implemented by errors that carry their own Kind. Foreign error
// types may implement it to take part in classification.
type Kinded interface {
	Kind() Kind
}

// Failure is a classifiable error with a kind, a message, an optional cause
// and ordered context fields. Values are immutable; With returns a copy.
type Failure struct {
	kind  Kind
	msg   string
	cause error
	ctx   fields
	stk   Stack
}

// New creates a Failure of the given kind. kv are optional key/value context
// pairs.
func New(kind Kind, msg string, kv ...any) *Failure {
	return &Failure{
		kind: normKind(kind),
		msg:  msg,
		ctx:  fieldsFromKV(kv...),
		stk:  captureStackDefault(1),
	}
}

// Errorf creates a Failure with a formatted message. A %w verb records the
// wrapped error as the cause.
func Errorf(kind Kind, format string, args ...any) *Failure {
	wrapped := fmt.Errorf(format, args...)
	return &Failure{
		kind:  normKind(kind),
		msg:   wrapped.Error(),
		cause: errors.Unwrap(wrapped),
		stk:   captureStackDefault(1),
	}
}

// Wrap tags err with kind. The message is err's message and err stays
// reachable through Unwrap. If err already carries a stack, that stack is
// kept; otherwise the current one is captured. Wrap(kind, nil) returns nil.
func Wrap(kind Kind, err error, kv ...any) *Failure {
	if err == nil {
		return nil
	}
	stk := stackOf(err)
	if stk == nil {
		stk = captureStackDefault(1)
	}
	return &Failure{
		kind:  normKind(kind),
		msg:   err.Error(),
		cause: err,
		ctx:   fieldsFromKV(kv...),
		stk:   stk,
	}
}

// From converts any error into a *Failure without changing its meaning.
//   - nil → nil
//   - *Failure → returned as-is
//   - other → wrapped with the kind KindOf reports
func From(err error) *Failure {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Failure); ok {
		return f
	}
	return Wrap(KindOf(err), err)
}

func normKind(k Kind) Kind {
	if k == "" {
		return KindAny
	}
	return k
}

func (e *Failure) Error() string {
	if e.msg == "" {
		return string(e.kind)
	}
	return e.msg
}

// Kind returns the failure's kind.
func (e *Failure) Kind() Kind { return e.kind }

// Message returns the message without the kind prefix.
func (e *Failure) Message() string { return e.msg }

func (e *Failure) Unwrap() error { return e.cause }

// StackTrace returns the stack captured when the failure was created, most
// recent call first.
func (e *Failure) StackTrace() Stack { return e.stk }

// Context returns a copy of the context fields; later duplicate keys win.
func (e *Failure) Context() map[string]any { return e.ctx.toMap() }

// With returns a copy of e with one more context field.
func (e *Failure) With(key string, val any) *Failure {
	n := *e
	n.ctx = appendFields(e.ctx, Field{Key: key, Val: val})
	return &n
}

// Is reports whether target is a *Failure of the same kind and message, so
// two failures built alike compare equal under errors.Is.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok || t == nil {
		return false
	}
	return e.kind == t.kind && e.msg == t.msg
}

// AssertionError signals a programming error: misuse of a Result or Option,
// a violated invariant, or an explicit Assert. Adapters re-raise it unchanged.
type AssertionError struct {
	msg string
	stk Stack
}

func newAssertion(msg string) *AssertionError {
	return &AssertionError{msg: msg, stk: captureStackDefault(1)}
}

func (e *AssertionError) Error() string {
	if e.msg == "" {
		return string(KindAssertion)
	}
	return e.msg
}

// Kind always reports KindAssertion.
func (e *AssertionError) Kind() Kind { return KindAssertion }

// StackTrace returns the stack captured where the assertion failed.
func (e *AssertionError) StackTrace() Stack { return e.stk }

// Assert panics with an *AssertionError carrying msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic(newAssertion(msg))
	}
}

var (
	_ Kinded = (*Failure)(nil)
	_ Kinded = (*AssertionError)(nil)
)
