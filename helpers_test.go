package xgxresult

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// catchPanic runs fn and returns the value it panicked with, or nil.
func catchPanic(fn func()) (r any) {
	defer func() { r = recover() }()
	fn()
	return nil
}

// requirePanic runs fn and returns the *Panic it escalated.
func requirePanic(t *testing.T, fn func()) *Panic {
	t.Helper()
	r := catchPanic(fn)
	require.NotNil(t, r, "expected a panic")
	p, ok := r.(*Panic)
	require.Truef(t, ok, "expected *Panic, got %T: %v", r, r)
	return p
}

// requireAssertion runs fn and returns the *AssertionError it raised.
func requireAssertion(t *testing.T, fn func()) *AssertionError {
	t.Helper()
	r := catchPanic(fn)
	require.NotNil(t, r, "expected a panic")
	ae, ok := r.(*AssertionError)
	require.Truef(t, ok, "expected *AssertionError, got %T: %v", r, r)
	return ae
}

// recoverErr runs fn and returns the error it panicked with.
func recoverErr(t *testing.T, fn func()) error {
	t.Helper()
	r := catchPanic(fn)
	err, ok := r.(error)
	require.Truef(t, ok, "expected an error panic, got %T: %v", r, r)
	return err
}

// indexOfName returns the index of the first frame whose function name
// contains needle, or -1.
func indexOfName(s Stack, needle string) int {
	for i, fr := range s {
		if strings.Contains(fr.Function, needle) {
			return i
		}
	}
	return -1
}

// requireInCallOrder checks that each needle names a frame and that they
// appear in the given order.
func requireInCallOrder(t *testing.T, s Stack, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		i := indexOfName(s, n)
		require.GreaterOrEqualf(t, i, 0, "frame %q missing from %v", n, s.Names())
		require.Greaterf(t, i, last, "frame %q out of order in %v", n, s.Names())
		last = i
	}
}
