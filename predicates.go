// predicates.go — kind resolution and classification helpers.
//
// Scope:
//   • Map any error onto a Kind: errors that carry their own kind first, then
//     well-known stdlib error values and types, then the KindAny fallback.
//   • Interop-first: errors.Is / errors.As so wrapped and joined errors resolve
//     through their chains.
package xgxresult

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// KindOf returns the kind of err. Errors implementing Kinded report their own
// kind; stdlib errors map onto the built-in families; anything else is
// KindAny. KindOf(nil) returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k Kinded
	if errors.As(err, &k) {
		return normKind(k.Kind())
	}
	var re runtime.Error
	if errors.As(err, &re) {
		return runtimeKind(re)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, errors.ErrUnsupported):
		return KindNotImplemented
	}

	var (
		syn *json.SyntaxError
		ute *json.UnmarshalTypeError
		num *strconv.NumError
		pe  *fs.PathError
	)
	switch {
	case errors.As(err, &syn), errors.As(err, &ute):
		return KindParse
	case errors.As(err, &num):
		return KindValue
	case errors.As(err, &pe):
		return KindOS
	}
	return KindAny
}

// runtimeKind classifies a runtime panic by what went wrong.
func runtimeKind(re runtime.Error) Kind {
	var tae *runtime.TypeAssertionError
	if errors.As(re, &tae) {
		return KindType
	}
	msg := re.Error()
	switch {
	case strings.Contains(msg, "nil pointer dereference"), strings.Contains(msg, "nil map"):
		return KindNilPointer
	case strings.Contains(msg, "index out of range"), strings.Contains(msg, "slice bounds out of range"):
		return KindIndex
	case strings.Contains(msg, "divide by zero"):
		return KindZeroDivision
	default:
		return KindRuntime
	}
}

// HasKind reports whether err's kind is kind or descends from it.
func HasKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err).Is(kind)
}

// IsAssertion reports whether err is (or wraps) an *AssertionError.
func IsAssertion(err error) bool {
	var ae *AssertionError
	return err != nil && errors.As(err, &ae)
}

// IsPanic reports whether err is (or wraps) a *Panic.
func IsPanic(err error) bool {
	_, ok := AsPanic(err)
	return ok
}

// AsPanic returns the *Panic in err's chain, if any. A recovered panic value
// may be passed as well.
func AsPanic(v any) (*Panic, bool) {
	err, ok := v.(error)
	if !ok || err == nil {
		return nil, false
	}
	var p *Panic
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}
