// stack.go — stack capture and frame filtering for xgx-result.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames so inlined frames resolve.
//   - Capture once, where a failure originates: at construction of a Failure
//     or AssertionError, or inside the deferred recover that observes a panic
//     (the panicking frames are still on the stack at that point).
//   - Filtering is by role, not by skip counts: runtime unwinding frames and
//     this package's own non-test frames never reach a printed trace.
package xgxresult

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames. Captured stacks run from the most recent call
// outward; FilterFrames returns them in call order instead.
type Stack []Frame

// defaultMaxDepth bounds capture on exceptional paths.
const defaultMaxDepth = 64

// pkgPrefix is the function-name prefix shared by every frame of this package.
var pkgPrefix = reflect.TypeOf(Failure{}).PkgPath() + "."

// stackTracer is implemented by errors that carry their origination stack.
type stackTracer interface {
	StackTrace() Stack
}

// captureStackDefault captures a stack skipping 'skip' frames above its caller.
//
// Skip model: runtime.Callers, captureStack and captureStackDefault are always
// skipped (+3 in captureStack); skip=0 starts at the caller of
// captureStackDefault, skip=1 at that function's caller, and so on.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// stackOf returns the first stack found along err's unwrap chain, or nil.
func stackOf(err error) Stack {
	if err == nil {
		return nil
	}
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return nil
}

// internalFrame reports whether fr belongs to runtime unwinding or to this
// package's adapters rather than to the caller's code.
func internalFrame(fr Frame) bool {
	if strings.HasPrefix(fr.Function, "runtime.") || strings.HasPrefix(fr.Function, "internal/runtime/") {
		return true
	}
	return strings.HasPrefix(fr.Function, pkgPrefix) && !strings.HasSuffix(fr.File, "_test.go")
}

// filter drops internal frames and reverses the stack into call order.
func (s Stack) filter() Stack {
	out := make(Stack, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if !internalFrame(s[i]) {
			out = append(out, s[i])
		}
	}
	return out
}

// Names returns the function names of s in order.
func (s Stack) Names() []string {
	out := make([]string, len(s))
	for i, fr := range s {
		out[i] = fr.Function
	}
	return out
}
