// format.go — human-readable rendering of failures and traces.
//
// Behavior:
//
//   FormatException        → "<kind>: <message>", one line, no trace.
//   FilterFrames           → origination frames in call order, adapter and
//                            runtime frames removed.
//   FormatTrace            → one line per filtered frame:
//                              "  pkg.Func /path/file.go:12\n"
//   FormatTraceAndException → trace followed by the exception line.
//
//   *Failure implements fmt.Formatter:
//   %s, %v   → Error()
//   %+v      → kind=<kind> msg="<message>"
//              ctx: key1=val1 key2=val2 ...
//              cause: <recursively formatted with %+v>
//              stack:
//                funcA file.go:123
//
// All functions are pure; formatting the same failure twice yields the same
// text.
package xgxresult

import (
	"fmt"
	"io"
	"strings"
)

// FormatException describes err on one line as "<kind>: <message>". A *Panic
// renders as its Error(). FormatException(nil) returns "".
func FormatException(err error) string {
	if err == nil {
		return ""
	}
	if p, ok := err.(*Panic); ok {
		return p.Error()
	}
	kind := KindOf(err)
	msg := err.Error()
	if f, ok := err.(*Failure); ok {
		msg = f.msg
	}
	if msg == "" || msg == string(kind) {
		return string(kind)
	}
	return string(kind) + ": " + msg
}

// FilterFrames returns the frames captured where err originated, in call
// order, without this package's adapter frames or runtime frames. It returns
// nil when err carries no stack.
func FilterFrames(err error) Stack {
	stk := stackOf(err)
	if stk == nil {
		return nil
	}
	return stk.filter()
}

// FormatTrace renders FilterFrames(err), one frame per line.
func FormatTrace(err error) string {
	return formatFrames(FilterFrames(err))
}

// FormatTraceAndException renders the trace followed by the exception line.
// This is what the report hook prints for unhandled failures.
func FormatTraceAndException(err error) string {
	return FormatTrace(err) + FormatException(err)
}

func formatFrames(s Stack) string {
	if len(s) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, fr := range s {
		fmt.Fprintf(&sb, "  %s %s:%d\n", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}

// formatVerbose writes a structured multi-line representation.
func formatVerbose(w io.Writer, kind Kind, msg string, ctx fields, cause error, stk Stack) {
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", kind, msg)

	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if frames := stk.filter(); len(frames) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range frames {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.kind, e.msg, e.ctx, e.cause, e.stk)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (p *Panic) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, p.Trace())
			return
		}
		_, _ = io.WriteString(s, p.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", p.Error())
	default:
		_, _ = io.WriteString(s, p.Error())
	}
}
