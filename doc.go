// doc.go — package documentation for xgx-result
//
// Package xgxresult provides an explicit success/failure value (Result), an
// optional value (Option), and call-boundary adapters that turn failures into
// Results while keeping bugs loud. It is designed to be:
//   - Explicit at call sites (expected failures are values, not control flow)
//   - Interoperable with the stdlib (errors.Is/As, (T, error) functions)
//   - Strict about bugs (unexpected failures escalate as *Panic, never Err)
//
// # Expected vs Unexpected
//
// Every adapter carries a Policy: a set of expected kinds (default: all) and
// a set of kinds that always escalate (default: language- and system-level
// kinds such as type, nil_pointer, memory). The escalating set wins:
//
//	+--------------------------------+------------------------------------+
//	| raised inside an adapter       | outcome                            |
//	+--------------------------------+------------------------------------+
//	| kind expected, not escalating  | Err(failure)                       |
//	| kind escalating or unmatched   | panic(*Panic), trace preserved     |
//	| *Panic                         | passes through unchanged           |
//	| *AssertionError                | passes through unchanged           |
//	+--------------------------------+------------------------------------+
//
// # Adapters
//
//   - Do / Returns / Returns1 / Returns2: Result-returning functions.
//   - Call: plain (T, error) functions; a returned error counts as raised.
//   - Constructor / Constructor0: constructors yield Result[T].
//   - Gather: a scoped block with a settable Slot; Ok(None) when nothing is set.
//   - Noexcept: functions that must not fail at all.
//   - LogPanic: logs an escalating *Panic once through a Logger, then
//     re-panics.
//
// Chaining is done with Result.UnwrapOrRaise: on Err it re-raises the failure
// so the enclosing adapter classifies it again.
//
//	parse := xgxresult.Returns1(func(path string) xgxresult.Result[Config] {
//		data := xgxresult.Call(func() ([]byte, error) { return os.ReadFile(path) }).UnwrapOrRaise()
//		return decode(data)
//	}, xgxresult.WithExpects(xgxresult.KindFileNotFound, xgxresult.KindParse))
//
// # Kinds
//
// Kinds are string tags with an explicit parent table (file_not_found → os →
// error). KindOf maps errors that implement Kinded, plus common stdlib errors
// (fs.ErrNotExist, json syntax errors, runtime errors), onto kinds. Projects
// add their own with DefineKind.
//
// # Traces
//
// Failures capture the stack where they originate. FilterFrames drops this
// package's adapter frames and runtime frames, so a trace shows only the
// caller's functions, outermost first. Defer ReportUnhandled at the top of
// main to print unhandled failures before the process dies.
package xgxresult
