package xgxresult

// Panic is an unexpected failure escalating out of an adapter. It travels as
// a Go panic value and is never turned back into a Result: adapters that
// observe a *Panic re-panic it unchanged.
type Panic struct {
	underlying error
	recovered  any
	stk        Stack
}

// newPanic wraps underlying. The trace is the one underlying carries, if any,
// otherwise the stack observed by the adapter.
func newPanic(underlying error, recovered any, observed Stack) *Panic {
	stk := stackOf(underlying)
	if stk == nil {
		stk = observed
	}
	return &Panic{underlying: underlying, recovered: recovered, stk: stk}
}

// Error returns "Panic: " followed by the underlying failure's description.
func (p *Panic) Error() string {
	return "Panic: " + FormatException(p.underlying)
}

func (p *Panic) Unwrap() error { return p.underlying }

// Underlying returns the failure that escalated.
func (p *Panic) Underlying() error { return p.underlying }

// Recovered returns the raw value passed to panic when the failure was raised
// that way, or nil when it was a returned error.
func (p *Panic) Recovered() any { return p.recovered }

// StackTrace returns the origination stack, most recent call first.
func (p *Panic) StackTrace() Stack { return p.stk }

// Frames returns the origination trace in call order with adapter and runtime
// frames removed.
func (p *Panic) Frames() Stack { return p.stk.filter() }

// Trace renders the filtered trace followed by the "Panic: " line.
func (p *Panic) Trace() string {
	return formatFrames(p.Frames()) + p.Error()
}
