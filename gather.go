package xgxresult

// Slot receives the outcome of a Gather block. The block may Set it at most
// once; the slot is finalized when Gather returns and cannot be set after.
type Slot[T any] struct {
	res       Result[T]
	set       bool
	finalized bool
}

// Set stores r as the block's outcome. Setting twice, or after the block has
// finished, panics with an *AssertionError.
func (s *Slot[T]) Set(r Result[T]) {
	Assert(!s.finalized, "cannot set result when already finalized")
	Assert(!s.set, "result already set")
	s.res = r
	s.set = true
}

func (s *Slot[T]) outcome() Result[Option[T]] {
	switch {
	case !s.set:
		return Ok(None[T]())
	case s.res.ok:
		return Ok(Some(s.res.value))
	default:
		return Result[Option[T]]{err: s.res.err}
	}
}

// Gather runs block as a scoped region under the policy built from opts and
// collects its outcome:
//   - no Set and no failure → Ok(None)
//   - Set(Ok(v))            → Ok(Some(v))
//   - Set(Err(e))           → Err(e)
//   - an expected failure raised or returned by block → Err(failure), even
//     when the slot was set before
//
// Unexpected failures escalate as *Panic; assertion errors propagate
// unchanged and are never stored in the slot.
func Gather[T any](block func(slot *Slot[T]) error, opts ...PolicyOption) Result[Option[T]] {
	p := NewPolicy(opts...)
	slot := &Slot[T]{}
	defer func() { slot.finalized = true }()

	return guard(p, func() Result[Option[T]] {
		if err := block(slot); err != nil {
			return Err[Option[T]](p.decide(err, nil, captureStackDefault(1)))
		}
		return slot.outcome()
	})
}
