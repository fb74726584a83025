package xgxresult

import "fmt"

// Policy decides which failures an adapter hands back as Err. A failure whose
// kind matches notExpects always escalates, even when expects also matches it;
// a failure matching neither set escalates as well.
type Policy struct {
	expects    []Kind
	notExpects []Kind
}

// PolicyOption configures a Policy.
type PolicyOption func(*Policy)

// WithExpects replaces the expected kinds (default: KindAny). Calling it with
// no kinds makes every failure unexpected.
func WithExpects(kinds ...Kind) PolicyOption {
	return func(p *Policy) {
		p.expects = append([]Kind(nil), kinds...)
	}
}

// WithNotExpects adds kinds that always escalate, on top of the language- and
// system-level defaults.
func WithNotExpects(kinds ...Kind) PolicyOption {
	return func(p *Policy) {
		p.notExpects = append(append([]Kind(nil), p.notExpects...), kinds...)
	}
}

// DefaultPolicy expects every failure except language- and system-level ones.
func DefaultPolicy() Policy {
	not := make([]Kind, 0, len(languageLevelKinds)+len(systemLevelKinds))
	not = append(not, languageLevelKinds...)
	not = append(not, systemLevelKinds...)
	return Policy{
		expects:    []Kind{KindAny},
		notExpects: not,
	}
}

// NewPolicy applies opts to DefaultPolicy.
func NewPolicy(opts ...PolicyOption) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Expects returns a copy of the expected kinds.
func (p Policy) Expects() []Kind { return append([]Kind(nil), p.expects...) }

// NotExpects returns a copy of the kinds that always escalate.
func (p Policy) NotExpects() []Kind { return append([]Kind(nil), p.notExpects...) }

// Expected reports whether err would come back from an adapter as Err.
// Panics and assertion errors are never expected.
func (p Policy) Expected(err error) bool {
	if err == nil || IsPanic(err) || IsAssertion(err) {
		return false
	}
	kind := KindOf(err)
	return !kind.matchesAny(p.notExpects) && kind.matchesAny(p.expects)
}

// decide classifies a failure raised inside an adapter. It returns err when
// the policy expects it. Otherwise it panics: a *Panic or *AssertionError
// re-panics unchanged (recovered, when set, is the exact value to re-raise),
// anything else escalates as a new *Panic.
func (p Policy) decide(err error, recovered any, observed Stack) error {
	if _, ok := AsPanic(err); ok || IsAssertion(err) {
		if recovered != nil {
			panic(recovered)
		}
		panic(err)
	}
	if p.Expected(err) {
		return err
	}
	panic(newPanic(err, recovered, observed))
}

// absorb turns a recovered panic value into a failure and classifies it.
// It must be called from the adapter's deferred function so the captured
// stack still holds the panicking frames.
func (p Policy) absorb(r any) error {
	observed := captureStackDefault(1)
	err, ok := r.(error)
	if !ok {
		err = &Failure{kind: KindRuntime, msg: fmt.Sprint(r), stk: observed}
	}
	return p.decide(err, r, observed)
}

func (p Policy) String() string {
	return fmt.Sprintf("Policy{expects: %v, not_expects: %v}", p.expects, p.notExpects)
}
