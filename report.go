package xgxresult

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// reportHook is the process-wide reporter for failures nobody handled. It is
// installed on os.Stderr at package initialization. LogPanic suspends it for
// the duration of its scope so escalating panics are not reported twice.
var reportHook = struct {
	mu        sync.Mutex
	w         io.Writer
	suspended int
}{w: os.Stderr}

// InstallReportHook directs unhandled-failure reports to w. A nil w
// uninstalls the hook.
func InstallReportHook(w io.Writer) {
	reportHook.mu.Lock()
	defer reportHook.mu.Unlock()
	reportHook.w = w
}

// SuspendReportHook disables reporting until the returned restore function is
// called. Suspensions nest; restore is safe to call more than once.
func SuspendReportHook() (restore func()) {
	reportHook.mu.Lock()
	reportHook.suspended++
	reportHook.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			reportHook.mu.Lock()
			reportHook.suspended--
			reportHook.mu.Unlock()
		})
	}
}

// ReportHookActive reports whether an unhandled failure would be printed now.
func ReportHookActive() bool {
	reportHook.mu.Lock()
	defer reportHook.mu.Unlock()
	return reportHook.w != nil && reportHook.suspended == 0
}

// ReportUnhandled reports a failure that reached the top of a unit of work
// and lets it continue to terminate that unit. Defer it first thing in main
// or in a goroutine:
//
//	func main() {
//		defer xgxresult.ReportUnhandled()
//		...
//	}
func ReportUnhandled() {
	r := recover()
	if r == nil {
		return
	}
	report(r, captureStackDefault(0))
	panic(r)
}

// report writes the trace and exception line for a recovered value.
func report(r any, observed Stack) {
	reportHook.mu.Lock()
	w := reportHook.w
	active := w != nil && reportHook.suspended == 0
	reportHook.mu.Unlock()
	if !active {
		return
	}

	err, ok := r.(error)
	if !ok {
		err = &Failure{kind: KindRuntime, msg: fmt.Sprint(r), stk: observed}
	}
	trace := FormatTrace(err)
	if stackOf(err) == nil {
		trace = formatFrames(observed.filter())
	}
	_, _ = fmt.Fprintln(w, trace+FormatException(err))
}
