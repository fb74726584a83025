// report_test.go — the process-wide report hook.
//
// These tests touch the process-wide report hook and do not run in parallel.
package xgxresult

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFrom(fn func()) (r any) {
	defer func() { r = recover() }()
	defer ReportUnhandled()
	fn()
	return nil
}

func TestReportUnhandled_PrintsAndRepanics(t *testing.T) {
	buf := withReportHook(t)

	err := New(KindKey, "k")
	r := reportFrom(func() { panic(err) })

	assert.Same(t, err, r)
	out := buf.String()
	assert.Contains(t, out, "TestReportUnhandled_PrintsAndRepanics")
	assert.Contains(t, out, "key: k\n")
}

func TestReportUnhandled_Panic(t *testing.T) {
	buf := withReportHook(t)

	r := reportFrom(func() { traceF1(KindSystem) })
	_, ok := r.(*Panic)
	require.True(t, ok)
	out := buf.String()
	assert.Contains(t, out, "traceF3")
	assert.Contains(t, out, "Panic: system: foo")
}

func TestReportUnhandled_NonErrorValue(t *testing.T) {
	buf := withReportHook(t)

	r := reportFrom(func() { panic("boom") })
	assert.Equal(t, "boom", r)
	assert.Contains(t, buf.String(), "runtime: boom")
	assert.Contains(t, buf.String(), "TestReportUnhandled_NonErrorValue")
}

func TestReportUnhandled_NoPanicIsQuiet(t *testing.T) {
	buf := withReportHook(t)

	assert.Nil(t, reportFrom(func() {}))
	assert.Empty(t, buf.String())
}

func TestSuspendReportHook_Nesting(t *testing.T) {
	buf := withReportHook(t)

	outer := SuspendReportHook()
	inner := SuspendReportHook()
	assert.False(t, ReportHookActive())

	reportFrom(func() { panic(New(KindKey, "hidden")) })
	assert.Empty(t, buf.String())

	inner()
	inner()
	assert.False(t, ReportHookActive(), "restore is idempotent; outer suspension still holds")

	outer()
	assert.True(t, ReportHookActive())

	reportFrom(func() { panic(New(KindKey, "shown")) })
	assert.Contains(t, buf.String(), "key: shown")
}

func TestInstallReportHook_NilUninstalls(t *testing.T) {
	withReportHook(t)

	InstallReportHook(nil)
	assert.False(t, ReportHookActive())
	assert.Nil(t, reportFrom(func() {}))

	var buf bytes.Buffer
	InstallReportHook(&buf)
	assert.True(t, ReportHookActive())
}
