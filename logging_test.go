// logging_test.go — LogPanic and the zerolog-backed Logger.
//
// These tests touch the process-wide report hook and do not run in parallel.
package xgxresult

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Critical(msg string) { l.msgs = append(l.msgs, msg) }

func withReportHook(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InstallReportHook(&buf)
	t.Cleanup(func() { InstallReportHook(os.Stderr) })
	return &buf
}

func TestLogPanic_LogsEscalationOnce(t *testing.T) {
	withReportHook(t)
	logger := &recordingLogger{}

	r := catchPanic(func() {
		LogPanic(logger, func() error {
			traceF1(KindSystem)
			return nil
		})
	})

	p, ok := r.(*Panic)
	require.Truef(t, ok, "expected *Panic, got %T", r)
	require.Len(t, logger.msgs, 1)

	msg := logger.msgs[0]
	assert.Equal(t, p.Trace(), msg)
	assert.Contains(t, msg, "Panic: system: foo")
	for _, fn := range []string{"traceF1", "traceF2", "traceF3"} {
		assert.Contains(t, msg, fn)
	}
}

func TestLogPanic_NothingIsExpected(t *testing.T) {
	withReportHook(t)
	logger := &recordingLogger{}

	r := catchPanic(func() {
		LogPanic(logger, func() error { return New(KindKey, "k") })
	})
	p, ok := r.(*Panic)
	require.True(t, ok)
	assert.Equal(t, "Panic: key: k", p.Error())
	assert.Len(t, logger.msgs, 1)

	logger.msgs = nil
	r = catchPanic(func() {
		LogPanic(logger, func() error { panic(New(KindFileNotFound, "gone")) })
	})
	_, ok = r.(*Panic)
	require.True(t, ok)
	assert.Len(t, logger.msgs, 1)
}

func TestLogPanic_NormalCompletionLogsNothing(t *testing.T) {
	withReportHook(t)
	logger := &recordingLogger{}

	ran := false
	LogPanic(logger, func() error {
		ran = true
		return nil
	})
	assert.True(t, ran)
	assert.Empty(t, logger.msgs)
	assert.True(t, ReportHookActive())
}

func TestLogPanic_AssertionIsNotLogged(t *testing.T) {
	withReportHook(t)
	logger := &recordingLogger{}

	r := catchPanic(func() {
		LogPanic(logger, func() error {
			Assert(false, "bug")
			return nil
		})
	})
	_, ok := r.(*AssertionError)
	assert.True(t, ok)
	assert.Empty(t, logger.msgs)
}

func TestLogPanic_SuspendsReportHook(t *testing.T) {
	withReportHook(t)
	require.True(t, ReportHookActive())

	var during bool
	calls := 0
	logger := LoggerFunc(func(string) { calls++ })

	catchPanic(func() {
		LogPanic(logger, func() error {
			during = ReportHookActive()
			return errors.New("fail")
		})
	})

	assert.False(t, during, "hook must be suspended inside the block")
	assert.True(t, ReportHookActive(), "hook must be restored afterwards")
	assert.Equal(t, 1, calls)
}

func TestZerologLogger_Critical(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))
	logger.Critical("  pkg.fn file.go:1\nPanic: key: k")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fatal", entry["level"])
	assert.Equal(t, true, entry["panic"])
	assert.Equal(t, "  pkg.fn file.go:1\nPanic: key: k", entry["message"])
}
