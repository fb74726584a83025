package xgxresult

import "github.com/rs/zerolog"

// Logger is the collaborator LogPanic reports to.
type Logger interface {
	Critical(msg string)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(msg string)

// Critical calls f(msg).
func (f LoggerFunc) Critical(msg string) { f(msg) }

// ZerologLogger logs critical messages through a zerolog.Logger. zerolog has
// no critical level; messages go out at fatal level via WithLevel, which does
// not exit the process.
type ZerologLogger struct {
	zlog zerolog.Logger
}

// NewZerologLogger returns a Logger writing to zlog.
func NewZerologLogger(zlog zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{zlog: zlog}
}

// Critical writes msg with a panic=true marker field.
func (l *ZerologLogger) Critical(msg string) {
	l.zlog.WithLevel(zerolog.FatalLevel).Bool("panic", true).Msg(msg)
}

// LogPanic runs block with no failure treated as expected: anything block
// raises or returns escalates as a *Panic. A *Panic leaving the block is
// logged once through logger.Critical with its Trace, then re-panicked. The
// report hook is suspended for the duration and restored on every path.
// Normal completion logs nothing.
func LogPanic(logger Logger, block func() error) {
	restore := SuspendReportHook()
	defer restore()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if p, ok := r.(*Panic); ok {
			logger.Critical(p.Trace())
		}
		panic(r)
	}()

	Gather(func(*Slot[struct{}]) error {
		return block()
	}, WithExpects(), WithNotExpects(KindAny))
}

var (
	_ Logger = LoggerFunc(nil)
	_ Logger = (*ZerologLogger)(nil)
)
