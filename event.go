package tidylog

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FieldLogger is the structured-logging surface shared by Logger and the
// derived context loggers produced by With().
type FieldLogger interface {
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarningWith() LogEvent
	ErrorWith() LogEvent
	CriticalWith() LogEvent
	With() LogContext
}

// LogEvent is a fluent builder for one structured log entry. All methods
// are safe on a disabled event; the entry is emitted by Msg, Msgf or Send.
type LogEvent interface {
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Uint64(key string, val uint64) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Interface(key string, val interface{}) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// LogContext is a fluent builder for a child logger whose fields are
// included in every entry it emits.
type LogContext interface {
	Str(key, val string) LogContext
	Int(key string, val int) LogContext
	Int64(key string, val int64) LogContext
	Float64(key string, val float64) LogContext
	Bool(key string, val bool) LogContext
	Time(key string, val time.Time) LogContext
	Err(err error) LogContext
	Interface(key string, val interface{}) LogContext
	Logger() FieldLogger
}

// logEvent implements LogEvent over a zerolog.Event; a nil event makes it
// a no-op.
type logEvent struct {
	event *zerolog.Event
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Uint64(key string, val uint64) LogEvent {
	if e.event != nil {
		e.event.Uint64(key, val)
	}
	return e
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

func (e *logEvent) Err(err error) LogEvent {
	if e.event != nil {
		e.event.Err(err)
		addErrorChain(e.event, "error", err)
	}
	return e
}

func (e *logEvent) AnErr(key string, err error) LogEvent {
	if e.event != nil {
		e.event.AnErr(key, err)
		addErrorChain(e.event, key, err)
	}
	return e
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	if e.event != nil {
		e.event.Send()
	}
}

// addErrorChain enriches an event with the flattened unwrap chain of err:
// the chain outermost-first, the root cause, and a joined history string.
func addErrorChain(event *zerolog.Event, key string, err error) {
	chain := errorChain(err)
	if len(chain) == 0 {
		return
	}
	event.Strs(key+"_chain", chain)
	event.Str(key+"_root", chain[len(chain)-1])
	event.Str(key+"_history", strings.Join(chain, " -> "))
}

// errorChain walks err's unwrap chain and returns the messages, outermost
// first. Depth and repeated messages are bounded to survive cyclic chains.
func errorChain(err error) []string {
	const maxDepth = 50

	var chain []string
	seen := map[string]bool{}
	for err != nil && len(chain) < maxDepth {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}
	return chain
}

// logContext implements LogContext over a zerolog.Context.
type logContext struct {
	context zerolog.Context
	parent  *Logger
}

func (c *logContext) Str(key, val string) LogContext {
	c.context = c.context.Str(key, val)
	return c
}

func (c *logContext) Int(key string, val int) LogContext {
	c.context = c.context.Int(key, val)
	return c
}

func (c *logContext) Int64(key string, val int64) LogContext {
	c.context = c.context.Int64(key, val)
	return c
}

func (c *logContext) Float64(key string, val float64) LogContext {
	c.context = c.context.Float64(key, val)
	return c
}

func (c *logContext) Bool(key string, val bool) LogContext {
	c.context = c.context.Bool(key, val)
	return c
}

func (c *logContext) Time(key string, val time.Time) LogContext {
	c.context = c.context.Time(key, val)
	return c
}

func (c *logContext) Err(err error) LogContext {
	c.context = c.context.Err(err)
	return c
}

func (c *logContext) Interface(key string, val interface{}) LogContext {
	c.context = c.context.Interface(key, val)
	return c
}

func (c *logContext) Logger() FieldLogger {
	logger := c.context.Logger()
	return &contextLogger{logger: &logger, parent: c.parent}
}

// contextLogger is a child logger carrying pre-populated fields. It
// delegates lifecycle state to its parent so events stop once the parent
// is closed.
type contextLogger struct {
	logger *zerolog.Logger
	parent *Logger
}

func (cl *contextLogger) eventAt(level zerolog.Level) LogEvent {
	if cl.parent.active() == nil {
		return newLogEvent(nil)
	}
	if cl.logger.GetLevel() > level {
		return newLogEvent(nil)
	}
	return newLogEvent(cl.logger.WithLevel(level))
}

func (cl *contextLogger) DebugWith() LogEvent    { return cl.eventAt(zerolog.DebugLevel) }
func (cl *contextLogger) InfoWith() LogEvent     { return cl.eventAt(zerolog.InfoLevel) }
func (cl *contextLogger) WarningWith() LogEvent  { return cl.eventAt(zerolog.WarnLevel) }
func (cl *contextLogger) ErrorWith() LogEvent    { return cl.eventAt(zerolog.ErrorLevel) }
func (cl *contextLogger) CriticalWith() LogEvent { return cl.eventAt(zerolog.FatalLevel) }

func (cl *contextLogger) With() LogContext {
	if cl.parent.active() == nil {
		return &noopLogContext{}
	}
	return &logContext{context: cl.logger.With(), parent: cl.parent}
}

// noopLogContext is returned once a logger is closed.
type noopLogContext struct{}

func (n *noopLogContext) Str(key, val string) LogContext             { return n }
func (n *noopLogContext) Int(key string, val int) LogContext         { return n }
func (n *noopLogContext) Int64(key string, val int64) LogContext     { return n }
func (n *noopLogContext) Float64(key string, val float64) LogContext { return n }
func (n *noopLogContext) Bool(key string, val bool) LogContext       { return n }
func (n *noopLogContext) Time(key string, val time.Time) LogContext  { return n }
func (n *noopLogContext) Err(err error) LogContext                   { return n }
func (n *noopLogContext) Interface(key string, val interface{}) LogContext {
	return n
}
func (n *noopLogContext) Logger() FieldLogger { return &noopLogger{} }

// noopLogger never emits anything.
type noopLogger struct{}

func (n *noopLogger) DebugWith() LogEvent    { return newLogEvent(nil) }
func (n *noopLogger) InfoWith() LogEvent     { return newLogEvent(nil) }
func (n *noopLogger) WarningWith() LogEvent  { return newLogEvent(nil) }
func (n *noopLogger) ErrorWith() LogEvent    { return newLogEvent(nil) }
func (n *noopLogger) CriticalWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) With() LogContext       { return &noopLogContext{} }
