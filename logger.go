package tidylog

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Logger is a named logging facade that emits to a console sink and a file
// sink, each with its own severity threshold. Instances sharing a name
// share one sink set through the registry; Close releases that set.
type Logger struct {
	name     string
	registry *Registry

	logger      atomic.Pointer[zerolog.Logger]
	initialized atomic.Bool
}

// sprintPool backs the fmt.Sprint-style leveled calls to reduce allocations.
var sprintPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// New builds a Logger from opts against the process-wide registry.
//
// If a logger with attached sinks is already registered under the
// effective name, the existing sinks are reused and no filesystem side
// effect happens; otherwise the file path is resolved, missing parent
// directories are created, and both sinks are opened and attached.
// Construction either fully succeeds or fails with no partial state.
func New(opts Options) (*Logger, error) {
	return NewWithRegistry(opts, DefaultRegistry())
}

// NewWithRegistry is New with an explicit registry, for callers that need
// isolated logger namespaces.
func NewWithRegistry(opts Options, registry *Registry) (*Logger, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}

	opts.normalize()
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	consoleLevel, err := parseLevel(opts.ConsoleLevel)
	if err != nil {
		return nil, fmt.Errorf("console level: %w", err)
	}
	fileLevel, err := parseLevel(opts.FileLevel)
	if err != nil {
		return nil, fmt.Errorf("file level: %w", err)
	}

	entry, err := registry.acquire(opts.Name, func() (*registryEntry, error) {
		return buildEntry(&opts, consoleLevel, fileLevel)
	})
	if err != nil {
		return nil, err
	}

	l := &Logger{name: opts.Name, registry: registry}
	logger := entry.logger
	l.logger.Store(&logger)
	l.initialized.Store(true)
	return l, nil
}

// buildEntry performs the construction side effects: path resolution,
// parent directory creation, sink opening and logger wiring. It runs only
// when the name has no attached sinks, and path resolution runs before any
// filesystem change.
func buildEntry(opts *Options, consoleLevel, fileLevel zerolog.Level) (*registryEntry, error) {
	spec, err := ResolvePath(opts.FileName, opts.AddDateSuffix)
	if err != nil {
		return nil, err
	}

	if spec.Dir != emptyString {
		if err := os.MkdirAll(spec.Dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	fileSink, err := newFileSink(spec.Path(), opts, fileLevel)
	if err != nil {
		return nil, err
	}
	consoleSink := newConsoleSink(consoleLevel)

	mw := zerolog.MultiLevelWriter(
		leveledWriter{w: fileSink.writer, threshold: fileSink.threshold},
		leveledWriter{w: consoleSink.writer, threshold: consoleSink.threshold},
	)

	logger := zerolog.New(mw).
		Level(minLevel(consoleLevel, fileLevel)).
		With().Timestamp().Str("logger", opts.Name).
		Logger()

	return &registryEntry{logger: logger, sinks: []*sink{fileSink, consoleSink}}, nil
}

// Name returns the registry name this logger is attached under.
func (l *Logger) Name() string { return l.name }

// Close flushes, closes and detaches every sink registered under this
// logger's name. Per-sink failures are swallowed so one failing sink
// cannot keep the others attached. Safe to call repeatedly; afterwards the
// name can be initialized again with fresh sinks.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.closeSinks()
	return nil
}

// closeSinks releases the sink set and returns the per-sink outcomes that
// Close discards.
func (l *Logger) closeSinks() []sinkCloseResult {
	l.initialized.Store(false)

	sinks := l.registry.detach(l.name)
	results := make([]sinkCloseResult, 0, len(sinks))
	for _, s := range sinks {
		results = append(results, s.release())
	}
	return results
}

func (l *Logger) active() *zerolog.Logger {
	if l == nil || !l.initialized.Load() {
		return nil
	}
	return l.logger.Load()
}

func (l *Logger) print(level zerolog.Level, args ...interface{}) {
	logger := l.active()
	if logger == nil {
		return
	}

	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	fmt.Fprint(buf, args...)
	logger.WithLevel(level).Msg(buf.String())
}

func (l *Logger) printf(level zerolog.Level, format string, args ...interface{}) {
	logger := l.active()
	if logger == nil {
		return
	}
	logger.WithLevel(level).Msgf(format, args...)
}

// Debug logs its arguments, fmt.Sprint style, at debug severity.
func (l *Logger) Debug(args ...interface{}) { l.print(zerolog.DebugLevel, args...) }

// Debugf logs a formatted message at debug severity.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(zerolog.DebugLevel, format, args...)
}

// Info logs its arguments, fmt.Sprint style, at info severity.
func (l *Logger) Info(args ...interface{}) { l.print(zerolog.InfoLevel, args...) }

// Infof logs a formatted message at info severity.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(zerolog.InfoLevel, format, args...)
}

// Warning logs its arguments, fmt.Sprint style, at warn severity.
func (l *Logger) Warning(args ...interface{}) { l.print(zerolog.WarnLevel, args...) }

// Warningf logs a formatted message at warn severity.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.printf(zerolog.WarnLevel, format, args...)
}

// Error logs its arguments, fmt.Sprint style, at error severity.
func (l *Logger) Error(args ...interface{}) { l.print(zerolog.ErrorLevel, args...) }

// Errorf logs a formatted message at error severity.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(zerolog.ErrorLevel, format, args...)
}

// Critical logs its arguments at the highest severity. Unlike zerolog's
// Fatal it does not terminate the process.
func (l *Logger) Critical(args ...interface{}) { l.print(zerolog.FatalLevel, args...) }

// Criticalf logs a formatted message at the highest severity.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(zerolog.FatalLevel, format, args...)
}

// Structured logging methods

func (l *Logger) eventAt(level zerolog.Level) LogEvent {
	logger := l.active()
	if logger == nil {
		return newLogEvent(nil)
	}
	if logger.GetLevel() > level {
		return newLogEvent(nil)
	}
	return newLogEvent(logger.WithLevel(level))
}

// DebugWith returns a LogEvent for structured debug-level logging.
// Example: logger.DebugWith().Str("path", p).Int("count", 5).Msg("scanned")
func (l *Logger) DebugWith() LogEvent { return l.eventAt(zerolog.DebugLevel) }

// InfoWith returns a LogEvent for structured info-level logging.
func (l *Logger) InfoWith() LogEvent { return l.eventAt(zerolog.InfoLevel) }

// WarningWith returns a LogEvent for structured warn-level logging.
func (l *Logger) WarningWith() LogEvent { return l.eventAt(zerolog.WarnLevel) }

// ErrorWith returns a LogEvent for structured error-level logging.
// Example: logger.ErrorWith().Err(err).Str("operation", "open").Msg("failed")
func (l *Logger) ErrorWith() LogEvent { return l.eventAt(zerolog.ErrorLevel) }

// CriticalWith returns a LogEvent for structured highest-severity logging.
func (l *Logger) CriticalWith() LogEvent { return l.eventAt(zerolog.FatalLevel) }

// With returns a LogContext for building a child logger with
// pre-populated fields.
// Example: reqLogger := logger.With().Str("request_id", id).Logger()
func (l *Logger) With() LogContext {
	logger := l.active()
	if logger == nil {
		return &noopLogContext{}
	}
	return &logContext{context: logger.With(), parent: l}
}
