package tidylog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	sinkConsole = "console"
	sinkFile    = "file"
)

// sink is one attached output: a writer plus its severity threshold and
// best-effort flush/close hooks. The console sink leaves both hooks nil so
// releasing it never touches the process stderr.
type sink struct {
	kind      string
	threshold zerolog.Level
	writer    io.Writer
	flush     func() error
	close     func() error
}

// sinkCloseResult records the flush/close outcome for one sink. Close
// discards these; they exist so the per-sink outcomes stay observable.
type sinkCloseResult struct {
	sink     *sink
	flushErr error
	closeErr error
}

// release flushes then closes the sink. Nothing is swallowed here; the
// caller decides what to do with the outcome.
func (s *sink) release() sinkCloseResult {
	res := sinkCloseResult{sink: s}
	if s.flush != nil {
		res.flushErr = s.flush()
	}
	if s.close != nil {
		res.closeErr = s.close()
	}
	return res
}

// leveledWriter drops lines below its sink's threshold. The logger itself
// runs at the minimum of the two sink levels, so each sink still needs its
// own filter on top.
type leveledWriter struct {
	w         io.Writer
	threshold zerolog.Level
}

func (lw leveledWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw leveledWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < lw.threshold {
		return len(p), nil
	}
	return lw.w.Write(p)
}

// newConsoleSink builds the stderr sink: colorized only when stderr is an
// interactive terminal, with continuation lines of multi-line messages
// indented under the message start.
func newConsoleSink(threshold zerolog.Level) *sink {
	out := os.Stderr
	cw := zerolog.ConsoleWriter{
		Out:           out,
		TimeFormat:    consoleTimeFormat,
		NoColor:       !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()),
		FormatMessage: formatIndentedMessage,
	}
	return &sink{kind: sinkConsole, threshold: threshold, writer: cw}
}

func formatIndentedMessage(i interface{}) string {
	msg, ok := i.(string)
	if !ok {
		if i == nil {
			return emptyString
		}
		return fmt.Sprintf("%v", i)
	}
	return strings.ReplaceAll(msg, "\n", "\n"+messageIndent)
}

// newFileSink opens the file sink at path in the requested mode, size-based
// rotating when opts.UseRotation is set. The file is created up front in
// both variants so the destination exists as soon as construction succeeds.
func newFileSink(path string, opts *Options, threshold zerolog.Level) (*sink, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if opts.FileMode == ModeOverwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if !opts.UseRotation {
		return &sink{
			kind:      sinkFile,
			threshold: threshold,
			writer:    zerolog.SyncWriter(f),
			flush:     f.Sync,
			close:     f.Close,
		}, nil
	}

	// lumberjack opens lazily and always appends; the eager open above
	// already created (and, in overwrite mode, truncated) the file.
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB(opts.MaxBytes),
		MaxBackups: opts.BackupCount,
	}
	return &sink{kind: sinkFile, threshold: threshold, writer: lj, close: lj.Close}, nil
}

// maxSizeMB converts a byte budget to lumberjack's whole-megabyte unit,
// rounding up; sub-megabyte budgets get the 1 MiB floor.
func maxSizeMB(maxBytes int) int {
	const mib = 1024 * 1024
	mb := (maxBytes + mib - 1) / mib
	if mb < 1 {
		mb = 1
	}
	return mb
}
