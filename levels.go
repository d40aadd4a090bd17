package tidylog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Level names accepted by Options. They map onto zerolog's levels;
// LevelCritical is emitted at zerolog's fatal severity without terminating
// the process.
const (
	LevelDebug    = "debug"
	LevelInfo     = "info"
	LevelWarning  = "warning"
	LevelError    = "error"
	LevelCritical = "critical"
)

// parseLevel parses a string log level into a zerolog.Level. It accepts
// the warn/warning and critical/fatal spellings interchangeably.
func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo:
		return zerolog.InfoLevel, nil
	case "warn", LevelWarning:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	case LevelCritical, "fatal":
		return zerolog.FatalLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
}

func minLevel(a, b zerolog.Level) zerolog.Level {
	if a < b {
		return a
	}
	return b
}
