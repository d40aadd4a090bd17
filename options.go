package tidylog

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FileMode selects how the log file is opened.
type FileMode string

const (
	// ModeAppend appends to an existing log file.
	ModeAppend FileMode = "append"
	// ModeOverwrite truncates the log file at construction.
	ModeOverwrite FileMode = "overwrite"
)

// Options configures a Logger. Start from DefaultOptions and override what
// you need; New fills zero-valued fields with the same defaults, except
// AddDateSuffix, whose false zero value is meaningful.
type Options struct {
	// FileName is the requested log file destination: nil for the default
	// name, otherwise a string or *string. Other types are rejected with
	// *InvalidTypeError.
	FileName any
	FileMode FileMode `validate:"oneof=append overwrite"`

	// ConsoleLevel and FileLevel are independent per-sink thresholds. The
	// underlying logger runs at the lower of the two.
	ConsoleLevel string `validate:"oneof=trace debug info warn warning error critical fatal"`
	FileLevel    string `validate:"oneof=trace debug info warn warning error critical fatal"`

	// Name keys the process-wide logger registry. Constructing twice under
	// one name reuses the first construction's sinks.
	Name string

	// AddDateSuffix inserts a _YYYYMMDD token before the file extension.
	AddDateSuffix bool

	// UseRotation swaps the plain file sink for a size-based rotating one.
	UseRotation bool
	MaxBytes    int `validate:"min=1"`
	// BackupCount bounds the rotated files retained, oldest discarded
	// first. Zero keeps all of them.
	BackupCount int `validate:"min=0"`
}

// DefaultOptions returns the documented defaults: append mode, console at
// info, file at debug, date suffix on, rotation off at 100 MiB with 10
// backups.
func DefaultOptions() Options {
	return Options{
		FileMode:      ModeAppend,
		ConsoleLevel:  LevelInfo,
		FileLevel:     LevelDebug,
		Name:          DefaultLoggerName,
		AddDateSuffix: true,
		MaxBytes:      DefaultMaxBytes,
		BackupCount:   DefaultBackupCount,
	}
}

func (o *Options) normalize() {
	if o.FileMode == emptyString {
		o.FileMode = ModeAppend
	}
	if o.ConsoleLevel == emptyString {
		o.ConsoleLevel = LevelInfo
	}
	if o.FileLevel == emptyString {
		o.FileLevel = LevelDebug
	}
	if o.Name == emptyString {
		o.Name = DefaultLoggerName
	}
	if o.MaxBytes == 0 {
		o.MaxBytes = DefaultMaxBytes
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validateOptions(opts *Options) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("%s: %w", errMsgOptionsInvalid, err)
	}
	return nil
}
