package tidylog

const (
	// DefaultFileStem is the log file stem used when no file name is given.
	DefaultFileStem = "log"
	// DefaultFileExt is applied when the requested name has no extension.
	DefaultFileExt = ".log"
	// DefaultLoggerName keys the registry when Options.Name is empty.
	DefaultLoggerName = "tidylog"

	// DefaultMaxBytes is the rotation size threshold (100 MiB).
	DefaultMaxBytes = 100 * 1024 * 1024
	// DefaultBackupCount is the number of rotated files retained.
	DefaultBackupCount = 10

	dateLayout        = "20060102"
	consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"
	messageIndent     = "    "
	emptyString       = ""
)

const (
	errMsgEmptyName      = "file name cannot be empty"
	errMsgNullByte       = "file name contains a null byte"
	errMsgInvalidChars   = "file name contains characters invalid in Windows paths"
	errMsgReservedName   = "path contains a reserved Windows device name component"
	errMsgOptionsInvalid = "logger options are invalid"
)
