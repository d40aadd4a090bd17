package tidylog

import "fmt"

// InvalidNameError reports a requested log file name rejected by the path
// resolver: empty or whitespace-only names, names containing a null byte,
// or names the platform's rules forbid.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid log file name %q: %s", e.Name, e.Reason)
}

// InvalidTypeError reports a file name value that is neither absent nor a
// string. Options.FileName accepts nil, string and *string only.
type InvalidTypeError struct {
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("file name must be nil, string or *string, got %T", e.Value)
}
