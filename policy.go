package tidylog

import (
	"path/filepath"
	"runtime"
	"strings"
)

// namePolicy validates a requested log file name against platform rules.
// It is a pluggable strategy so the Windows rule set can be exercised on
// any platform.
type namePolicy interface {
	validate(name string) error
}

// posixNamePolicy imposes no rules beyond the common checks in the
// resolver; POSIX filesystems accept anything without a null byte.
type posixNamePolicy struct{}

func (posixNamePolicy) validate(string) error { return nil }

// windowsNamePolicy rejects names containing characters Windows forbids in
// file names, and path segments whose stem is a reserved device name.
//
// The character check runs over the whole joined string, separators
// included, which means any name with a parent directory fails it before
// the per-segment reserved-name walk runs. That matches the rule set this
// library inherits; the reserved-name walk is kept for single-segment
// names such as "aux.log".
type windowsNamePolicy struct{}

const windowsForbiddenChars = `<>:"/\|?*`

var windowsReservedNames = func() map[string]struct{} {
	names := []string{"CON", "PRN", "AUX", "NUL"}
	for i := '1'; i <= '9'; i++ {
		names = append(names, "COM"+string(i), "LPT"+string(i))
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()

func (windowsNamePolicy) validate(name string) error {
	if strings.ContainsAny(name, windowsForbiddenChars) {
		return &InvalidNameError{Name: name, Reason: errMsgInvalidChars}
	}
	for _, part := range pathSegments(name) {
		stem := strings.TrimSuffix(part, filepath.Ext(part))
		if _, ok := windowsReservedNames[strings.ToUpper(stem)]; ok {
			return &InvalidNameError{Name: name, Reason: errMsgReservedName}
		}
	}
	return nil
}

// pathSegments splits on both separator styles; the policy must see the
// same segments regardless of how the caller wrote the path.
func pathSegments(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

func policyForGOOS(goos string) namePolicy {
	if goos == "windows" {
		return windowsNamePolicy{}
	}
	return posixNamePolicy{}
}

var defaultNamePolicy = policyForGOOS(runtime.GOOS)
