package tidylog

import (
	"path/filepath"
	"strings"
	"time"
)

// FileSpec is a resolved log file destination: parent directory, stem and
// extension. It is computed once at construction and immutable afterwards.
type FileSpec struct {
	Dir  string
	Stem string
	Ext  string
}

// Path joins the spec back into a platform path. A spec with no parent
// directory yields a path relative to the current directory.
func (s FileSpec) Path() string {
	name := s.Stem + s.Ext
	if s.Dir == emptyString {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// ResolvePath validates and normalizes a requested log file name using the
// local calendar date and the current platform's name rules.
//
// name may be nil (use the default name), a string, or a *string; any
// other type fails with *InvalidTypeError. Empty or whitespace-only names,
// names with a null byte, and names the platform policy forbids fail with
// *InvalidNameError.
//
// When addDateSuffix is set, the stem gains a _YYYYMMDD token before the
// extension. A missing extension always defaults to DefaultFileExt; an
// explicit extension is preserved untouched. The parent directory, if any,
// passes through unchanged.
func ResolvePath(name any, addDateSuffix bool) (FileSpec, error) {
	return resolvePathAt(name, addDateSuffix, time.Now(), defaultNamePolicy)
}

func resolvePathAt(name any, addDateSuffix bool, now time.Time, policy namePolicy) (FileSpec, error) {
	dateSuffix := now.Format(dateLayout)

	raw, given, err := fileNameString(name)
	if err != nil {
		return FileSpec{}, err
	}

	if !given {
		spec := FileSpec{Stem: DefaultFileStem, Ext: DefaultFileExt}
		if addDateSuffix {
			spec.Stem = DefaultFileStem + "_" + dateSuffix
		}
		return spec, nil
	}

	if strings.TrimSpace(raw) == emptyString {
		return FileSpec{}, &InvalidNameError{Name: raw, Reason: errMsgEmptyName}
	}
	if strings.ContainsRune(raw, '\x00') {
		return FileSpec{}, &InvalidNameError{Name: raw, Reason: errMsgNullByte}
	}
	if err := policy.validate(raw); err != nil {
		return FileSpec{}, err
	}

	dir := filepath.Dir(raw)
	if dir == "." {
		dir = emptyString
	}
	base := filepath.Base(raw)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == emptyString && ext != emptyString {
		// dotfiles like ".profile" have a stem and no extension
		stem, ext = ext, emptyString
	}

	if addDateSuffix {
		stem += "_" + dateSuffix
	}
	if ext == emptyString {
		ext = DefaultFileExt
	}

	return FileSpec{Dir: dir, Stem: stem, Ext: ext}, nil
}

// fileNameString narrows the accepted file name types. The second return
// reports whether a name was actually supplied.
func fileNameString(name any) (string, bool, error) {
	switch v := name.(type) {
	case nil:
		return emptyString, false, nil
	case string:
		return v, true, nil
	case *string:
		if v == nil {
			return emptyString, false, nil
		}
		return *v, true, nil
	default:
		return emptyString, false, &InvalidTypeError{Value: name}
	}
}
