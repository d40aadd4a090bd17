package tidylog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolveNow = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.Local)

func resolveAt(t *testing.T, name any, addDateSuffix bool) FileSpec {
	t.Helper()
	spec, err := resolvePathAt(name, addDateSuffix, resolveNow, posixNamePolicy{})
	require.NoError(t, err)
	return spec
}

func TestResolvePathDefaults(t *testing.T) {
	t.Run("absent name with date suffix", func(t *testing.T) {
		spec := resolveAt(t, nil, true)
		assert.Equal(t, "log_20240102", spec.Stem)
		assert.Equal(t, ".log", spec.Ext)
		assert.Equal(t, "", spec.Dir)
		assert.Equal(t, "log_20240102.log", spec.Path())
	})

	t.Run("absent name without date suffix", func(t *testing.T) {
		spec := resolveAt(t, nil, false)
		assert.Equal(t, "log", spec.Stem)
		assert.Equal(t, ".log", spec.Ext)
		assert.Equal(t, "", spec.Dir)
	})

	t.Run("nil string pointer counts as absent", func(t *testing.T) {
		var name *string
		spec := resolveAt(t, name, false)
		assert.Equal(t, "log.log", spec.Path())
	})
}

func TestResolvePathNames(t *testing.T) {
	t.Run("name without extension gains suffix and default extension", func(t *testing.T) {
		spec := resolveAt(t, "test_log", true)
		assert.Equal(t, "test_log_20240102", spec.Stem)
		assert.Equal(t, ".log", spec.Ext)
		assert.Equal(t, "", spec.Dir)
	})

	t.Run("name without extension and no suffix", func(t *testing.T) {
		spec := resolveAt(t, "test_log", false)
		assert.Equal(t, "test_log", spec.Stem)
		assert.Equal(t, ".log", spec.Ext)
	})

	t.Run("explicit extension is preserved with suffix", func(t *testing.T) {
		spec := resolveAt(t, "test_log.txt", true)
		assert.Equal(t, "test_log_20240102", spec.Stem)
		assert.Equal(t, ".txt", spec.Ext)
	})

	t.Run("explicit extension is preserved without suffix", func(t *testing.T) {
		spec := resolveAt(t, "test_log.txt", false)
		assert.Equal(t, "test_log", spec.Stem)
		assert.Equal(t, ".txt", spec.Ext)
	})

	t.Run("parent directory passes through unchanged", func(t *testing.T) {
		spec := resolveAt(t, "parent_dir/test_log.txt", true)
		assert.Equal(t, "parent_dir", spec.Dir)
		assert.Equal(t, "test_log_20240102", spec.Stem)
		assert.Equal(t, ".txt", spec.Ext)
		assert.Equal(t, "parent_dir/test_log_20240102.txt", spec.Path())
	})

	t.Run("nested parent directories", func(t *testing.T) {
		spec := resolveAt(t, "a/b/c/run", false)
		assert.Equal(t, "a/b/c", spec.Dir)
		assert.Equal(t, "run", spec.Stem)
		assert.Equal(t, ".log", spec.Ext)
	})

	t.Run("string pointer", func(t *testing.T) {
		name := "ptr_log.txt"
		spec := resolveAt(t, &name, false)
		assert.Equal(t, "ptr_log.txt", spec.Path())
	})

	t.Run("dotfile keeps its name", func(t *testing.T) {
		spec := resolveAt(t, ".hidden", false)
		assert.Equal(t, ".hidden", spec.Stem)
		assert.Equal(t, ".log", spec.Ext)
	})
}

func TestResolvePathInvalidNames(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"null byte", "bad\x00name.log"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolvePathAt(tc.input, true, resolveNow, posixNamePolicy{})
			require.Error(t, err)

			var nameErr *InvalidNameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, tc.input, nameErr.Name)
		})
	}
}

func TestResolvePathInvalidTypes(t *testing.T) {
	for _, input := range []any{42, 3.14, []byte("log"), struct{}{}} {
		_, err := resolvePathAt(input, true, resolveNow, posixNamePolicy{})
		require.Error(t, err)

		var typeErr *InvalidTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, input, typeErr.Value)
	}
}

func TestResolvePathUsesCurrentDate(t *testing.T) {
	today := time.Now().Format("20060102")

	spec, err := ResolvePath(nil, true)
	require.NoError(t, err)
	assert.Equal(t, "log_"+today, spec.Stem)
	assert.Equal(t, ".log", spec.Ext)
}
