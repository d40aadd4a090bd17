package tidylog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsNamePolicy(t *testing.T) {
	policy := windowsNamePolicy{}

	t.Run("forbidden characters", func(t *testing.T) {
		for _, name := range []string{
			"inva|id:log*name?.log",
			"what<now>.log",
			`quo"ted.log`,
			"boa/null/aux.log", // separators are part of the blocklist
			`back\slash.log`,
		} {
			err := policy.validate(name)
			require.Error(t, err, name)

			var nameErr *InvalidNameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, errMsgInvalidChars, nameErr.Reason)
		}
	})

	t.Run("reserved device names", func(t *testing.T) {
		for _, name := range []string{"aux.log", "CON", "nul.txt", "com7", "LPT9.log", "Prn.log"} {
			err := policy.validate(name)
			require.Error(t, err, name)

			var nameErr *InvalidNameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, errMsgReservedName, nameErr.Reason)
		}
	})

	t.Run("accepts ordinary names", func(t *testing.T) {
		for _, name := range []string{"app.log", "console.log", "lpt0.log", "com10.log", "auxiliary.log"} {
			assert.NoError(t, policy.validate(name), name)
		}
	})
}

func TestPosixNamePolicy(t *testing.T) {
	policy := posixNamePolicy{}
	for _, name := range []string{"aux.log", "weird|name?.log", "parent/child.log"} {
		assert.NoError(t, policy.validate(name), name)
	}
}

func TestPolicyForGOOS(t *testing.T) {
	assert.IsType(t, windowsNamePolicy{}, policyForGOOS("windows"))
	assert.IsType(t, posixNamePolicy{}, policyForGOOS("linux"))
	assert.IsType(t, posixNamePolicy{}, policyForGOOS("darwin"))
}

func TestResolvePathWithWindowsPolicy(t *testing.T) {
	now := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local)

	for _, name := range []string{"boa/null/aux.log", "inva|id:log*name?.log", "nul.log"} {
		_, err := resolvePathAt(name, true, now, windowsNamePolicy{})

		var nameErr *InvalidNameError
		require.True(t, errors.As(err, &nameErr), name)
	}

	// the same names pass the posix policy (minus null bytes and emptiness)
	_, err := resolvePathAt("boa/null/aux.log", true, now, posixNamePolicy{})
	require.NoError(t, err)
}
