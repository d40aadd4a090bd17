package tidylog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dumpNode struct {
	Name string
	Next *dumpNode
}

func TestDump(t *testing.T) {
	t.Run("struct fields", func(t *testing.T) {
		opts := fileOptions(t, "run.log")
		l, _ := newTestLogger(t, opts)

		type payload struct {
			Host string
			Port int
			Tags []string
		}
		l.Dump(payload{Host: "localhost", Port: 8080, Tags: []string{"a", "b"}})

		lines := readLogLines(t, logFilePath(opts))
		require.NotEmpty(t, lines)

		var messages []string
		for _, line := range lines {
			messages = append(messages, line["message"].(string))
		}
		assert.Contains(t, messages, "Struct: payload")
		assert.Contains(t, messages, "Host: localhost")
		assert.Contains(t, messages, "Port: 8080")
		assert.Contains(t, messages, "Tags[0]: a")
	})

	t.Run("map elements", func(t *testing.T) {
		opts := fileOptions(t, "run.log")
		l, _ := newTestLogger(t, opts)

		l.Dump(map[string]int{"answer": 42})

		var messages []string
		for _, line := range readLogLines(t, logFilePath(opts)) {
			messages = append(messages, line["message"].(string))
		}
		assert.Contains(t, messages, "[answer]: 42")
	})

	t.Run("nil value", func(t *testing.T) {
		opts := fileOptions(t, "run.log")
		l, _ := newTestLogger(t, opts)

		l.Dump(nil)

		lines := readLogLines(t, logFilePath(opts))
		require.Len(t, lines, 1)
		assert.Equal(t, "Dump: <nil>", lines[0]["message"])
	})

	t.Run("pointer cycle terminates", func(t *testing.T) {
		opts := fileOptions(t, "run.log")
		l, _ := newTestLogger(t, opts)

		a := &dumpNode{Name: "a"}
		b := &dumpNode{Name: "b", Next: a}
		a.Next = b

		l.Dump(a)

		var sawCycle bool
		for _, line := range readLogLines(t, logFilePath(opts)) {
			if msg, ok := line["message"].(string); ok && strings.HasSuffix(msg, "<circular reference>") {
				sawCycle = true
			}
		}
		assert.True(t, sawCycle)
	})

	t.Run("dropped below file threshold", func(t *testing.T) {
		opts := fileOptions(t, "run.log")
		opts.FileLevel = LevelInfo
		l, _ := newTestLogger(t, opts)

		l.Dump(struct{ X int }{X: 1})

		lines := readLogLines(t, logFilePath(opts))
		assert.Empty(t, lines)
	})

	t.Run("closed logger is a no-op", func(t *testing.T) {
		opts := fileOptions(t, "run.log")
		l, _ := newTestLogger(t, opts)
		require.NoError(t, l.Close())

		l.Dump(struct{ X int }{X: 1})
	})
}
