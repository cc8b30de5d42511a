package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLogger(buf *bytes.Buffer, level string) *ConsoleLogger {
	l := NewConsoleLogger(buf, level)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "debug")

	l.Debugf("resolved %d targets", 3)

	assert.Equal(t, "[03:04:05] [DEBUG] resolved 3 targets\n", buf.String())
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "warn")

	l.Tracef("t")
	l.Debugf("d")
	l.Infof("i")
	l.Warnf("w")
	l.Errorf("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[WARN] w")
	assert.Contains(t, lines[1], "[ERROR] e")
	assert.False(t, l.Enabled("debug"))
	assert.True(t, l.Enabled("error"))
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	l := NewConsoleLogger(nil, "trace")
	assert.NotPanics(t, func() { l.Errorf("dropped") })
	assert.False(t, l.Enabled("error"))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"":        "warn",
		"DEBUG":   "debug",
		" info ":  "info",
		"warning": "warn",
		"trace":   "trace",
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	var l Logger = Nop()
	assert.NotPanics(t, func() { l.Debugf("x %d", 1) })
}
