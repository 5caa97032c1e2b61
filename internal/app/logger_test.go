package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("warn", "text", &buf)

	logger.Info("too quiet")
	logger.Warn("loud enough")

	out := buf.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, "loud enough")
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("shout", "text", &buf)

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("info", "json", &buf)

	logger.Info("structured", "key", "val")

	line := strings.TrimSpace(buf.String())
	require.True(t, strings.HasPrefix(line, "{"), "json handler must emit objects, got %q", line)
	assert.Contains(t, line, `"msg":"structured"`)
	assert.Contains(t, line, `"key":"val"`)
}

func TestNewLogger_TextFormatWithoutColorForBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("info", "text", &buf)

	logger.Info("plain")

	out := buf.String()
	assert.Contains(t, out, "plain")
	assert.NotContains(t, out, "\x1b[", "non-terminal writers must not receive ANSI color")
}

func TestWriterIsTerminal_FalseForBuffer(t *testing.T) {
	t.Parallel()

	assert.False(t, writerIsTerminal(&bytes.Buffer{}))
}
