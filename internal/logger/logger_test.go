package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_SilentByDefault(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)

	Debug("hidden %s", "message")

	assert.Empty(t, buf.String())
}

func TestDebug_PrintsWhenVerbose(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Debug("resolving %q", "apple")

	assert.Contains(t, buf.String(), `[DEBUG] resolving "apple"`)
}

func TestInfoAndWarn_Prefixes(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Info("matched %d words", 2)
	Warn("store error: %v", "boom")

	assert.Contains(t, buf.String(), "[INFO] matched 2 words")
	assert.Contains(t, buf.String(), "[WARN] store error: boom")
}

func TestSection_Header(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Section("Search Resolution")

	assert.Contains(t, buf.String(), "=== Search Resolution ===")
}

func TestIsVerbose(t *testing.T) {
	defer resetLogger()

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}
