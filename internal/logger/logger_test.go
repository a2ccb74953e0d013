package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestLogger_SilentByDefault(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
	assert.False(t, IsVerbose())
}

func TestLogger_Verbose(t *testing.T) {
	buf := capture(t, true)

	Debug("filter state=%q", "Delhi")
	Info("opening %s", "e-District Delhi")
	Warn("config reload failed")

	assert.True(t, IsVerbose())
	assert.Equal(t,
		"[DEBUG] filter state=\"Delhi\"\n[INFO] opening e-District Delhi\n[WARN] config reload failed\n",
		buf.String())
}
