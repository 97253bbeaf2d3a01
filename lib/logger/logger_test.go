package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf, zapcore.WarnLevel)
	l.Info("hidden")
	l.Error("list.delete_at", zap.String("kind", "empty_list"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "list.delete_at")
	assert.Contains(t, out, "empty_list")
}

func TestSetupWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.log")
	cleanup, err := Setup(Config{Level: "debug", File: path, MaxSize: 1})
	require.NoError(t, err)

	L().Info("list.delete_value", zap.Int("value", 42))
	require.NoError(t, cleanup())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "list.delete_value")
	assert.Contains(t, string(b), "logger.initialized")
}

func TestSetupInvalidLevel(t *testing.T) {
	before := L()
	_, err := Setup(Config{Level: "loud"})
	assert.Error(t, err)
	assert.Same(t, before, L())
}

func TestSetIgnoresNil(t *testing.T) {
	before := L()
	Set(nil)
	assert.Same(t, before, L())

	l := zap.NewNop()
	Set(l)
	assert.Same(t, l, L())
	Set(before)
}
