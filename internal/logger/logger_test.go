package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactsCredentials(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Info("configured", "api_key", "sk-123", "Authorization", "Bearer x", "input_tokens", 42, "model", "m")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["api_key"])
	assert.Equal(t, redacted, fields["Authorization"])
	assert.EqualValues(t, 42, fields["input_tokens"])
	assert.Equal(t, "m", fields["model"])
}

func TestWithRedacts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With("secret", "s3cr3t")

	log.Warn("x")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, redacted, logs.All()[0].ContextMap()["secret"])
}

func TestOddKeyValues(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}

func TestNewEmptyPathIsNop(t *testing.T) {
	log, err := New("", "info")
	require.NoError(t, err)
	log.Info("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aula.log")
	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Debug("hello", "token", "abc")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"hello"`), string(data))
	assert.NotContains(t, string(data), "abc")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
