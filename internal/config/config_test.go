package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortDefault(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.Equal(t, ":8080", Port())

	t.Setenv("APP_PORT", ":9000")
	assert.Equal(t, ":9000", Port())
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
}

func TestNewSession(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SESSION_SWEEP_INTERVAL", "15s")

	s, err := NewSession()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, s.TTL)
	assert.Equal(t, 15*time.Second, s.SweepInterval)
}

func TestNewSessionRejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	_, err := NewSession()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "-1m")
	_, err = NewSession()
	assert.Error(t, err)
}

func TestNewWebSocket(t *testing.T) {
	t.Setenv("WS_TICK_INTERVAL", "250ms")
	ws, err := NewWebSocket()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, ws.TickInterval)
}

func TestEngineLogging(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "engine.log"))

	log := logrus.New()
	require.NoError(t, EngineLogging(log))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.Len(t, log.Hooks[logrus.WarnLevel], 1)

	t.Setenv("LOG_LEVEL", "loud")
	assert.Error(t, EngineLogging(logrus.New()))
}
