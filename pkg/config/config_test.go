package config

import (
	"testing"
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SIMON_DATABASE_URL", "SIMON_LOG_LEVEL", "SIMON_PLAYER_NAME", "SIMON_DIFFICULTY",
		"SIMON_SOUND", "SIMON_API_PORT", "SIMON_TICK_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("simon", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, log.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, "", cfg.PlayerName)
	assert.Equal(t, types.DifficultyMedium, cfg.Difficulty)
	assert.True(t, cfg.Sound)
	assert.Equal(t, 0, cfg.APIPort)
	assert.Equal(t, 16*time.Millisecond, cfg.TickInterval)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIMON_DATABASE_URL", "memory://")
	t.Setenv("SIMON_DIFFICULTY", "hard")
	t.Setenv("SIMON_SOUND", "false")
	t.Setenv("SIMON_PLAYER_NAME", "ada")
	t.Setenv("SIMON_API_PORT", "9090")

	cfg, err := Load("simon", []string{"-difficulty", "easy", "-log-level", "debug", "-tick-interval", "5ms"})
	require.NoError(t, err)
	assert.Equal(t, "memory://", cfg.DatabaseURL)
	assert.Equal(t, types.DifficultyEasy, cfg.Difficulty)
	assert.Equal(t, log.LogLevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "ada", cfg.PlayerName)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, 5*time.Millisecond, cfg.TickInterval)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad difficulty", args: []string{"-difficulty", "impossible"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "bad sound env", env: map[string]string{"SIMON_SOUND": "maybe"}},
		{name: "bad port env", env: map[string]string{"SIMON_API_PORT": "http"}},
		{name: "port out of range", args: []string{"-api-port", "70000"}},
		{name: "zero tick", args: []string{"-tick-interval", "0s"}},
		{name: "unknown flag", args: []string{"-fullscreen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("simon", tt.args)
			assert.Error(t, err)
		})
	}
}
