package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingFile keeps tests independent of a .env in the working directory
func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "Seoul", cfg.DefaultCity)
	assert.Equal(t, 4, cfg.MaxPlayers)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "https://api.open-meteo.com", cfg.OpenMeteoURL)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("WEATHER_CACHE_TTL", "90s")
	t.Setenv("DEFAULT_CITY", "Busan")
	t.Setenv("MAX_PLAYERS", "2")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "Busan", cfg.DefaultCity)
	assert.Equal(t, 2, cfg.MaxPlayers)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DISCORD_TOKEN=from-file\nDEFAULT_CITY=Tokyo\n"), 0o600))
	t.Setenv("DISCORD_TOKEN", "")
	os.Unsetenv("DISCORD_TOKEN")
	t.Setenv("DEFAULT_CITY", "Busan")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.DiscordToken)
	// the environment wins over the file
	assert.Equal(t, "Busan", cfg.DefaultCity)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing token",
			env:  map[string]string{},
		},
		{
			name: "invalid duration",
			env:  map[string]string{"DISCORD_TOKEN": "token", "HTTP_TIMEOUT": "soon"},
		},
		{
			name: "invalid player limit",
			env:  map[string]string{"DISCORD_TOKEN": "token", "MAX_PLAYERS": "0"},
		},
		{
			name: "invalid log level",
			env:  map[string]string{"DISCORD_TOKEN": "token", "LOG_LEVEL": "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DISCORD_TOKEN", "")
			os.Unsetenv("DISCORD_TOKEN")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := Load(missingFile(t))
			assert.Error(t, err)
		})
	}
}
