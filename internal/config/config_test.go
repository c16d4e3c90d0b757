package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         50000,
			ReadTimeout:  0,
			WriteTimeout: 30 * time.Second,
			Once:         true,
		},
		Game: GameConfig{
			Name: "Realms of Venture",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestServerAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "127.0.0.1:50000", cfg.Server.Addr())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 50000, cfg.Server.Port)
	assert.Equal(t, time.Duration(0), cfg.Server.ReadTimeout)
	assert.True(t, cfg.Server.Once)
	assert.Equal(t, "Realms of Venture", cfg.Game.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 4001
  read_timeout: 1m
  write_timeout: 10s
  once: false
game:
  name: Test Realm
  world_file: content/world.yaml
logging:
  level: debug
  format: console
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4001, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.Once)
	assert.Equal(t, "Test Realm", cfg.Game.Name)
	assert.Equal(t, "content/world.yaml", cfg.Game.WorldFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateServerHostEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = ""
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.host")
}

func TestValidateServerPortRange(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := validConfig()
		cfg.Server.Port = port
		assert.Error(t, cfg.Validate(), "port %d should be invalid", port)
	}
	cfg := validConfig()
	cfg.Server.Port = 65535
	assert.NoError(t, cfg.Validate())
}

func TestValidateNegativeTimeouts(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ReadTimeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.WriteTimeout = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidateGameNameEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Game.Name = ""
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "game.name")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateAggregatesViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = ""
	cfg.Game.Name = ""
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.host")
	assert.Contains(t, err.Error(), "game.name")
	assert.Contains(t, err.Error(), "logging.format")
}
