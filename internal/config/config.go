// Package config provides Viper-based configuration loading for the venture server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds TCP listener settings.
type ServerConfig struct {
	// Host is the bind address for the listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the listener.
	Port int `mapstructure:"port"`
	// ReadTimeout bounds each blocking read. Zero means block indefinitely:
	// an idle client holds its session open forever.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the per-write timeout for client connections.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// Once stops the acceptor after the first session terminates, giving
	// the process a connect-serve-exit lifetime.
	Once bool `mapstructure:"once"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GameConfig holds game content settings.
type GameConfig struct {
	// Name is the game title used in the greeting banner when the built-in
	// world is served. A world file carries its own name.
	Name string `mapstructure:"name"`
	// WorldFile is the path to a world YAML file. Empty means use the
	// compiled-in default world.
	WorldFile string `mapstructure:"world_file"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateServer(c.Server); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateServer(s ServerConfig) error {
	var errs []string
	if s.Host == "" {
		errs = append(errs, "server.host must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", s.Port))
	}
	if s.ReadTimeout < 0 {
		errs = append(errs, "server.read_timeout must not be negative")
	}
	if s.WriteTimeout < 0 {
		errs = append(errs, "server.write_timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	if g.Name == "" {
		return fmt.Errorf("game.name must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the file
// and yields defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with VENTURE_ prefix
	v.SetEnvPrefix("VENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Loopback only; the game is played from the same host.
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 50000)
	v.SetDefault("server.read_timeout", "0s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.once", true)

	v.SetDefault("game.name", "Realms of Venture")
	v.SetDefault("game.world_file", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
