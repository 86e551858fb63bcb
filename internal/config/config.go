// Package config loads Theme Store settings from defaults, an optional YAML
// file and THEMESTORE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// THEMESTORE_SERVER_PORT.
const EnvPrefix = "THEMESTORE"

const (
	defaultHost               = "0.0.0.0"
	defaultPort               = 2323
	defaultHostKeyPath        = ".data/themestore_ed25519"
	defaultIdleTimeout        = 10 * time.Minute
	defaultMaxTimeout         = 2 * time.Hour
	defaultRateLimitPerMinute = 30
	defaultRateLimitBurst     = 10
	defaultMaxSessions        = 64
	maximumConfiguredSessions = 4096
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
}

// TUIConfig controls the storefront terminal UI.
type TUIConfig struct {
	Theme     string `mapstructure:"theme"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// LoggingConfig controls the zerolog base logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives logs while the local TUI owns the terminal.
	// Empty discards them.
	File string `mapstructure:"file"`
}

// ServerConfig controls the SSH storefront host.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	HostKeyPath        string        `mapstructure:"host_key_path"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout"`
	MaxTimeout         time.Duration `mapstructure:"max_timeout"`
	RateLimitPerMinute int           `mapstructure:"rate_limit_per_minute"`
	RateLimitBurst     int           `mapstructure:"rate_limit_burst"`
	MaxSessions        int           `mapstructure:"max_sessions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:     "default",
			AltScreen: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Host:               defaultHost,
			Port:               defaultPort,
			HostKeyPath:        defaultHostKeyPath,
			IdleTimeout:        defaultIdleTimeout,
			MaxTimeout:         defaultMaxTimeout,
			RateLimitPerMinute: defaultRateLimitPerMinute,
			RateLimitBurst:     defaultRateLimitBurst,
			MaxSessions:        defaultMaxSessions,
		},
	}
}

// Load reads configuration. An explicit path must exist; without one the
// default locations are searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and required fields.
func (c *Config) Validate() error {
	if c.TUI.Theme == "" {
		return invalid("tui.theme must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid("logging.format must be console or json (got %q)", c.Logging.Format)
	}

	s := c.Server
	if s.Host == "" {
		return invalid("server.host must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return invalid("server.port must be between 1 and 65535")
	}
	if s.HostKeyPath == "" || filepath.Clean(s.HostKeyPath) == "." {
		return invalid("server.host_key_path must name a file")
	}
	if s.IdleTimeout <= 0 {
		return invalid("server.idle_timeout must be greater than 0")
	}
	if s.MaxTimeout < 0 {
		return invalid("server.max_timeout must not be negative")
	}
	if s.RateLimitPerMinute < 1 {
		return invalid("server.rate_limit_per_minute must be at least 1")
	}
	if s.RateLimitBurst < 1 {
		return invalid("server.rate_limit_burst must be at least 1")
	}
	if s.MaxSessions < 1 || s.MaxSessions > maximumConfiguredSessions {
		return invalid("server.max_sessions must be between 1 and %d", maximumConfiguredSessions)
	}
	return nil
}

// Address returns host:port for the SSH listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c *Config) normalize() {
	c.TUI.Theme = strings.ToLower(strings.TrimSpace(c.TUI.Theme))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Server.Host = strings.TrimSpace(c.Server.Host)
	if c.Server.HostKeyPath != "" {
		c.Server.HostKeyPath = filepath.Clean(c.Server.HostKeyPath)
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tui.theme", cfg.TUI.Theme)
	v.SetDefault("tui.alt_screen", cfg.TUI.AltScreen)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)

	v.SetDefault("server.host", cfg.Server.Host)
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.host_key_path", cfg.Server.HostKeyPath)
	v.SetDefault("server.idle_timeout", cfg.Server.IdleTimeout)
	v.SetDefault("server.max_timeout", cfg.Server.MaxTimeout)
	v.SetDefault("server.rate_limit_per_minute", cfg.Server.RateLimitPerMinute)
	v.SetDefault("server.rate_limit_burst", cfg.Server.RateLimitBurst)
	v.SetDefault("server.max_sessions", cfg.Server.MaxSessions)
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "themestore"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "themestore"))
	}
	return append(dirs, ".")
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
