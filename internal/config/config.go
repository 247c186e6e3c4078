package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything artsearch reads from its config file.
type Config struct {
	APIBase        string
	ImageBase      string
	LogFile        string
	LogLevel       string
	LogFormat      string
	SimulatedDelay time.Duration
	RequestTimeout time.Duration // zero leaves the transport default
}

const (
	defaultConfigPath     = "~/.config/artsearch/config.toml"
	defaultAPIBase        = "https://api.artic.edu/api/v1"
	defaultImageBase      = "https://www.artic.edu/iiif/2"
	defaultLogFile        = "~/.local/state/artsearch/artsearch.log"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultSimulatedDelay = 2 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:        defaultAPIBase,
		ImageBase:      defaultImageBase,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		SimulatedDelay: defaultSimulatedDelay,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		ImageBase      string `toml:"image_base"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		LogFormat      string `toml:"log_format"`
		SimulatedDelay string `toml:"simulated_delay"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBase = orDefault(raw.APIBase, defaultAPIBase)
	cfg.ImageBase = orDefault(raw.ImageBase, defaultImageBase)
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))
	cfg.LogFormat = strings.ToLower(orDefault(raw.LogFormat, defaultLogFormat))

	if cfg.SimulatedDelay, err = parseDuration("simulated_delay", raw.SimulatedDelay, defaultSimulatedDelay); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, 0); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse config: %s must not be negative", key)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves "~" and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
