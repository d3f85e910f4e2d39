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

// Config captures the settings the client reads from config.toml.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	UserAgent      string
	LogLevel       string
	LogFormat      string
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/pokedex/config.toml"
	defaultAPIBaseURL     = "https://pokeapi.co/api/v2/"
	defaultRequestTimeout = 10 * time.Second
	defaultUserAgent      = "pokedex/0.1"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultLogFile        = "~/.local/state/pokedex/pokedex.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		RequestTimeout: defaultRequestTimeout,
		UserAgent:      defaultUserAgent,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses config.toml, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL     string `toml:"api_base_url"`
		RequestTimeout string `toml:"request_timeout"`
		UserAgent      string `toml:"user_agent"`
		LogLevel       string `toml:"log_level"`
		LogFormat      string `toml:"log_format"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		APIBaseURL: orDefault(raw.APIBaseURL, defaultAPIBaseURL),
		UserAgent:  orDefault(raw.UserAgent, defaultUserAgent),
		LogLevel:   strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel)),
		LogFormat:  strings.ToLower(orDefault(raw.LogFormat, defaultLogFormat)),
		LogFile:    mustExpand(orDefault(raw.LogFile, defaultLogFile)),
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if parsed > 0 {
			cfg.RequestTimeout = parsed
		}
	}

	return cfg, nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
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
