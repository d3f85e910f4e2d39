package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/pokedex/internal/config"
	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/ui"
)

// Options configure the Pokédex application.
type Options struct {
	ConfigPath string // empty uses ~/.config/pokedex/config.toml
	PrefsPath  string // empty uses ~/.config/pokedex/prefs.toml
	// Client overrides the HTTP client built from config. Used by tests.
	Client pokeapi.Fetcher
}

// Env holds what every command needs: configuration, preferences, a logger
// writing to the configured log file and the API client.
type Env struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
	Client    pokeapi.Fetcher

	closer io.Closer
}

// Setup loads configuration and builds the logger and client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logFile, err := logging.Open(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logFile,
	})
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	env := &Env{
		Config:    cfg,
		Prefs:     prefs.Load(opts.PrefsPath),
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
		Client:    opts.Client,
		closer:    logFile,
	}
	if env.Client == nil {
		client, err := pokeapi.NewClient(cfg.APIBaseURL,
			pokeapi.WithTimeout(cfg.RequestTimeout),
			pokeapi.WithUserAgent(cfg.UserAgent),
			pokeapi.WithLogger(logger),
		)
		if err != nil {
			_ = logFile.Close()
			return nil, fmt.Errorf("init api client: %w", err)
		}
		env.Client = client
	}
	return env, nil
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// Run boots the Pokédex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Logger.Info("starting tui", "api_base_url", env.Config.APIBaseURL, "theme", env.Prefs.Theme)
	return ui.Run(ui.Options{
		Context:    ctx,
		Client:     env.Client,
		Logger:     env.Logger,
		ThemeName:  env.Prefs.Theme,
		LastViewed: env.Prefs.LastViewed,
		PrefsPath:  env.PrefsPath,
	})
}
