package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/five82/artsearch/internal/artic"
	"github.com/five82/artsearch/internal/config"
	"github.com/five82/artsearch/internal/prefs"
	"github.com/five82/artsearch/internal/state"
	"github.com/five82/artsearch/internal/ui"
	"github.com/five82/artsearch/internal/view"
)

// Options configure the artsearch application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/artsearch/prefs.toml
	Location   string // "?id=..&q=.." selecting the first view
	APIBase    string
	LogLevel   string
}

// Run boots the artsearch TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logFile, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.WithFields(log.Fields{
		"api":      cfg.APIBase,
		"location": opts.Location,
	}).Info("artsearch starting")

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.WithError(err).Warn("load preferences failed, using defaults")
	}

	store := &state.Store{}

	client, err := artic.NewClient(artic.Options{
		BaseURL:   cfg.APIBase,
		ImageBase: cfg.ImageBase,
		Timeout:   cfg.RequestTimeout,
		Observer:  store,
	})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Client:     client,
		Store:      store,
		Config:     &cfg,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Location:   opts.Location,
		Simulation: view.Simulation{Delay: cfg.SimulatedDelay},
	}
	err = ui.Run(uiOpts)

	snap := store.Snapshot()
	log.WithField("requests", snap.Requests).Info("artsearch stopped")
	return err
}

// loadConfig reads the config file and applies option overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		if _, err := log.ParseLevel(v); err != nil {
			return config.Config{}, fmt.Errorf("log level: %w", err)
		}
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg, nil
}
