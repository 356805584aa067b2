package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/stonynews/stonynews-cli/internal/adapters/driven/ai"
	"github.com/stonynews/stonynews-cli/internal/adapters/driven/config/file"
	"github.com/stonynews/stonynews-cli/internal/adapters/driven/config/memory"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/cli"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
	"github.com/stonynews/stonynews-cli/internal/core/services"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// bootstrap wires the adapters into the core services.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	store, dir, err := openConfigStore(opts)
	if err != nil {
		return nil, err
	}

	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		// Keep going so that 'settings set-provider' can repair the file.
		logger.Warn("Invalid settings, using defaults: %v", err)
		settings = settingsSvc.Defaults()
	}
	logger.Debug("Provider %s, model %s, configured %t", settings.Provider, settings.Model, settings.IsConfigured())

	client, err := ai.CreateCompletionClient(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("create completion client: %w", err)
	}

	dispatcher := services.NewQueryDispatcher(client, *settings)
	s := &cli.Services{
		News:     services.NewNewsService(dispatcher),
		Settings: settingsSvc,
		Close: func() {
			if c, ok := client.(io.Closer); ok {
				_ = c.Close()
			}
		},
	}

	if dir != "" {
		prompts, err := file.NewPromptStore(filepath.Join(dir, "prompts"))
		if err != nil {
			return nil, err
		}
		dispatcher.SetPromptStore(prompts)

		watcher := file.NewPromptWatcher(prompts)
		watcher.OnReload(func(name string) {
			logger.Info("Prompt %s reloaded", name)
		})
		s.PromptWatcher = watcher
	}

	return s, nil
}

// openConfigStore returns the TOML store under the config directory, or an
// empty in-memory store with no directory when opts.NoConfig is set.
func openConfigStore(opts cli.Options) (driven.ConfigStore, string, error) {
	if opts.NoConfig {
		return memory.NewConfigStore(nil), "", nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = file.DefaultDir(); err != nil {
			return nil, "", err
		}
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, "", fmt.Errorf("open config: %w", err)
	}
	return store, dir, nil
}
