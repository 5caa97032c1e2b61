package app

import (
	"context"
	"fmt"

	"github.com/vk/idxguard/internal/ctxlog"
	"github.com/vk/idxguard/internal/demo"
	"github.com/vk/idxguard/internal/runner"
	"github.com/vk/idxguard/internal/scenario"
)

// Run executes the main application logic based on the provided
// configuration. Without a scenario path it plays the built-in tour;
// otherwise it loads, validates and runs the user's scenario.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.ScenarioPath == "" {
		a.logger.Info("No scenario path provided, running the built-in tour.")
		if err := demo.Run(ctx, a.outW); err != nil {
			return fmt.Errorf("tour failed: %w", err)
		}
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	sc, err := scenario.LoadPath(ctx, cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if _, err := runner.New(a.outW).Run(ctx, sc); err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
