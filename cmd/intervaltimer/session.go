package main

import (
	"context"

	"intervaltimer/internal/core/model"
	"intervaltimer/internal/storage"

	"github.com/google/logger"
	"github.com/spf13/cobra"
)

// loadSettings merges flags over the settings saved by the last run.
func loadSettings(cmd *cobra.Command) (model.Settings, error) {
	stored, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warningf("load settings: %v", err)
	}
	return flagValues.apply(cmd, stored)
}

func saveSettings(settings model.Settings) {
	if err := storage.SaveSettings(appName, settings); err != nil {
		logger.Warningf("save settings: %v", err)
	}
}

// feedPresets loads the presets document, then redelivers it on every
// change until ctx is done.
func feedPresets(ctx context.Context, location string, deliver func([]model.Preset, error)) {
	report := func(presets []model.Preset, err error) {
		if err != nil {
			logger.Errorf("load presets from %s: %v", location, err)
		} else if location != "" {
			logger.Infof("loaded %d presets from %s", len(presets), location)
		}
		deliver(presets, err)
	}

	report(storage.LoadPresets(ctx, location))
	if err := storage.WatchPresets(ctx, location, report); err != nil {
		logger.Warningf("watch presets: %v", err)
	}
}
