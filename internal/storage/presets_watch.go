package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"intervaltimer/internal/core/model"

	"github.com/fsnotify/fsnotify"
	"github.com/google/logger"
)

// WatchPresets reloads a local presets document whenever it changes and
// passes the result to onChange. The directory is watched rather than the
// file so editors that replace the file on save are followed.
// It blocks until ctx is done.
func WatchPresets(ctx context.Context, location string, onChange func([]model.Preset, error)) error {
	if location == "" || isRemote(location) {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create presets watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(location)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch presets directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || (event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write)) {
				continue
			}
			presets, loadErr := LoadPresets(ctx, target)
			onChange(presets, loadErr)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warningf("presets watcher: %v", watchErr)
		}
	}
}
