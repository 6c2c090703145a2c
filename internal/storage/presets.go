package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"intervaltimer/internal/core/model"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	maxPresetsDocumentSize = 1 << 20
	presetsFetchTimeout    = 10 * time.Second
)

type presetsDocument struct {
	Presets []presetEntry `yaml:"presets" toml:"presets"`
}

type presetEntry struct {
	Name      string  `yaml:"name" toml:"name"`
	Countdown float64 `yaml:"countdown" toml:"countdown"`
	Alert     float64 `yaml:"alert" toml:"alert"`
	Pause     float64 `yaml:"pause" toml:"pause"`
}

// LoadPresets reads named presets from a local file or an http(s) URL.
// An empty location, a missing document or a document without a presets
// collection all yield no presets and no error. Read, fetch and parse
// failures are returned to the caller.
func LoadPresets(ctx context.Context, location string) ([]model.Preset, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil
	}

	var (
		rawData []byte
		ext     string
		err     error
	)
	if isRemote(location) {
		rawData, ext, err = fetchPresets(ctx, location)
	} else {
		ext = filepath.Ext(location)
		rawData, err = os.ReadFile(location)
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			err = fmt.Errorf("read presets file: %w", err)
		}
	}
	if err != nil || rawData == nil {
		return nil, err
	}

	return decodePresets(rawData, ext)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func fetchPresets(ctx context.Context, location string) ([]byte, string, error) {
	parsed, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("parse presets url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, presetsFetchTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build presets request: %w", err)
	}
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, "", fmt.Errorf("fetch presets: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, "", nil
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch presets: unexpected status %s", response.Status)
	}

	rawData, err := io.ReadAll(io.LimitReader(response.Body, maxPresetsDocumentSize))
	if err != nil {
		return nil, "", fmt.Errorf("read presets response: %w", err)
	}
	return rawData, path.Ext(parsed.Path), nil
}

func decodePresets(rawData []byte, ext string) ([]model.Preset, error) {
	if len(bytes.TrimSpace(rawData)) == 0 {
		return nil, nil
	}

	var document presetsDocument
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(rawData, &document); err != nil {
			return nil, fmt.Errorf("parse presets toml: %w", err)
		}
	default:
		// YAML also covers JSON documents.
		if err := yaml.Unmarshal(rawData, &document); err != nil {
			return nil, fmt.Errorf("parse presets yaml: %w", err)
		}
	}

	presets := make([]model.Preset, 0, len(document.Presets))
	for _, entry := range document.Presets {
		preset := model.Preset{
			Name:      strings.TrimSpace(entry.Name),
			Countdown: entry.Countdown,
			Alert:     entry.Alert,
			Pause:     entry.Pause,
		}
		if !preset.Valid() {
			continue
		}
		presets = append(presets, preset)
	}
	return presets, nil
}
