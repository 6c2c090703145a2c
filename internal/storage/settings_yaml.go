package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"intervaltimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	CountdownSeconds float64  `yaml:"countdown_seconds"`
	AlertSeconds     *float64 `yaml:"alert_seconds,omitempty"`
	PauseSeconds     float64  `yaml:"pause_seconds"`
	PauseMessage     string   `yaml:"pause_message,omitempty"`
	PresetsLocation  string   `yaml:"presets_location,omitempty"`
	Tempo            float64  `yaml:"tempo,omitempty"`
	Repetitions      int      `yaml:"repetitions,omitempty"`
}

// LoadSettings reads the last used form values from the user config dir.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads settings from an explicit YAML path.
func LoadSettingsFile(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes the form values to the user config dir.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes settings to an explicit YAML path.
func SaveSettingsFile(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	alert := settings.Alert
	fileData := yamlSettings{
		CountdownSeconds: settings.Countdown,
		AlertSeconds:     &alert,
		PauseSeconds:     settings.Pause,
		PauseMessage:     settings.PauseMessage,
		PresetsLocation:  settings.PresetsLocation,
		Tempo:            settings.Tempo,
		Repetitions:      settings.Repetitions,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.CountdownSeconds > 0 {
		settings.Countdown = fileData.CountdownSeconds
	}
	if alert := fileData.AlertSeconds; alert != nil && *alert >= 0 && *alert <= settings.Countdown {
		settings.Alert = *alert
	}
	if settings.Alert > settings.Countdown {
		settings.Alert = settings.Countdown
	}
	if fileData.PauseSeconds > 0 {
		settings.Pause = fileData.PauseSeconds
	}
	if fileData.PauseMessage != "" {
		settings.PauseMessage = fileData.PauseMessage
	}
	if fileData.Tempo > 0 {
		settings.Tempo = fileData.Tempo
	}
	if fileData.Repetitions > 0 {
		settings.Repetitions = fileData.Repetitions
	}

	settings.PresetsLocation = fileData.PresetsLocation
}
