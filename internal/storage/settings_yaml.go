package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"neonfocus/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes  int      `yaml:"focus_minutes"`
	BreakMinutes  int      `yaml:"break_minutes"`
	Notifications *bool    `yaml:"notifications,omitempty"`
	Sound         string   `yaml:"sound,omitempty"`
	Tasks         []string `yaml:"tasks,omitempty"`
}

// LoadSettings reads user preferences from YAML at path.
// An empty path resolves to the per-user config file for appName.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName, path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := settingsPath(appName, path)
	if err != nil {
		return settings, err
	}

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

// SaveSettings writes user preferences to YAML and returns the file path.
func SaveSettings(appName, path string, settings preferences.Settings) (string, error) {
	configPath, err := settingsPath(appName, path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(settings)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return "", fmt.Errorf("write settings file: %w", err)
	}

	return configPath, nil
}

// MarshalSettings renders settings in the file format.
func MarshalSettings(settings preferences.Settings) ([]byte, error) {
	notifications := settings.Notifications
	fileData := yamlSettings{
		FocusMinutes:  settings.FocusMinutes,
		BreakMinutes:  settings.BreakMinutes,
		Notifications: &notifications,
		Sound:         settings.Sound,
		Tasks:         settings.Tasks,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

// ResolveConfigPath returns the default settings file for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func settingsPath(appName, path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return ResolveConfigPath(appName)
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.Notifications != nil {
		settings.Notifications = *fileData.Notifications
	}
	if preferences.ValidSound(fileData.Sound) {
		settings.Sound = fileData.Sound
	}
	settings.Tasks = append([]string(nil), fileData.Tasks...)
}
