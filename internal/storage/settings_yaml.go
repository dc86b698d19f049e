package storage

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"progresscountdown/internal/ui/preferences"
)

// yamlSettings is the on-disk form of preferences.Settings. The keys are the
// ones internal/config resolves.
type yamlSettings struct {
	DurationSeconds int     `yaml:"duration_seconds"`
	TextColor       string  `yaml:"text_color"`
	ForegroundColor string  `yaml:"foreground_color"`
	BackgroundColor string  `yaml:"background_color"`
	TextSize        float32 `yaml:"text_size"`
	StrokeWidth     float32 `yaml:"stroke_width"`
	StartOnLaunch   bool    `yaml:"start_on_launch"`
	RestoreSession  bool    `yaml:"restore_session"`
}

// SaveSettings writes user preferences to YAML.
func (store *Store) SaveSettings(settings preferences.Settings) error {
	fileData := yamlSettings{
		DurationSeconds: settings.DurationSeconds,
		TextColor:       settings.TextColor,
		ForegroundColor: settings.ForegroundColor,
		BackgroundColor: settings.BackgroundColor,
		TextSize:        settings.TextSize,
		StrokeWidth:     settings.StrokeWidth,
		StartOnLaunch:   settings.StartOnLaunch,
		RestoreSession:  settings.RestoreSession,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	return store.write(store.SettingsPath(), serialized)
}
