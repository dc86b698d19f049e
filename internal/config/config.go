// Package config resolves countdown settings from defaults, the settings file,
// PROGRESSCOUNTDOWN_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"progresscountdown/internal/ui/preferences"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "PROGRESSCOUNTDOWN"

const (
	KeyDuration        = "duration_seconds"
	KeyTextColor       = "text_color"
	KeyForegroundColor = "foreground_color"
	KeyBackgroundColor = "background_color"
	KeyTextSize        = "text_size"
	KeyStrokeWidth     = "stroke_width"
	KeyStartOnLaunch   = "start_on_launch"
	KeyRestoreSession  = "restore_session"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidValue = errors.New("invalid value")
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"duration":         KeyDuration,
	"text-color":       KeyTextColor,
	"foreground-color": KeyForegroundColor,
	"background-color": KeyBackgroundColor,
	"text-size":        KeyTextSize,
	"stroke-width":     KeyStrokeWidth,
	"start":            KeyStartOnLaunch,
	"restore":          KeyRestoreSession,
}

// Loader resolves preferences.Settings.
type Loader struct {
	v *viper.Viper
}

// New creates a loader seeded with the default settings.
func New() *Loader {
	defaults := preferences.DefaultSettings()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyDuration, defaults.DurationSeconds)
	v.SetDefault(KeyTextColor, defaults.TextColor)
	v.SetDefault(KeyForegroundColor, defaults.ForegroundColor)
	v.SetDefault(KeyBackgroundColor, defaults.BackgroundColor)
	v.SetDefault(KeyTextSize, defaults.TextSize)
	v.SetDefault(KeyStrokeWidth, defaults.StrokeWidth)
	v.SetDefault(KeyStartOnLaunch, defaults.StartOnLaunch)
	v.SetDefault(KeyRestoreSession, defaults.RestoreSession)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return &Loader{v: v}
}

// AddFlags registers the settings flags on cmd.
func AddFlags(cmd *cobra.Command) {
	defaults := preferences.DefaultSettings()
	flags := cmd.PersistentFlags()
	flags.Int("duration", defaults.DurationSeconds, "countdown length in seconds")
	flags.String("text-color", defaults.TextColor, "label color (#rrggbb, white or black)")
	flags.String("foreground-color", defaults.ForegroundColor, "progress arc color")
	flags.String("background-color", defaults.BackgroundColor, "track color")
	flags.Float32("text-size", defaults.TextSize, "label size")
	flags.Float32("stroke-width", defaults.StrokeWidth, "ring stroke width")
	flags.Bool("start", defaults.StartOnLaunch, "start the countdown immediately")
	flags.Bool("restore", defaults.RestoreSession, "restore the countdown saved on last exit")
}

// BindFlags makes explicitly set flags of cmd override every other source.
func (loader *Loader) BindFlags(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := loader.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the settings file at path, if it exists, and resolves the
// settings.
func (loader *Loader) Load(path string) (preferences.Settings, error) {
	if path != "" {
		loader.v.SetConfigFile(path)
		if err := loader.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if !missing {
				return preferences.Settings{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}
	return loader.settings()
}

// ConfigFileUsed returns the settings file that was read, if any.
func (loader *Loader) ConfigFileUsed() string {
	return loader.v.ConfigFileUsed()
}

func (loader *Loader) settings() (preferences.Settings, error) {
	settings := preferences.Settings{
		DurationSeconds: loader.v.GetInt(KeyDuration),
		TextColor:       loader.v.GetString(KeyTextColor),
		ForegroundColor: loader.v.GetString(KeyForegroundColor),
		BackgroundColor: loader.v.GetString(KeyBackgroundColor),
		TextSize:        float32(loader.v.GetFloat64(KeyTextSize)),
		StrokeWidth:     float32(loader.v.GetFloat64(KeyStrokeWidth)),
		StartOnLaunch:   loader.v.GetBool(KeyStartOnLaunch),
		RestoreSession:  loader.v.GetBool(KeyRestoreSession),
	}
	if err := Validate(settings); err != nil {
		return preferences.Settings{}, err
	}
	return settings, nil
}

// Validate rejects settings a renderer cannot use.
func Validate(settings preferences.Settings) error {
	if settings.DurationSeconds < 0 {
		return fmt.Errorf("%s %d: %w", KeyDuration, settings.DurationSeconds, ErrInvalidValue)
	}
	colors := []struct {
		key   string
		value string
	}{
		{KeyTextColor, settings.TextColor},
		{KeyForegroundColor, settings.ForegroundColor},
		{KeyBackgroundColor, settings.BackgroundColor},
	}
	for _, entry := range colors {
		if _, ok := preferences.ParseColor(entry.value); !ok {
			return fmt.Errorf("%s %q: %w", entry.key, entry.value, ErrInvalidColor)
		}
	}
	if settings.TextSize <= 0 {
		return fmt.Errorf("%s %g: %w", KeyTextSize, settings.TextSize, ErrInvalidValue)
	}
	if settings.StrokeWidth <= 0 {
		return fmt.Errorf("%s %g: %w", KeyStrokeWidth, settings.StrokeWidth, ErrInvalidValue)
	}
	return nil
}
