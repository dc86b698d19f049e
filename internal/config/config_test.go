package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresscountdown/internal/ui/preferences"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newCommand(t *testing.T, loader *Loader, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, loader.BindFlags(cmd))
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	settings, err := New().Load("")
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	loader := New()
	settings, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 30, settings.DurationSeconds)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	path := writeConfig(t, `
duration_seconds: 90
foreground_color: "#ff0000"
text_size: 30
stroke_width: 8
`)
	t.Setenv("PROGRESSCOUNTDOWN_TEXT_SIZE", "26")
	t.Setenv("PROGRESSCOUNTDOWN_STROKE_WIDTH", "10")

	loader := New()
	newCommand(t, loader, "--stroke-width", "12")

	settings, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90, settings.DurationSeconds)
	assert.Equal(t, "#ff0000", settings.ForegroundColor)
	assert.Equal(t, float32(26), settings.TextSize)
	assert.Equal(t, float32(12), settings.StrokeWidth)
	assert.Equal(t, path, loader.ConfigFileUsed())
}

func TestLoad_FlagDefaultsDoNotOverrideFile(t *testing.T) {
	path := writeConfig(t, "duration_seconds: 15\n")

	loader := New()
	newCommand(t, loader)

	settings, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, settings.DurationSeconds)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "bad color", content: "text_color: purple-ish\n", wantErr: ErrInvalidColor},
		{name: "negative duration", content: "duration_seconds: -3\n", wantErr: ErrInvalidValue},
		{name: "zero stroke", content: "stroke_width: 0\n", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := New().Load(writeConfig(t, "duration_seconds: [1\n"))
	assert.Error(t, err)
}
