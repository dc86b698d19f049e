package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, appName+" "+version+"\n", out)
}

func TestPreviewCommand_UsesDurationFlag(t *testing.T) {
	out, err := execute(t, "preview", "--duration", "45", "--radius", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "45")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "░")
}

func TestPreviewCommand_ReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration_seconds: 75\n"), 0o644))

	out, err := execute(t, "preview", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "75")
}

func TestRootCommand_RejectsInvalidColor(t *testing.T) {
	_, err := execute(t, "preview", "--foreground-color", "not-a-color")
	assert.Error(t, err)
}
