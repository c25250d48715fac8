package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeTestConfig(t *testing.T, content string) {
	t.Helper()
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGetConfigFilePath(t *testing.T) {
	dir := setConfigHome(t)
	assert.Equal(t, filepath.Join(dir, "frenchdeck", "config.toml"), GetConfigFilePath())
}

func TestLoadConfigDefaultsWithoutWriting(t *testing.T) {
	setConfigHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(GetConfigFilePath())
	assert.True(t, os.IsNotExist(err), "loading must not create the config file")
}

func TestLoadConfigFromFile(t *testing.T) {
	setConfigHome(t)
	writeTestConfig(t, `
format = "short"

[suit_colors]
spades = "#1f77b4"
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, FormatShort, cfg.Format)
	assert.Equal(t, "#1f77b4", cfg.SuitColors["spades"])
	assert.Equal(t, "red", cfg.SuitColors["hearts"])
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `color = `, "error decoding config file"},
		{"color mode", `color = "sometimes"`, `unknown color mode "sometimes"`},
		{"format", `format = "xml"`, `unknown format "xml"`},
		{"suit", "[suit_colors]\nstars = \"red\"", `unknown suit "stars"`},
		{"suit color", "[suit_colors]\nclubs = \"#zzz\"", `suit_colors.clubs: invalid color "#zzz"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setConfigHome(t)
			writeTestConfig(t, tt.content)

			_, err := LoadConfig()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestInitConfig(t *testing.T) {
	setConfigHome(t)

	path, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, GetConfigFilePath(), path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInitConfigKeepsExistingFile(t *testing.T) {
	setConfigHome(t)
	writeTestConfig(t, `format = "json"`)

	_, err := InitConfig()
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestWriteConfigRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	err := writeConfig(path, map[string]any{"color": "auto", "broken": make(chan int)})
	assert.ErrorContains(t, err, "error encoding config")
	assert.NoFileExists(t, path)
}

func TestWriteConfigMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")

	err := writeConfig(path, Default())
	assert.ErrorContains(t, err, "error creating config file")
	assert.NoFileExists(t, path)
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"", "red", "Blue", "#ff0000", "#FFAA00"} {
		assert.NoError(t, ValidateColor(c), c)
	}
	for _, c := range []string{"crimson", "ff0000", "#ff00", "#gg0000"} {
		assert.Error(t, ValidateColor(c), c)
	}
}
