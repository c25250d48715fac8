package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/frenchdeck/internal/card"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats
const (
	FormatRepr  = "repr"
	FormatShort = "short"
	FormatJSON  = "json"
)

// NamedColors are the colour names accepted for suits besides #rrggbb
var NamedColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Config represents the application configuration
type Config struct {
	Color      string            `toml:"color"`
	Format     string            `toml:"format"`
	SuitColors map[string]string `toml:"suit_colors"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Color:  ColorAuto,
		Format: FormatRepr,
		SuitColors: map[string]string{
			"hearts":   "red",
			"diamonds": "red",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "frenchdeck", "config.toml")
}

// LoadConfig loads the config file, falling back to the defaults when there
// is none. Missing keys keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	config := Default()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// InitConfig writes the default config file unless one already exists.
// It returns the path of the config file.
func InitConfig() (string, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}

	if err := writeConfig(configPath, Default()); err != nil {
		return "", err
	}

	return configPath, nil
}

// writeConfig encodes v to path, removing the file if it cannot be
// written completely.
func writeConfig(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}

	if err := toml.NewEncoder(file).Encode(v); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the colour mode, the format and every suit colour
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (use auto, always or never)", c.Color)
	}

	switch c.Format {
	case FormatRepr, FormatShort, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (use repr, short or json)", c.Format)
	}

	suits := card.Suits()
	for suit, color := range c.SuitColors {
		if !slices.Contains(suits, suit) {
			return fmt.Errorf("suit_colors: unknown suit %q", suit)
		}
		if err := ValidateColor(color); err != nil {
			return fmt.Errorf("suit_colors.%s: %w", suit, err)
		}
	}

	return nil
}

// ValidateColor accepts an empty string, a named colour or a #rrggbb value
func ValidateColor(color string) error {
	if color == "" || slices.Contains(NamedColors, strings.ToLower(color)) {
		return nil
	}
	if _, err := colorful.Hex(color); err != nil {
		return fmt.Errorf("invalid color %q", color)
	}
	return nil
}
