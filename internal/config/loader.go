package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sigmaSd/deno-doc/internal/tailwind"
	"github.com/sigmaSd/deno-doc/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/ddoc-theme"
	projectConfigDir = ".ddoc-theme"
	configFileName   = "theme.yaml"
)

// Overlay is the schema of a theme override file. Every field is
// optional; zero values leave the canonical configuration untouched.
type Overlay struct {
	Colors   map[string]string `yaml:"colors,omitempty"`
	Content  []string          `yaml:"content,omitempty"`
	DarkMode string            `yaml:"darkMode,omitempty"`
}

// Load assembles the build-theme configuration by layering the
// canonical value, the user overlay, and the project overlay.
func Load() (tailwind.Config, error) {
	config := tailwind.New()

	userPath, err := getUserConfigPath()
	if err != nil {
		// User overlay is optional; warn and continue.
		logging.Warn("config", "could not determine user overlay path: %v", err)
	} else {
		if _, err := os.Stat(userPath); !os.IsNotExist(err) {
			overlay, err := loadOverlayFromFile(userPath)
			if err != nil {
				return tailwind.Config{}, fmt.Errorf("loading user overlay from %s: %w", userPath, err)
			}
			config = applyOverlay(config, overlay)
		}
	}

	projectPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("config", "could not determine project overlay path: %v", err)
	} else {
		if _, err := os.Stat(projectPath); !os.IsNotExist(err) {
			overlay, err := loadOverlayFromFile(projectPath)
			if err != nil {
				return tailwind.Config{}, fmt.Errorf("loading project overlay from %s: %w", projectPath, err)
			}
			config = applyOverlay(config, overlay)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadOverlayFromFile(filePath string) (Overlay, error) {
	var overlay Overlay
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Overlay{}, err
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Overlay{}, err
	}
	return overlay, nil
}

// applyOverlay merges an overlay into a configuration. Colors are
// merged per label; content and darkMode replace wholesale when set.
// The safelist is re-derived from the merged color table so overlay
// additions stay covered.
func applyOverlay(base tailwind.Config, overlay Overlay) tailwind.Config {
	merged := base

	if len(overlay.Colors) > 0 {
		colors := make(map[string]string, len(base.Theme.Extend.Colors)+len(overlay.Colors))
		for label, value := range base.Theme.Extend.Colors {
			colors[label] = value
		}
		for label, value := range overlay.Colors {
			colors[label] = value
		}
		merged.Theme.Extend.Colors = colors
	}

	if len(overlay.Content) > 0 {
		merged.Content = append([]string(nil), overlay.Content...)
	}

	if overlay.DarkMode != "" {
		merged.DarkMode = overlay.DarkMode
	}

	merged.Safelist = tailwind.DeriveSafelist(merged.Theme.Extend.Colors)
	return merged
}

// GetUserConfigDir returns the user overlay directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
