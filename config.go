package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".plateup"

// Embedded defaults written to disk on first run
//
//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/recipes.json
var defaultRecipes string

// Settings represents the YAML settings file controlling site output.
type Settings struct {
	SiteName     string `yaml:"site_name"`
	ArticlesDir  string `yaml:"articles_dir"`
	IndexPath    string `yaml:"index_path"`
	ThumbnailURL string `yaml:"thumbnail_url"`
}

// DefaultSettings returns the built-in settings used when no file overrides
// them.
func DefaultSettings() *Settings {
	return &Settings{
		SiteName:    "PlateUp Pro",
		ArticlesDir: "articles",
		IndexPath:   filepath.Join("data", "articles.json"),
	}
}

// LoadSettings loads settings from path. A missing file yields the defaults;
// fields left empty in the file fall back to their default values.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	defaults := DefaultSettings()
	if settings.SiteName == "" {
		settings.SiteName = defaults.SiteName
	}
	if settings.ArticlesDir == "" {
		settings.ArticlesDir = defaults.ArticlesDir
	}
	if settings.IndexPath == "" {
		settings.IndexPath = defaults.IndexPath
	}

	return &settings, nil
}

// EnsureSettingsExists writes the embedded default settings file if it is not
// there yet, so users have something to customize.
func EnsureSettingsExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultSettings), 0644); err != nil {
		return fmt.Errorf("writing default settings: %w", err)
	}
	return nil
}

// LoadOrInitSourceConfig reads the JSON source configuration. A missing file
// is seeded from the embedded default, which is then used for the current
// run. A file that exists but does not parse aborts the run; no partial or
// merged configs are ever produced.
func LoadOrInitSourceConfig(path string) (*SourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		log.Infof("No config found, writing default: %s", path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultRecipes), 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
		data = []byte(defaultRecipes)
	}

	var config SourceConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return &config, nil
}
