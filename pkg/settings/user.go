package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/wallfetch/wallfetch/pkg/util/console"
	"github.com/wallfetch/wallfetch/pkg/util/files"
)

// UserSettings holds per-user defaults for the fetch pipeline. Command-line
// flags override any of them.
type UserSettings struct {
	// Locale overrides the system locale, e.g. "en-US".
	Locale string `json:"locale,omitempty"`
	// APIVersion is "v3" or "v4"; empty means the default.
	APIVersion string `json:"apiVersion,omitempty"`
	// OutputDir is where downloaded wallpapers land.
	OutputDir string `json:"outputDir,omitempty"`
	// Attempts is the fetch attempt budget; 0 means the default.
	Attempts int `json:"attempts,omitempty"`
}

// LoadUserSettings loads the user settings from disk, returning a default
// struct if no file exists
func LoadUserSettings() (*UserSettings, error) {
	settings := UserSettings{}

	settingsPath, err := userSettingsPath()
	if err != nil {
		return nil, err
	}

	exists, err := files.Exists(settingsPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &settings, nil
	}
	text, err := os.ReadFile(settingsPath)
	if err != nil {
		console.Warnf("Failed to read %s: %s", settingsPath, err)
		return &settings, nil
	}

	err = json.Unmarshal(text, &settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save saves user settings to disk
func (s *UserSettings) Save() error {
	settingsPath, err := userSettingsPath()
	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(s, "", " ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(settingsPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(settingsPath, bytes, 0o600)
}

func UserSettingsDir() (string, error) {
	return homedir.Expand("~/.config/wallfetch")
}

func userSettingsPath() (string, error) {
	dir, err := UserSettingsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}
