package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings holds the fixed values the fixtures are built around.
type Settings struct {
	Repository          string `yaml:"repository"`
	Branch              string `yaml:"branch"`
	APIBaseURL          string `yaml:"api_base_url"`
	DataDir             string `yaml:"data_dir"`
	WorkspaceDir        string `yaml:"workspace_dir"`
	ChangelogPath       string `yaml:"changelog_path"`
	OutputFile          string `yaml:"output_file"`
	StepSummaryFile     string `yaml:"step_summary_file"`
	DummyEventFile      string `yaml:"dummy_event_file"`
	EventAPIMaxAttempts int    `yaml:"event_api_max_attempts"`
}

// SettingsFileName is searched for in the repository root and the current directory.
const SettingsFileName = ".releasefixtures.yaml"

var (
	ErrSettingsKeyMissing = errors.New("missing settings key")
	ErrSettingsNotFound   = errors.New("settings file not found")
)

// DefaultSettings returns the values used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Repository:          "LizardByte/setup-release-action",
		Branch:              "master",
		APIBaseURL:          "https://api.github.com/",
		DataDir:             filepath.Join("tests", "data"),
		WorkspaceDir:        filepath.Join("github", "workspace"),
		ChangelogPath:       ChangelogFileName,
		OutputFile:          "github_output.md",
		StepSummaryFile:     "github_step_summary.md",
		DummyEventFile:      "dummy_github_event.json",
		EventAPIMaxAttempts: 1,
	}
}

// ReadSettings reads the settings file on top of the defaults.
func ReadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, settingsPath)
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings, err := DecodeSettings(data)
	if err != nil {
		return nil, err
	}

	if err = ValidateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DecodeSettings decodes YAML settings, unknown keys are rejected.
func DecodeSettings(data []byte) (*Settings, error) {
	settings := DefaultSettings()

	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return settings, nil
}

// ValidateSettings reports every key that was blanked out.
func ValidateSettings(settings *Settings) error {
	var missingKeys []string

	required := []struct {
		key   string
		value string
	}{
		{"repository", settings.Repository},
		{"branch", settings.Branch},
		{"api_base_url", settings.APIBaseURL},
		{"data_dir", settings.DataDir},
		{"workspace_dir", settings.WorkspaceDir},
		{"changelog_path", settings.ChangelogPath},
		{"output_file", settings.OutputFile},
		{"step_summary_file", settings.StepSummaryFile},
		{"dummy_event_file", settings.DummyEventFile},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missingKeys = append(missingKeys, field.key)
		}
	}

	if !strings.Contains(settings.Repository, "/") && settings.Repository != "" {
		missingKeys = append(missingKeys, "repository (owner/name)")
	}

	if len(missingKeys) > 0 {
		return fmt.Errorf("%w: %s", ErrSettingsKeyMissing, strings.Join(missingKeys, ", "))
	}
	return nil
}

// FindSettingsOnMissing returns the settings path to use, or "" for the defaults.
func FindSettingsOnMissing(settingsPath string, searchDirs ...string) string {
	if settingsPath != "" {
		return settingsPath
	}

	for _, dir := range searchDirs {
		candidate := filepath.Join(dir, SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			log.Infof("Using settings file: \"%v\"", candidate)
			return candidate
		}
	}

	log.Debug("No settings file found, using the defaults")
	return ""
}

// LoadSettings finds and reads the settings, falling back to the defaults.
func LoadSettings(settingsPath string, searchDirs ...string) (*Settings, error) {
	settingsPath = FindSettingsOnMissing(settingsPath, searchDirs...)
	if settingsPath == "" {
		return DefaultSettings(), nil
	}
	return ReadSettings(settingsPath)
}
