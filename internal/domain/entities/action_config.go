package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidRepository = errors.New("repository must be in the owner/name form")

// ActionConfig is the explicit view of the environment the action reads.
// Fixtures keep it in sync with the variables they override.
type ActionConfig struct {
	Repository           string
	OutputFile           string
	StepSummaryFile      string
	Workspace            string
	SHA                  string
	EventPath            string
	GitHubToken          string
	ChangelogPath        string
	EventAPIMaxAttempts  int
	FailOnEventsAPIError bool

	// Dotnet is nil when INPUT_DOTNET is absent.
	Dotnet *bool
}

// LoadActionConfig builds an ActionConfig from the given environment lookup.
func LoadActionConfig(lookup LookupFunc) *ActionConfig {
	get := func(key string) string {
		value, _ := lookup(key)
		return value
	}

	config := &ActionConfig{
		Repository:           get(EnvRepository),
		OutputFile:           get(EnvOutput),
		StepSummaryFile:      get(EnvStepSummary),
		Workspace:            get(EnvWorkspace),
		SHA:                  get(EnvSHA),
		EventPath:            get(EnvEventPath),
		GitHubToken:          get(EnvInputGitHubToken),
		ChangelogPath:        get(EnvInputChangelogPath),
		FailOnEventsAPIError: ParseBool(get(EnvInputFailOnEventsAPIErr)),
	}

	if attempts, err := strconv.Atoi(get(EnvInputEventAPIMaxAttempts)); err == nil {
		config.EventAPIMaxAttempts = attempts
	}

	if value, ok := lookup(EnvInputDotnet); ok {
		dotnet := ParseBool(value)
		config.Dotnet = &dotnet
	}

	return config
}

// HasGitHubToken reports whether a non-empty access token is configured.
func (it *ActionConfig) HasGitHubToken() bool {
	return strings.TrimSpace(it.GitHubToken) != ""
}

// RepositoryParts splits Repository ("owner/name") into its two halves.
func (it *ActionConfig) RepositoryParts() (string, string, error) {
	owner, name, found := strings.Cut(it.Repository, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, it.Repository)
	}
	return owner, name, nil
}

// FormatBool renders a boolean the way action inputs are written.
func FormatBool(value bool) string {
	return strconv.FormatBool(value)
}

// ParseBool reads an action boolean input, anything but "true" is false.
func ParseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}
