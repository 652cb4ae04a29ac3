package fixtures

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/commands"
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/releasefixtures/internal/support"
)

// Session holds what lives for a whole test run: the repository root, the
// settings, the runner defaults and the cached latest commit.
type Session struct {
	root     string
	settings *entities.Settings
	config   *entities.ActionConfig
	cache    *entities.CommitCache
	lister   entities.CommitLister
	heads    entities.HeadResolver
}

type sessionOptions struct {
	root         string
	settingsPath string
	lister       entities.CommitLister
	heads        entities.HeadResolver
}

// SessionOption customizes NewSession.
type SessionOption func(*sessionOptions)

// WithRoot sets the repository root instead of searching for go.mod.
func WithRoot(root string) SessionOption {
	return func(o *sessionOptions) { o.root = root }
}

// WithSettingsPath reads the settings from an explicit file.
func WithSettingsPath(settingsPath string) SessionOption {
	return func(o *sessionOptions) { o.settingsPath = settingsPath }
}

// WithCommitLister replaces the GitHub API client.
func WithCommitLister(lister entities.CommitLister) SessionOption {
	return func(o *sessionOptions) { o.lister = lister }
}

// WithHeadResolver replaces the local git HEAD lookup.
func WithHeadResolver(heads entities.HeadResolver) SessionOption {
	return func(o *sessionOptions) { o.heads = heads }
}

// NewSession loads the settings and .env file, then writes the runner
// defaults into the process environment.
func NewSession(opts ...SessionOption) (*Session, error) {
	options := &sessionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	root := options.root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get the current working directory: %w", err)
		}
		if root, err = support.FindRepositoryRoot(cwd); err != nil {
			return nil, err
		}
	}

	settings, err := entities.LoadSettings(options.settingsPath, root)
	if err != nil {
		return nil, err
	}

	config, err := commands.Bootstrap(settings, root, os.LookupEnv, os.Setenv)
	if err != nil {
		return nil, err
	}

	lister := options.lister
	if lister == nil {
		newLister := repositories.NewCommitListerFactory()
		if lister, err = newLister(config.GitHubToken, settings.APIBaseURL); err != nil {
			return nil, err
		}
	}

	heads := options.heads
	if heads == nil {
		heads = git.NewHeadResolver()
	}

	log.Infof("Fixture session ready for %s (root: %s)", settings.Repository, root)
	return &Session{
		root:     root,
		settings: settings,
		config:   config,
		cache:    entities.NewCommitCache(),
		lister:   lister,
		heads:    heads,
	}, nil
}

// Root returns the repository root the session resolves paths against.
func (s *Session) Root() string {
	return s.root
}

// Settings returns the settings in use.
func (s *Session) Settings() *entities.Settings {
	return s.settings
}

// HasGitHubToken reports whether INPUT_GITHUB_TOKEN was set when the session started.
func (s *Session) HasGitHubToken() bool {
	return s.config.HasGitHubToken()
}
