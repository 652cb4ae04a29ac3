package fixtures

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/commands"
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/releasefixtures/internal/support"
)

const commitTimeout = 30 * time.Second

// Fixture is the per-test handle. Config mirrors the environment and is
// updated by every setup that overrides a variable.
type Fixture struct {
	t       testing.TB
	session *Session
	Config  *entities.ActionConfig
}

// New reads the current environment into a fresh configuration for t.
func New(t testing.TB, session *Session) *Fixture {
	t.Helper()
	return &Fixture{
		t:       t,
		session: session,
		Config:  entities.LoadActionConfig(os.LookupEnv),
	}
}

// override sets an environment variable and its Config field for the rest of
// the test; both get their previous values back on cleanup.
func override[T any](f *Fixture, key, value string, field *T, fieldValue T) {
	f.t.Helper()

	f.t.Setenv(key, value)
	previous := *field
	*field = fieldValue
	f.t.Cleanup(func() { *field = previous })
}

// RequireGitHubToken skips the test when INPUT_GITHUB_TOKEN is empty.
func (f *Fixture) RequireGitHubToken() {
	f.t.Helper()
	if !f.session.HasGitHubToken() {
		f.t.Skipf("%s environment variable not set", entities.EnvInputGitHubToken)
	}
}

// GitHubOutputFile empties the GITHUB_OUTPUT file before and after the test.
func (f *Fixture) GitHubOutputFile() string {
	f.t.Helper()
	return f.emptyFile(entities.EnvOutput, f.Config.OutputFile)
}

// GitHubStepSummaryFile empties the GITHUB_STEP_SUMMARY file before and after the test.
func (f *Fixture) GitHubStepSummaryFile() string {
	f.t.Helper()
	return f.emptyFile(entities.EnvStepSummary, f.Config.StepSummaryFile)
}

func (f *Fixture) emptyFile(key, path string) string {
	f.t.Helper()

	if path == "" {
		f.t.Fatalf("%s is not set", key)
	}
	if err := support.TruncateFile(path); err != nil {
		f.t.Fatalf("failed to prepare %s: %v", key, err)
	}

	f.t.Cleanup(func() {
		if err := support.TruncateFile(path); err != nil {
			f.t.Errorf("failed to reset %s: %v", key, err)
		}
	})
	return path
}

// ChangelogSet seeds the workspace with the sample changelog of set index and
// returns the values the action is expected to produce. The workspace is
// removed after the test.
func (f *Fixture) ChangelogSet(index int) *entities.ChangelogSet {
	f.t.Helper()

	settings, root := f.session.settings, f.session.root
	workspace := commands.WorkspaceDir(settings, root)
	f.t.Cleanup(func() {
		if cleanErr := commands.CleanWorkspace(workspace); cleanErr != nil {
			f.t.Errorf("%v", cleanErr)
		}
	})

	changelogSet, err := commands.LoadChangelogSet(settings, root, index)
	if err != nil {
		f.t.Fatalf("failed to load changelog set %d: %v", index, err)
	}
	return changelogSet
}

// LatestCommit points GITHUB_SHA at the newest commit of the configured
// branch. The API is asked once per session; without a token the test is skipped.
func (f *Fixture) LatestCommit() string {
	f.t.Helper()
	f.RequireGitHubToken()

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()

	sha, err := commands.ResolveLatestCommit(
		ctx,
		f.session.cache,
		f.session.lister,
		f.Config,
		f.session.settings.Branch,
	)
	if err != nil {
		f.t.Fatalf("%v", err)
	}

	override(f, entities.EnvSHA, sha, &f.Config.SHA, sha)
	return sha
}

// DummyCommit points GITHUB_SHA at a commit that does not exist.
func (f *Fixture) DummyCommit() {
	f.t.Helper()
	override(f, entities.EnvSHA, entities.DummyCommitSHA, &f.Config.SHA, entities.DummyCommitSHA)
}

// HeadCommit points GITHUB_SHA at HEAD of the local checkout, skipping the
// test when the root is not a git repository.
func (f *Fixture) HeadCommit() string {
	f.t.Helper()

	sha, err := f.session.heads.HeadCommit(f.session.root)
	if errors.Is(err, git.ErrNotARepository) {
		f.t.Skipf("%s is not a git repository", f.session.root)
	}
	if err != nil {
		f.t.Fatalf("%v", err)
	}

	override(f, entities.EnvSHA, sha, &f.Config.SHA, sha)
	return sha
}

// GitHubEventPath keeps the runner's event payload or swaps in the bundled
// dummy one. The real mode skips the test when no payload is configured.
func (f *Fixture) GitHubEventPath(mode entities.EventPathMode) {
	f.t.Helper()

	switch mode {
	case entities.EventPathReal:
		if _, ok := os.LookupEnv(entities.EnvEventPath); !ok {
			f.t.Skipf("%s environment variable not set", entities.EnvEventPath)
		}
	case entities.EventPathDummy:
		path := support.ResolvePath(f.session.root, f.session.settings.DummyEventFile)
		override(f, entities.EnvEventPath, path, &f.Config.EventPath, path)
	default:
		f.t.Fatalf("unknown event path mode %d", mode)
	}
}

// DummyGitHubEventPath always uses the bundled dummy payload.
func (f *Fixture) DummyGitHubEventPath() {
	f.t.Helper()
	f.GitHubEventPath(entities.EventPathDummy)
}

// FailOnEventsAPIError turns INPUT_FAIL_ON_EVENTS_API_ERROR on.
func (f *Fixture) FailOnEventsAPIError() {
	f.t.Helper()
	override(f, entities.EnvInputFailOnEventsAPIErr, entities.FormatBool(true), &f.Config.FailOnEventsAPIError, true)
}

// InputDotnet sets INPUT_DOTNET. Unlike the other setups it deletes the
// variable afterwards instead of restoring a previous value.
func (f *Fixture) InputDotnet(enabled bool) {
	f.t.Helper()

	// registered before Setenv so it runs after Setenv has restored the old value
	f.t.Cleanup(func() {
		if err := os.Unsetenv(entities.EnvInputDotnet); err != nil {
			f.t.Errorf("failed to unset %s: %v", entities.EnvInputDotnet, err)
		}
		f.Config.Dotnet = nil
	})

	if _, existed := os.LookupEnv(entities.EnvInputDotnet); existed {
		log.Warnf("%s was already set and will be removed after the test", entities.EnvInputDotnet)
	}
	f.t.Setenv(entities.EnvInputDotnet, entities.FormatBool(enabled))
	f.Config.Dotnet = &enabled
}
