package fixtures

import (
	"testing"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// EachChangelogSet runs fn once per sample set, as subtests named set0, set1, set2.
func EachChangelogSet(
	t *testing.T,
	session *Session,
	fn func(t *testing.T, f *Fixture, changelogSet *entities.ChangelogSet),
) {
	t.Helper()
	for _, index := range entities.ChangelogSetIndices {
		t.Run(entities.SetDirName(index), func(t *testing.T) {
			f := New(t, session)
			fn(t, f, f.ChangelogSet(index))
		})
	}
}

// EachGitHubEventPath runs fn with the real event payload, then the dummy one.
func EachGitHubEventPath(
	t *testing.T,
	session *Session,
	fn func(t *testing.T, f *Fixture, mode entities.EventPathMode),
) {
	t.Helper()
	for _, mode := range entities.EventPathModes {
		t.Run(mode.String(), func(t *testing.T) {
			f := New(t, session)
			f.GitHubEventPath(mode)
			fn(t, f, mode)
		})
	}
}

// EachInputDotnet runs fn with INPUT_DOTNET=true, then false.
func EachInputDotnet(
	t *testing.T,
	session *Session,
	fn func(t *testing.T, f *Fixture, enabled bool),
) {
	t.Helper()
	for _, enabled := range []bool{true, false} {
		t.Run(entities.FormatBool(enabled), func(t *testing.T) {
			f := New(t, session)
			f.InputDotnet(enabled)
			fn(t, f, enabled)
		})
	}
}
