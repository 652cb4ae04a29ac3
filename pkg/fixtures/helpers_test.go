//go:build unit

package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/pkg/fixtures"
)

// envKeys are all the variables a session or fixture may touch.
var envKeys = []string{ //nolint:gochecknoglobals // test table
	entities.EnvRepository,
	entities.EnvOutput,
	entities.EnvStepSummary,
	entities.EnvWorkspace,
	entities.EnvSHA,
	entities.EnvEventPath,
	entities.EnvInputGitHubToken,
	entities.EnvInputChangelogPath,
	entities.EnvInputEventAPIMaxAttempts,
	entities.EnvInputFailOnEventsAPIErr,
	entities.EnvInputDotnet,
}

type stubLister struct {
	sha   string
	err   error
	calls int
}

func (s *stubLister) LatestCommit(_ context.Context, _, _, _ string) (string, error) {
	s.calls++
	return s.sha, s.err
}

type stubHeads struct {
	sha string
	err error
}

func (s *stubHeads) HeadCommit(_ string) (string, error) {
	return s.sha, s.err
}

// isolateEnv unsets every variable of envKeys for the test and puts the
// original values back when it ends.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// newRoot creates a repository root with the three sample sets and the dummy event.
func newRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module sample\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dummy_github_event.json"), []byte(`{"action":"published"}`), 0o644))

	for index, version := range []string{"0.0.0", "1.0.0", "2.1.0"} {
		dir := filepath.Join(root, "tests", "data", entities.SetDirName(index))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		files := map[string]string{
			entities.VersionFileName: version + "\n",
			entities.DateFileName:    "2024-01-15\n",
			entities.URLFileName:     "https://example.com/v" + version + "\n",
			entities.ChangesFileName: "- change " + version + "\n",
		}
		if index > 0 {
			files[entities.ChangelogFileName] = "# Changelog\n\n## [" + version + "]\n"
		}
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		}
	}
	return root
}

// newSession isolates the environment, then starts a session on a fresh root.
func newSession(t *testing.T, opts ...fixtures.SessionOption) (*fixtures.Session, string) {
	t.Helper()
	return newSessionWithEnv(t, nil, opts...)
}

// newSessionWithEnv is newSession with env applied before the session starts.
func newSessionWithEnv(
	t *testing.T,
	env map[string]string,
	opts ...fixtures.SessionOption,
) (*fixtures.Session, string) {
	t.Helper()
	isolateEnv(t)
	for key, value := range env {
		t.Setenv(key, value)
	}

	root := newRoot(t)
	opts = append([]fixtures.SessionOption{fixtures.WithRoot(root)}, opts...)
	session, err := fixtures.NewSession(opts...)
	require.NoError(t, err)
	return session, root
}

// runSubtest runs fn as a subtest and returns it once its cleanups are done.
func runSubtest(t *testing.T, fn func(t *testing.T)) *testing.T {
	t.Helper()
	var sub *testing.T
	t.Run("fixture", func(t *testing.T) {
		sub = t
		fn(t)
	})
	return sub
}
