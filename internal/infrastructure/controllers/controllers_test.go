//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/controllers"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories"
)

type stubLister struct {
	sha   string
	token string
}

func (s *stubLister) LatestCommit(_ context.Context, _, _, _ string) (string, error) {
	return s.sha, nil
}

type stubHeads struct{ sha string }

func (s *stubHeads) HeadCommit(_ string) (string, error) {
	return s.sha, nil
}

// newCommand builds a command carrying the persistent flags of the root command.
func newCommand(root string, args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("root", root, "")
	cmd.Flags().String("config", "", "")
	_ = cmd.Flags().Parse(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	return cmd
}

func newRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for index, version := range []string{"0.0.0", "1.0.0", "1.1.0"} {
		dir := filepath.Join(root, "tests", "data", entities.SetDirName(index))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		files := map[string]string{
			entities.VersionFileName: version,
			entities.DateFileName:    "2023-03-27",
			entities.URLFileName:     "https://example.com",
			entities.ChangesFileName: "- change",
		}
		if index > 0 {
			files[entities.ChangelogFileName] = "# Changelog\n"
		}
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		}
	}
	return root
}

// isolateEnv unsets keys for the test and puts the original values back when it ends.
func isolateEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestPrepareAndCleanControllers(t *testing.T) {
	t.Run("should seed the workspace and then remove it", func(t *testing.T) {
		// given
		isolateEnv(t,
			entities.EnvRepository, entities.EnvOutput, entities.EnvStepSummary, entities.EnvWorkspace,
			entities.EnvInputGitHubToken, entities.EnvInputChangelogPath,
			entities.EnvInputEventAPIMaxAttempts, entities.EnvInputFailOnEventsAPIErr,
		)
		root := newRoot(t)
		prepare := controllers.NewPrepareController()
		prepareCmd := newCommand(root)
		prepare.AddFlags(prepareCmd)
		require.NoError(t, prepareCmd.Flags().Set("set", "2"))
		workspace := filepath.Join(root, "github", "workspace")

		// when
		prepareErr := prepare.Execute(prepareCmd, nil)

		// then
		require.NoError(t, prepareErr)
		assert.FileExists(t, filepath.Join(workspace, "CHANGELOG.md"))
		assert.FileExists(t, filepath.Join(root, "github_output.md"))
		assert.Equal(t, workspace, os.Getenv(entities.EnvWorkspace))

		// when
		cleanErr := controllers.NewCleanController().Execute(newCommand(root), nil)

		// then
		require.NoError(t, cleanErr)
		assert.NoDirExists(t, workspace)
	})
}

func TestPrepareControllerExports(t *testing.T) {
	t.Run("should print the runner variables for the calling shell", func(t *testing.T) {
		// given
		isolateEnv(t,
			entities.EnvRepository, entities.EnvOutput, entities.EnvStepSummary, entities.EnvWorkspace,
			entities.EnvInputGitHubToken, entities.EnvInputChangelogPath,
			entities.EnvInputEventAPIMaxAttempts, entities.EnvInputFailOnEventsAPIErr,
		)
		token := faker.Password()
		t.Setenv(entities.EnvInputGitHubToken, token)
		root := newRoot(t)
		settings := []byte("repository: \"o'brien/release-action\"\n")
		require.NoError(t, os.WriteFile(filepath.Join(root, entities.SettingsFileName), settings, 0o644))
		prepare := controllers.NewPrepareController()
		cmd := newCommand(root)
		prepare.AddFlags(cmd)
		out := &bytes.Buffer{}
		cmd.SetOut(out)

		// when
		err := prepare.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Contains(t, lines, `export GITHUB_REPOSITORY='o'\''brien/release-action'`)
		assert.Contains(t, lines, "export INPUT_FAIL_ON_EVENTS_API_ERROR='false'")
		assert.Contains(t, lines, "export GITHUB_WORKSPACE='"+filepath.Join(root, "github", "workspace")+"'")
		assert.NotContains(t, out.String(), entities.EnvInputGitHubToken)
		assert.NotContains(t, out.String(), token)
	})
}

func TestVerifyController(t *testing.T) {
	t.Parallel()

	t.Run("should accept consistent data sets", func(t *testing.T) {
		t.Parallel()

		// given
		root := newRoot(t)

		// when
		err := controllers.NewVerifyController().Execute(newCommand(root), nil)

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when a set is missing", func(t *testing.T) {
		t.Parallel()

		// given
		root := newRoot(t)
		require.NoError(t, os.RemoveAll(filepath.Join(root, "tests", "data", "set1")))

		// when
		err := controllers.NewVerifyController().Execute(newCommand(root), nil)

		// then
		require.Error(t, err)
	})
}

func TestCommitController(t *testing.T) {
	t.Run("should print the latest commit from the API", func(t *testing.T) {
		// given
		isolateEnv(t, entities.EnvInputGitHubToken)
		token := faker.Password()
		t.Setenv(entities.EnvInputGitHubToken, token)
		lister := &stubLister{sha: "abc123"}
		factory := repositories.CommitListerFactory(func(gotToken, _ string) (entities.CommitLister, error) {
			lister.token = gotToken
			return lister, nil
		})
		controller := controllers.NewCommitController(factory, &stubHeads{}, entities.NewCommitCache())
		cmd := newCommand(newRoot(t))
		controller.AddFlags(cmd)
		out := &bytes.Buffer{}
		cmd.SetOut(out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "abc123", strings.TrimSpace(out.String()))
		assert.Equal(t, token, lister.token)
	})

	t.Run("should print the local HEAD", func(t *testing.T) {
		// given
		controller := controllers.NewCommitController(
			repositories.NewCommitListerFactory(), &stubHeads{sha: "feedbeef"}, entities.NewCommitCache(),
		)
		cmd := newCommand(newRoot(t))
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("local", "true"))
		out := &bytes.Buffer{}
		cmd.SetOut(out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "feedbeef", strings.TrimSpace(out.String()))
	})

	t.Run("should fail without a token", func(t *testing.T) {
		// given
		isolateEnv(t, entities.EnvInputGitHubToken)
		controller := controllers.NewCommitController(
			repositories.NewCommitListerFactory(), &stubHeads{}, entities.NewCommitCache(),
		)
		cmd := newCommand(newRoot(t))
		controller.AddFlags(cmd)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), entities.EnvInputGitHubToken)
	})
}
