package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/support"
)

const dotEnvFileName = ".env"

// LoadDotEnv copies the variables of root/.env into the environment
// without overriding the ones already set. A missing file is not an error.
func LoadDotEnv(root string, lookup entities.LookupFunc, setenv entities.SetenvFunc) error {
	values, err := godotenv.Read(filepath.Join(root, dotEnvFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", dotEnvFileName, err)
	}

	for key, value := range values {
		if _, exists := lookup(key); exists {
			continue
		}
		if err = setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	log.Infof("Loaded %d variable(s) from %s", len(values), dotEnvFileName)
	return nil
}

// Bootstrap writes the runner variables every test starts from and returns
// the resulting configuration. An existing INPUT_GITHUB_TOKEN is kept.
func Bootstrap(
	settings *entities.Settings,
	root string,
	lookup entities.LookupFunc,
	setenv entities.SetenvFunc,
) (*entities.ActionConfig, error) {
	if err := LoadDotEnv(root, lookup, setenv); err != nil {
		return nil, err
	}

	defaults := [][2]string{
		{entities.EnvRepository, settings.Repository},
		{entities.EnvOutput, support.ResolvePath(root, settings.OutputFile)},
		{entities.EnvStepSummary, support.ResolvePath(root, settings.StepSummaryFile)},
		{entities.EnvWorkspace, support.ResolvePath(root, settings.WorkspaceDir)},
		{entities.EnvInputChangelogPath, settings.ChangelogPath},
		{entities.EnvInputEventAPIMaxAttempts, strconv.Itoa(settings.EventAPIMaxAttempts)},
		{entities.EnvInputFailOnEventsAPIErr, entities.FormatBool(false)},
	}
	if _, exists := lookup(entities.EnvInputGitHubToken); !exists {
		defaults = append(defaults, [2]string{entities.EnvInputGitHubToken, ""})
	}

	for _, pair := range defaults {
		if err := setenv(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", pair[0], err)
		}
	}

	config := entities.LoadActionConfig(lookup)
	if !config.HasGitHubToken() {
		log.Warnf("%s is not set, tests that need the GitHub API will be skipped", entities.EnvInputGitHubToken)
	}
	return config, nil
}
