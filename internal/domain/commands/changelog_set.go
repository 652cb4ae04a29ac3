package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/support"
)

var ErrUnknownChangelogSet = errors.New("unknown changelog set")

// SetDir returns the directory holding the sample files of a set.
func SetDir(settings *entities.Settings, root string, index int) string {
	return filepath.Join(support.ResolvePath(root, settings.DataDir), entities.SetDirName(index))
}

// WorkspaceDir returns the simulated runner checkout.
func WorkspaceDir(settings *entities.Settings, root string) string {
	return support.ResolvePath(root, settings.WorkspaceDir)
}

// ReadChangelogSet reads the expected values of a set without touching the workspace.
func ReadChangelogSet(settings *entities.Settings, root string, index int) (*entities.ChangelogSet, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChangelogSet, index)
	}

	setDir := SetDir(settings, root, index)
	if _, err := os.Stat(setDir); err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrUnknownChangelogSet, index, err)
	}

	changelogSet := &entities.ChangelogSet{
		Index:             index,
		ChangelogExpected: index > 0,
		ChangelogPath:     filepath.Join(WorkspaceDir(settings, root), settings.ChangelogPath),
	}

	targets := []struct {
		name  string
		value *string
	}{
		{entities.VersionFileName, &changelogSet.Version},
		{entities.DateFileName, &changelogSet.Date},
		{entities.URLFileName, &changelogSet.URL},
		{entities.ChangesFileName, &changelogSet.Changes},
	}
	for _, target := range targets {
		value, err := support.ReadTrimmed(filepath.Join(setDir, target.name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s of %s: %w", target.name, entities.SetDirName(index), err)
		}
		*target.value = value
	}

	return changelogSet, nil
}

// LoadChangelogSet copies the sample changelog of a set into the workspace and
// returns its expected values. Sets without a CHANGELOG.md leave the workspace empty.
func LoadChangelogSet(settings *entities.Settings, root string, index int) (*entities.ChangelogSet, error) {
	changelogSet, err := ReadChangelogSet(settings, root, index)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(filepath.Dir(changelogSet.ChangelogPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	source := filepath.Join(SetDir(settings, root, index), entities.ChangelogFileName)
	if _, statErr := os.Stat(source); errors.Is(statErr, os.ErrNotExist) {
		log.Debugf("%s has no %s, leaving the workspace empty", entities.SetDirName(index), entities.ChangelogFileName)
		return changelogSet, nil
	}

	if err = support.CopyFile(source, changelogSet.ChangelogPath); err != nil {
		return nil, fmt.Errorf("failed to copy changelog of %s: %w", entities.SetDirName(index), err)
	}
	return changelogSet, nil
}

// CleanWorkspace removes the simulated checkout and everything in it.
func CleanWorkspace(workspaceDir string) error {
	if err := os.RemoveAll(workspaceDir); err != nil {
		return fmt.Errorf("failed to clean workspace: %w", err)
	}
	return nil
}

// VerifyDataSets checks that every set can be read and matches its expectation.
func VerifyDataSets(settings *entities.Settings, root string) error {
	var errs []error

	for _, index := range entities.ChangelogSetIndices {
		changelogSet, err := ReadChangelogSet(settings, root, index)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		source := filepath.Join(SetDir(settings, root, index), entities.ChangelogFileName)
		_, statErr := os.Stat(source)
		hasChangelog := statErr == nil

		switch {
		case changelogSet.ChangelogExpected && !hasChangelog:
			errs = append(errs, fmt.Errorf("%s: expected a %s", entities.SetDirName(index), entities.ChangelogFileName))
		case !changelogSet.ChangelogExpected && hasChangelog:
			errs = append(errs, fmt.Errorf("%s: unexpected %s", entities.SetDirName(index), entities.ChangelogFileName))
		case changelogSet.ChangelogExpected:
			if _, err = changelogSet.SemVer(); err != nil {
				errs = append(errs, err)
			}
		}

		log.Infof("Checked %s (changelog expected: %t)", entities.SetDirName(index), changelogSet.ChangelogExpected)
	}

	return errors.Join(errs...)
}

// TruncateOutputFiles empties GITHUB_OUTPUT and GITHUB_STEP_SUMMARY.
func TruncateOutputFiles(settings *entities.Settings, root string) error {
	for _, name := range []string{settings.OutputFile, settings.StepSummaryFile} {
		if err := support.TruncateFile(support.ResolvePath(root, name)); err != nil {
			return err
		}
	}
	return nil
}
