package entities

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Changelog set file names inside each "set{N}" directory.
const (
	ChangelogFileName = "CHANGELOG.md"
	VersionFileName   = "version.txt"
	DateFileName      = "date.txt"
	URLFileName       = "url.txt"
	ChangesFileName   = "changes.txt"
)

// ChangelogSetIndices are the sample directories shipped with the data sets.
// Set 0 has no CHANGELOG.md on purpose.
var ChangelogSetIndices = []int{0, 1, 2} //nolint:gochecknoglobals // fixed parameter list

// ChangelogSet is the expected output for one sample changelog.
type ChangelogSet struct {
	Index             int
	ChangelogExpected bool
	ChangelogPath     string
	Version           string
	Date              string
	URL               string
	Changes           string
}

// SetDirName returns the directory name for the given index.
func SetDirName(index int) string {
	return fmt.Sprintf("set%d", index)
}

// SemVer parses the expected version.
func (it *ChangelogSet) SemVer() (*semver.Version, error) {
	version, err := semver.NewVersion(it.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q in %s: %w", it.Version, SetDirName(it.Index), err)
	}
	return version, nil
}
