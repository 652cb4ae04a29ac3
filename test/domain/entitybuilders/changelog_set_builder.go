//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// ChangelogSetBuilder helps create test changelog sets with a fluent interface.
type ChangelogSetBuilder struct {
	index         int
	changelogPath string
	version       string
	date          string
	url           string
	changes       string
}

// NewChangelogSetBuilder creates a new changelog set builder with sensible defaults.
func NewChangelogSetBuilder() *ChangelogSetBuilder {
	return &ChangelogSetBuilder{
		index:         1,
		changelogPath: "github/workspace/CHANGELOG.md",
		version:       "1.0.0",
		date:          "2023-01-09",
		url:           "https://github.com/LizardByte/setup-release-action/releases/tag/v1.0.0",
		changes:       "### Added\n\n- Initial release",
	}
}

// WithIndex sets the set index, which also decides whether a changelog is expected.
func (b *ChangelogSetBuilder) WithIndex(index int) *ChangelogSetBuilder {
	b.index = index
	return b
}

// WithChangelogPath sets the workspace changelog path.
func (b *ChangelogSetBuilder) WithChangelogPath(changelogPath string) *ChangelogSetBuilder {
	b.changelogPath = changelogPath
	return b
}

// WithVersion sets the expected version.
func (b *ChangelogSetBuilder) WithVersion(version string) *ChangelogSetBuilder {
	b.version = version
	return b
}

// WithDate sets the expected release date.
func (b *ChangelogSetBuilder) WithDate(date string) *ChangelogSetBuilder {
	b.date = date
	return b
}

// WithURL sets the expected release URL.
func (b *ChangelogSetBuilder) WithURL(url string) *ChangelogSetBuilder {
	b.url = url
	return b
}

// WithChanges sets the expected release body.
func (b *ChangelogSetBuilder) WithChanges(changes string) *ChangelogSetBuilder {
	b.changes = changes
	return b
}

// Build creates the changelog set.
func (b *ChangelogSetBuilder) Build() *entities.ChangelogSet {
	return &entities.ChangelogSet{
		Index:             b.index,
		ChangelogExpected: b.index > 0,
		ChangelogPath:     b.changelogPath,
		Version:           b.version,
		Date:              b.date,
		URL:               b.url,
		Changes:           b.changes,
	}
}
