package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories/github"
)

// CommitListerFactory builds a lister once the token and API URL are known.
type CommitListerFactory func(token, baseURL string) (entities.CommitLister, error)

// NewCommitListerFactory returns the GitHub-backed factory.
func NewCommitListerFactory() CommitListerFactory {
	return func(token, baseURL string) (entities.CommitLister, error) {
		lister, err := github.NewCommitLister(token, baseURL)
		if err != nil {
			return nil, err
		}
		return lister, nil
	}
}

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewCommitListerFactory); err != nil {
		return err
	}
	return container.Provide(func() entities.HeadResolver {
		return git.NewHeadResolver()
	})
}
