package commands

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// ResolveLatestCommit returns the newest commit of branch in the repository of
// config, asking the lister only the first time for a given cache.
func ResolveLatestCommit(
	ctx context.Context,
	cache *entities.CommitCache,
	lister entities.CommitLister,
	config *entities.ActionConfig,
	branch string,
) (string, error) {
	owner, name, err := config.RepositoryParts()
	if err != nil {
		return "", err
	}

	return cache.GetOrFill(func() (string, error) {
		log.Infof("Fetching the latest commit of %s on '%s'", config.Repository, branch)
		sha, listErr := lister.LatestCommit(ctx, owner, name, branch)
		if listErr != nil {
			return "", fmt.Errorf("failed to resolve latest commit: %w", listErr)
		}
		return sha, nil
	})
}
