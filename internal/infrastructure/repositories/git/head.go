package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

var ErrNotARepository = errors.New("not a git repository")

// HeadResolver reads the HEAD commit of a local checkout.
type HeadResolver struct{}

// NewHeadResolver creates a new HeadResolver.
func NewHeadResolver() *HeadResolver {
	return &HeadResolver{}
}

// HeadCommit returns the SHA HEAD points at, searching parent directories for .git.
func (r *HeadResolver) HeadCommit(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return "", fmt.Errorf("could not open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("could not get repository HEAD: %w", err)
	}

	log.Debugf("HEAD of %s is %s (%s)", path, head.Hash(), head.Name())
	return head.Hash().String(), nil
}

var _ entities.HeadResolver = (*HeadResolver)(nil)
