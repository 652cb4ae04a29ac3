package entities

import (
	"context"
	"sync"
)

// CommitLister resolves the most recent commit of a branch.
type CommitLister interface {
	LatestCommit(ctx context.Context, owner, repo, branch string) (string, error)
}

// HeadResolver resolves the HEAD commit of a local checkout.
type HeadResolver interface {
	HeadCommit(path string) (string, error)
}

// CommitCache holds the latest commit SHA for the lifetime of a test session.
type CommitCache struct {
	mu  sync.Mutex
	sha string
}

// NewCommitCache creates an empty cache.
func NewCommitCache() *CommitCache {
	return &CommitCache{}
}

// Get returns the cached SHA and whether one was stored.
func (it *CommitCache) Get() (string, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.sha, it.sha != ""
}

// GetOrFill returns the cached SHA, calling fill only while the cache is empty.
func (it *CommitCache) GetOrFill(fill func() (string, error)) (string, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.sha != "" {
		return it.sha, nil
	}

	sha, err := fill()
	if err != nil {
		return "", err
	}
	it.sha = sha
	return sha, nil
}
