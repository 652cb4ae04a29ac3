package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v66/github"
	"github.com/hashicorp/go-cleanhttp"
	log "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

const perPage = 1

var ErrNoCommitsFound = errors.New("no commits found")

// CommitLister implements entities.CommitLister on the GitHub REST API.
type CommitLister struct {
	client *gogithub.Client
}

// NewCommitLister creates a lister authenticated with the given token.
// An empty baseURL keeps the public API endpoint.
func NewCommitLister(token string, baseURL string) (*CommitLister, error) {
	client := gogithub.NewClient(cleanhttp.DefaultClient())
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = parsed
	}

	return &CommitLister{client: client}, nil
}

// LatestCommit returns the SHA of the first commit listed for branch.
func (l *CommitLister) LatestCommit(ctx context.Context, owner, repo, branch string) (string, error) {
	opts := &gogithub.CommitsListOptions{
		SHA:         branch,
		ListOptions: gogithub.ListOptions{PerPage: perPage},
	}

	commits, _, err := l.client.Repositories.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		return "", fmt.Errorf("failed to list commits of %s/%s: %w", owner, repo, err)
	}

	if len(commits) == 0 || commits[0].GetSHA() == "" {
		return "", fmt.Errorf("%w on %s/%s@%s", ErrNoCommitsFound, owner, repo, branch)
	}

	sha := commits[0].GetSHA()
	log.Debugf("Latest commit of %s/%s@%s is %s", owner, repo, branch, sha)
	return sha, nil
}

var _ entities.CommitLister = (*CommitLister)(nil)
