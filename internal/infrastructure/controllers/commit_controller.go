package controllers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasefixtures/internal/domain/commands"
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/infrastructure/repositories"
)

const commitTimeout = 30 * time.Second

// CommitController handles the "commit" subcommand.
type CommitController struct {
	newLister repositories.CommitListerFactory
	heads     entities.HeadResolver
	cache     *entities.CommitCache
}

// NewCommitController creates a new CommitController.
func NewCommitController(
	newLister repositories.CommitListerFactory,
	heads entities.HeadResolver,
	cache *entities.CommitCache,
) *CommitController {
	return &CommitController{
		newLister: newLister,
		heads:     heads,
		cache:     cache,
	}
}

// GetBind returns the Cobra command metadata.
func (it *CommitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commit",
		Short: "Print the commit SHA the latest-commit fixture would use",
		Long: `Print the newest commit of the configured branch, as returned by the
GitHub API with INPUT_GITHUB_TOKEN. With --local, print HEAD of the local
checkout instead.`,
	}
}

// AddFlags binds the flags of the commit command.
func (it *CommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("local", false, "use HEAD of the local checkout")
}

// Execute runs the commit command.
func (it *CommitController) Execute(cmd *cobra.Command, _ []string) error {
	settings, root, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}

	var sha string
	if local, _ := cmd.Flags().GetBool("local"); local {
		sha, err = it.heads.HeadCommit(root)
	} else {
		sha, err = it.latestCommit(cmd.Context(), settings, root)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sha)
	return nil
}

func (it *CommitController) latestCommit(
	ctx context.Context,
	settings *entities.Settings,
	root string,
) (string, error) {
	if err := commands.LoadDotEnv(root, os.LookupEnv, os.Setenv); err != nil {
		return "", err
	}

	config := entities.LoadActionConfig(os.LookupEnv)
	config.Repository = settings.Repository
	if !config.HasGitHubToken() {
		return "", fmt.Errorf("%s environment variable not set", entities.EnvInputGitHubToken)
	}

	lister, err := it.newLister(config.GitHubToken, settings.APIBaseURL)
	if err != nil {
		return "", err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, commitTimeout)
	defer cancel()

	return commands.ResolveLatestCommit(ctx, it.cache, lister, config, settings.Branch)
}
