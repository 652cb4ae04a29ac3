package controllers

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasefixtures/internal/domain/commands"
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// CleanController handles the "clean" subcommand.
type CleanController struct{}

// NewCleanController creates a new CleanController.
func NewCleanController() *CleanController {
	return &CleanController{}
}

// GetBind returns the Cobra command metadata.
func (it *CleanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clean",
		Short: "Remove the simulated workspace and empty the output files",
	}
}

// Execute runs the clean command.
func (it *CleanController) Execute(cmd *cobra.Command, _ []string) error {
	settings, root, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}

	workspace := commands.WorkspaceDir(settings, root)
	if err = commands.CleanWorkspace(workspace); err != nil {
		return err
	}
	if err = commands.TruncateOutputFiles(settings, root); err != nil {
		return err
	}

	log.Infof("Removed %s", workspace)
	return nil
}
