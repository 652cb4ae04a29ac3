package controllers

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasefixtures/internal/domain/commands"
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// VerifyController handles the "verify" subcommand.
type VerifyController struct{}

// NewVerifyController creates a new VerifyController.
func NewVerifyController() *VerifyController {
	return &VerifyController{}
}

// GetBind returns the Cobra command metadata.
func (it *VerifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "verify",
		Short: "Check that every sample changelog set is complete and consistent",
	}
}

// Execute runs the verify command.
func (it *VerifyController) Execute(cmd *cobra.Command, _ []string) error {
	settings, root, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}

	if err = commands.VerifyDataSets(settings, root); err != nil {
		return err
	}

	log.Info("All changelog sets are consistent")
	return nil
}
