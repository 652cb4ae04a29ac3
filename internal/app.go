package internal

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// flagBinder is implemented by controllers that declare their own flags.
type flagBinder interface {
	AddFlags(cmd *cobra.Command)
}

// AppInternal aggregates all controllers for the application.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal with the given controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// Commands turns every controller into a Cobra subcommand.
func (it *AppInternal) Commands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(it.controllers))
	for _, controller := range it.controllers {
		bind := controller.GetBind()
		cmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(cmd *cobra.Command, arguments []string) error {
				log.Debugf("Running %q", cmd.CommandPath())
				return controller.Execute(cmd, arguments)
			},
		}
		if binder, ok := controller.(flagBinder); ok {
			binder.AddFlags(cmd)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
