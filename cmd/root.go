package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/rios0rios0/releasefixtures/internal"
)

// cliConfig holds the CLI-level configuration flags.
type cliConfig struct {
	root       string
	configPath string
	verbose    bool
}

func initRootCmd(cfg *cliConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "releasefixtures",
		Short: "Prepare the GitHub Actions runtime used by the release action tests",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if cfg.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfg.configPath, "config", "c", "", "settings file path")
	rootCmd.PersistentFlags().StringVarP(&cfg.root, "root", "r", "", "repository root (default: nearest go.mod)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd
}

// Execute sets up the CLI and runs the root command.
func Execute() error {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		return fmt.Errorf("failed to register providers: %w", err)
	}

	cfg := &cliConfig{}
	rootCmd := initRootCmd(cfg)

	err := container.Invoke(func(app *internal.AppInternal) {
		rootCmd.AddCommand(app.Commands()...)
	})
	if err != nil {
		return fmt.Errorf("failed to build commands: %w", err)
	}

	return rootCmd.Execute()
}
