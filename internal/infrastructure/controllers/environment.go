package controllers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
	"github.com/rios0rios0/releasefixtures/internal/support"
)

// resolveEnvironment reads the --root and --config flags and loads the settings.
func resolveEnvironment(cmd *cobra.Command) (*entities.Settings, string, error) {
	root, _ := cmd.Flags().GetString("root")
	settingsPath, _ := cmd.Flags().GetString("config")

	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get the current working directory: %w", err)
		}
		if root, err = support.FindRepositoryRoot(cwd); err != nil {
			return nil, "", err
		}
	}

	settings, err := entities.LoadSettings(settingsPath, root)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, root, nil
}
