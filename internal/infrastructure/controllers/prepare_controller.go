package controllers

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasefixtures/internal/domain/commands"
	"github.com/rios0rios0/releasefixtures/internal/domain/entities"
)

// PrepareController handles the "prepare" subcommand.
type PrepareController struct{}

// NewPrepareController creates a new PrepareController.
func NewPrepareController() *PrepareController {
	return &PrepareController{}
}

// GetBind returns the Cobra command metadata.
func (it *PrepareController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "prepare",
		Short: "Seed the simulated workspace with a sample changelog set",
		Long: `Copy the CHANGELOG.md of the chosen sample set into the simulated
workspace and empty the output files, so the action can be run by hand
against it. The runner variables are printed as export lines, so a shell
can pick them up with: eval "$(releasefixtures prepare)". Nothing is
cleaned up afterwards; use "clean" for that.`,
	}
}

// AddFlags binds the flags of the prepare command.
func (it *PrepareController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("set", "s", 1, "changelog set index")
}

// Execute runs the prepare command.
func (it *PrepareController) Execute(cmd *cobra.Command, _ []string) error {
	settings, root, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}
	index, _ := cmd.Flags().GetInt("set")

	exports := &exportRecorder{}
	if _, err = commands.Bootstrap(settings, root, os.LookupEnv, exports.Setenv); err != nil {
		return err
	}

	changelogSet, err := commands.LoadChangelogSet(settings, root, index)
	if err != nil {
		return fmt.Errorf("failed to prepare workspace: %w", err)
	}

	if err = commands.TruncateOutputFiles(settings, root); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"set":       entities.SetDirName(changelogSet.Index),
		"expected":  changelogSet.ChangelogExpected,
		"changelog": changelogSet.ChangelogPath,
		"version":   changelogSet.Version,
		"date":      changelogSet.Date,
		"url":       changelogSet.URL,
	}).Info("Workspace prepared")
	return exports.Print(cmd.OutOrStdout())
}

// exportRecorder sets variables in this process and keeps them, in order, for
// the shell that ran the command. The token never leaves the process.
type exportRecorder struct {
	pairs [][2]string
}

func (it *exportRecorder) Setenv(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return err
	}
	if key != entities.EnvInputGitHubToken {
		it.pairs = append(it.pairs, [2]string{key, value})
	}
	return nil
}

func (it *exportRecorder) Print(out io.Writer) error {
	for _, pair := range it.pairs {
		if _, err := fmt.Fprintf(out, "export %s=%s\n", pair[0], shellQuote(pair[1])); err != nil {
			return fmt.Errorf("failed to print %s: %w", pair[0], err)
		}
	}
	return nil
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
