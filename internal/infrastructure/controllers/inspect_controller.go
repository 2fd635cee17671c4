package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// InspectController handles the "inspect" subcommand (offline archive check).
type InspectController struct {
	command commands.Inspect
}

// NewInspectController creates a new InspectController.
func NewInspectController(command commands.Inspect) *InspectController {
	return &InspectController{command: command}
}

// GetBind returns the Cobra command metadata for the inspect controller.
func (it *InspectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inspect <archive.zip>",
		Short: "Validate a local component archive without network access",
		Long: `Extract a local .zip archive and report which 4D component shape it
contains, along with its declared dependencies. --name sets the repository
name the archive is checked against; it defaults to the archive name up to
the first '-' or '_'.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds the inspect-specific flags to the given Cobra command.
func (it *InspectController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Repository name the archive must match")
	cmd.Flags().String("scratch-dir", "", "Directory for temporary extraction (overrides workspace.root)")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
}

// Execute inspects the archive given as the single argument.
func (it *InspectController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	scratchDir, _ := cmd.Flags().GetString("scratch-dir")
	asJSON, _ := cmd.Flags().GetBool("json")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, settings, commands.InspectOptions{
		ArchivePath: args[0],
		Name:        name,
		ScratchRoot: scratchDir,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if jsonErr := writeJSON(out, result); jsonErr != nil {
			return jsonErr
		}
	} else {
		writeReleaseText(out, result, "")
	}

	if !result.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidRepositories, args[0])
	}
	return nil
}
