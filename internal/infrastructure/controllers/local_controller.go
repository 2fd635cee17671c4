package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// LocalController handles the "local" subcommand: validate the GitHub
// repository a local clone points to.
type LocalController struct {
	command commands.Local
}

// NewLocalController creates a new LocalController.
func NewLocalController(command commands.Local) *LocalController {
	return &LocalController{command: command}
}

// GetBind returns the Cobra command metadata for the local controller.
func (it *LocalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "local [path]",
		Short: "Validate the releases of the repository a local clone points to",
		Long: `Read the "origin" remote of the Git clone at path (default: current
directory), derive owner/name and validate its releases like "check" does.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the local-specific flags to the given Cobra command.
func (it *LocalController) AddFlags(cmd *cobra.Command) {
	addValidateFlags(cmd)
}

// Execute runs the local validation mode.
func (it *LocalController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, settings, commands.LocalOptions{
		RepoDir:  repoDir,
		Validate: validateOptions(cmd),
	})
	if err != nil {
		return err
	}

	results := []entities.RepositoryValidation{result}
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		if jsonErr := writeBatchJSON(out, results); jsonErr != nil {
			return jsonErr
		}
	} else {
		writeRepositoryText(out, result)
	}

	if !result.IsValid {
		return ErrInvalidRepositories
	}
	return nil
}
