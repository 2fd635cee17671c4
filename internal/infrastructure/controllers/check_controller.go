package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// CheckController handles the "check" subcommand (batch validation).
type CheckController struct {
	command commands.Validate
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Validate) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check <owner/repo>...",
		Short: "Validate the releases of one or more GitHub repositories",
		Long: `Validate that GitHub repositories publish a usable 4D component.

For each repository, releases are listed newest first. The archive asset named
after the repository (Name.zip, Name-<suffix>.zip or Name_<suffix>.zip) is
downloaded, extracted and inspected for a *.4dbase folder, a *.4DZ file or a
Project/*.4DProject file. Declared dependencies are read from
dependencies.json when present.

By default the first release with a matching archive decides the outcome;
use --all to inspect every release, or --tag to inspect a single one.
The command exits non-zero when any repository is invalid.`,
		Args: cobra.ArbitraryArgs,
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	addValidateFlags(cmd)
	cmd.Flags().StringP("file", "f", "", "Read repository identifiers from a file (one per line, # comments)")
}

// Execute validates every repository given as argument or listed in --file.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	identifiers := append([]string{}, args...)
	if listPath, _ := cmd.Flags().GetString("file"); listPath != "" {
		fromFile, err := readIdentifierFile(listPath)
		if err != nil {
			return err
		}
		identifiers = append(identifiers, fromFile...)
	}
	if len(identifiers) == 0 {
		return errors.New("no repositories given; pass owner/repo arguments or --file")
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	results := it.command.Execute(ctx, settings, identifiers, validateOptions(cmd))

	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		if jsonErr := writeBatchJSON(out, results); jsonErr != nil {
			return jsonErr
		}
	} else {
		writeBatchText(out, results)
	}

	if invalid := countInvalid(results); invalid > 0 {
		logger.Debugf("%d of %d repositories invalid", invalid, len(results))
		return fmt.Errorf("%w: %d of %d", ErrInvalidRepositories, invalid, len(results))
	}
	return nil
}
