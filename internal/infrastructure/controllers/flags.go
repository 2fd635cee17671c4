package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func addValidateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false, "Inspect every release instead of stopping at the first matching archive")
	cmd.Flags().String("tag", "", "Inspect only the release with this tag")
	cmd.MarkFlagsMutuallyExclusive("all", "tag")
	cmd.Flags().Bool("metadata", false, "Include repository metadata in the report")
	cmd.Flags().String("token", "", "GitHub token (overrides config and GITHUB_TOKEN/GH_TOKEN)")
	cmd.Flags().String("scratch-dir", "", "Directory for temporary downloads (overrides workspace.root)")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
}

func validateOptions(cmd *cobra.Command) commands.ValidateOptions {
	all, _ := cmd.Flags().GetBool("all")
	tag, _ := cmd.Flags().GetString("tag")
	metadata, _ := cmd.Flags().GetBool("metadata")
	token, _ := cmd.Flags().GetString("token")
	scratchDir, _ := cmd.Flags().GetString("scratch-dir")

	return commands.ValidateOptions{
		Policy:          entities.NewSelectionPolicy(all, tag),
		IncludeMetadata: metadata,
		Token:           token,
		ScratchRoot:     scratchDir,
	}
}
