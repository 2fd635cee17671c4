package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
	infraRepos "github.com/e-marchand/dep-checker/internal/infrastructure/repositories"
)

// Inspect is the interface for the inspect command (offline archive check).
type Inspect interface {
	Execute(ctx context.Context, settings *entities.Settings, opts InspectOptions) (entities.ReleaseValidation, error)
}

// InspectOptions holds runtime options for inspecting a local archive.
type InspectOptions struct {
	ArchivePath string
	Name        string // Expected repository name; defaults to the archive stem
	ScratchRoot string
}

// InspectCommand materializes and classifies an archive already on disk,
// with no network access.
type InspectCommand struct {
	workspaceFactory infraRepos.WorkspaceFactory
	layout           repositories.LayoutRepository
}

// NewInspectCommand creates a new InspectCommand.
func NewInspectCommand(
	workspaceFactory infraRepos.WorkspaceFactory,
	layout repositories.LayoutRepository,
) *InspectCommand {
	return &InspectCommand{
		workspaceFactory: workspaceFactory,
		layout:           layout,
	}
}

// Execute returns an error only when the archive itself cannot be used.
// Naming and classification problems are recorded in the result.
func (it *InspectCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts InspectOptions,
) (entities.ReleaseValidation, error) {
	archivePath, err := filepath.Abs(opts.ArchivePath)
	if err != nil {
		return entities.ReleaseValidation{}, fmt.Errorf("invalid path: %w", err)
	}
	if info, statErr := os.Stat(archivePath); statErr != nil {
		return entities.ReleaseValidation{}, fmt.Errorf("cannot read archive: %w", statErr)
	} else if info.IsDir() {
		return entities.ReleaseValidation{}, fmt.Errorf("%s is a directory, not an archive", archivePath)
	}

	asset := entities.Asset{Name: filepath.Base(archivePath)}
	if !asset.IsArchive() {
		return entities.ReleaseValidation{}, fmt.Errorf(
			"%s does not end in %s", asset.Name, entities.ArchiveSuffix,
		)
	}

	name := opts.Name
	if name == "" {
		name = archiveStem(asset.Name)
	}

	result := entities.ReleaseValidation{Tag: "", MatchedAssetName: asset.Name, Errors: []string{}}
	if _, matched := entities.MatchArchiveAsset([]entities.Asset{asset}, name); matched {
		result.HasMatchingAsset = true
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Archive %s would not be matched for repository %q", asset.Name, name,
		))
	}

	root := opts.ScratchRoot
	if root == "" {
		root = settings.Workspace.Root
	}
	workspace := it.workspaceFactory(root)

	scratch, err := workspace.CreateScratchSpace(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot allocate scratch space: %v", err))
		return result, nil
	}
	defer workspace.Cleanup(scratch)

	logger.Infof("Inspecting %s as %q", asset.Name, name)
	classification, err := classifyArchive(ctx, workspace, it.layout, archivePath, scratch, name)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot extract %s: %v", asset.Name, err))
		return result, nil
	}
	applyClassification(&result, classification)
	return result, nil
}

// archiveStem strips the archive suffix and any "-<version>" tail, so
// "Widget-1.2.0.zip" inspects as "Widget".
func archiveStem(fileName string) string {
	stem := fileName[:len(fileName)-len(entities.ArchiveSuffix)]
	if idx := strings.IndexAny(stem, "-_"); idx > 0 {
		stem = stem[:idx]
	}
	return stem
}
