package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
	infraRepos "github.com/e-marchand/dep-checker/internal/infrastructure/repositories"
)

const extractDirName = "extracted"

// Validate is the interface for the validate command (the release resolver).
type Validate interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		identifiers []string,
		opts ValidateOptions,
	) []entities.RepositoryValidation
}

// ValidateOptions holds runtime options for one batch.
type ValidateOptions struct {
	Policy          entities.SelectionPolicy
	IncludeMetadata bool
	Token           string // Overrides the token resolved from settings/env
	ScratchRoot     string // Overrides settings.Workspace.Root
}

// ValidateCommand resolves each repository to the releases that carry a
// usable 4D component. Repositories are processed one after the other.
type ValidateCommand struct {
	sourceRegistry   *infraRepos.SourceRegistry
	workspaceFactory infraRepos.WorkspaceFactory
	layout           repositories.LayoutRepository
}

// NewValidateCommand creates a new ValidateCommand.
func NewValidateCommand(
	sourceRegistry *infraRepos.SourceRegistry,
	workspaceFactory infraRepos.WorkspaceFactory,
	layout repositories.LayoutRepository,
) *ValidateCommand {
	return &ValidateCommand{
		sourceRegistry:   sourceRegistry,
		workspaceFactory: workspaceFactory,
		layout:           layout,
	}
}

// Execute validates every identifier and returns one result per identifier,
// in input order. It never fails as a whole: every problem is recorded in
// the corresponding RepositoryValidation.
func (it *ValidateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	identifiers []string,
	opts ValidateOptions,
) []entities.RepositoryValidation {
	results := make([]entities.RepositoryValidation, 0, len(identifiers))

	source, err := it.sourceRegistry.Get(settings.Provider, settings.SourceOptions(opts.Token))
	if err != nil {
		logger.Errorf("Failed to initialize provider %q: %v", settings.Provider, err)
		for _, identifier := range identifiers {
			result := newRepositoryValidation(identifier)
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot initialize provider: %v", err))
			results = append(results, result)
		}
		return results
	}

	root := opts.ScratchRoot
	if root == "" {
		root = settings.Workspace.Root
	}
	workspace := it.workspaceFactory(root)

	logger.Infof("Validating %d repositories with %s (mode: %s)", len(identifiers), source.Name(), opts.Policy.Mode)
	for _, identifier := range identifiers {
		result := it.validateRepository(ctx, source, workspace, identifier, opts)
		if result.IsValid {
			logger.Infof("%s: valid", result.Repository)
		} else {
			logger.Warnf("%s: invalid", result.Repository)
		}
		results = append(results, result)
	}
	return results
}

func (it *ValidateCommand) validateRepository(
	ctx context.Context,
	source repositories.ReleaseRepository,
	workspace repositories.WorkspaceRepository,
	identifier string,
	opts ValidateOptions,
) entities.RepositoryValidation {
	result := newRepositoryValidation(identifier)

	ref, err := entities.ParseRepositoryRef(identifier)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid repository identifier: %v", err))
		return result
	}
	result.Ref = ref

	if opts.IncludeMetadata {
		metadata, metaErr := source.GetRepositoryMetadata(ctx, ref)
		if metaErr != nil {
			logger.Warnf("Could not fetch metadata for %s: %v", ref, metaErr)
		} else {
			result.Metadata = metadata
		}
	}

	releases, err := source.ListReleases(ctx, ref)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot list releases: %v", err))
		return result
	}
	if len(releases) == 0 {
		result.Errors = append(result.Errors, "No releases found")
		return result
	}
	result.HasReleases = true

	candidates := releases
	if opts.Policy.Mode == entities.SelectTag {
		release, found := entities.FindReleaseByTag(releases, opts.Policy.Tag)
		if !found {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Tag %q not found in %s; available tags: %s",
				opts.Policy.Tag, ref, strings.Join(entities.SortedTags(releases), ", "),
			))
			return result
		}
		candidates = []entities.Release{release}
	}

	for _, release := range candidates {
		inspection := it.inspectRelease(ctx, source, workspace, ref, release)
		result.ReleaseValidations = append(result.ReleaseValidations, inspection)

		if opts.Policy.Mode == entities.SelectDefault && inspection.HasMatchingAsset {
			logger.Debugf("%s: stopping at release %s (first matching archive)", ref, release.Tag)
			break
		}
	}

	_, result.IsValid = result.ValidRelease()
	if !result.IsValid {
		result.Errors = append(result.Errors, summaryError(ref, result))
	}
	return result
}

// inspectRelease runs match, download, extract and classify for one release.
// Every failure lands in the returned ReleaseValidation's error list.
func (it *ValidateCommand) inspectRelease(
	ctx context.Context,
	source repositories.ReleaseRepository,
	workspace repositories.WorkspaceRepository,
	ref entities.RepositoryRef,
	release entities.Release,
) entities.ReleaseValidation {
	logger.Infof("[%s] Inspecting release %s", ref, release.Tag)
	result := entities.ReleaseValidation{Tag: release.Tag, Errors: []string{}}

	archives := release.ArchiveAssets()
	if len(archives) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Release %s has no %s assets", release.Tag, entities.ArchiveSuffix,
		))
		return result
	}

	asset, matched := entities.MatchArchiveAsset(archives, ref.Name)
	if !matched {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Release %s has no archive named after %q; candidates: %s",
			release.Tag, ref.Name, strings.Join(entities.AssetNames(archives), ", "),
		))
		return result
	}
	result.HasMatchingAsset = true
	result.MatchedAssetName = asset.Name

	scratch, err := workspace.CreateScratchSpace(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot allocate scratch space: %v", err))
		return result
	}
	defer workspace.Cleanup(scratch)

	archivePath := filepath.Join(scratch, filepath.Base(asset.Name))
	if downloadErr := source.DownloadAsset(ctx, ref, asset, archivePath); downloadErr != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot download %s: %v", asset.Name, downloadErr))
		return result
	}

	classification, err := classifyArchive(ctx, workspace, it.layout, archivePath, scratch, ref.Name)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot extract %s: %v", asset.Name, err))
		return result
	}
	applyClassification(&result, classification)
	return result
}

// classifyArchive extracts archivePath into a subdirectory of scratch and
// classifies the resulting tree.
func classifyArchive(
	ctx context.Context,
	workspace repositories.WorkspaceRepository,
	layout repositories.LayoutRepository,
	archivePath, scratch, expectedName string,
) (entities.Classification, error) {
	extractDir := filepath.Join(scratch, extractDirName)
	if err := workspace.Extract(ctx, archivePath, extractDir); err != nil {
		return entities.Classification{}, err
	}
	return layout.Classify(extractDir, expectedName), nil
}

func applyClassification(result *entities.ReleaseValidation, classification entities.Classification) {
	result.ComponentKind = classification.Kind
	result.Dependencies = classification.Dependencies
	result.Errors = append(result.Errors, classification.Errors...)
	if classification.Kind.Recognized() {
		logger.Debugf("Found %s component with %d dependencies", classification.Kind, len(classification.Dependencies))
	}
}

func newRepositoryValidation(identifier string) entities.RepositoryValidation {
	return entities.RepositoryValidation{
		Repository:         strings.TrimSpace(identifier),
		ReleaseValidations: []entities.ReleaseValidation{},
		Errors:             []string{},
	}
}

func summaryError(ref entities.RepositoryRef, result entities.RepositoryValidation) string {
	if !result.AnyMatchingAsset() {
		return fmt.Sprintf(
			"No inspected release of %s has an archive named %s%s, %s-*%s or %s_*%s",
			ref, ref.Name, entities.ArchiveSuffix, ref.Name, entities.ArchiveSuffix, ref.Name, entities.ArchiveSuffix,
		)
	}
	return fmt.Sprintf(
		"Releases of %s have matching archives but none contains a valid 4D component", ref,
	)
}
