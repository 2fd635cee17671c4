package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

// Local is the interface for the local command (validate the current clone).
type Local interface {
	Execute(ctx context.Context, settings *entities.Settings, opts LocalOptions) (entities.RepositoryValidation, error)
}

// LocalOptions holds runtime options for the local mode.
type LocalOptions struct {
	RepoDir  string
	Validate ValidateOptions
}

// LocalCommand detects which hosted repository a local clone points to and
// validates its releases.
type LocalCommand struct {
	remote   repositories.RemoteRepository
	validate Validate
}

// NewLocalCommand creates a new LocalCommand.
func NewLocalCommand(remote repositories.RemoteRepository, validate Validate) *LocalCommand {
	return &LocalCommand{
		remote:   remote,
		validate: validate,
	}
}

// Execute fails only when the clone's remote cannot be resolved.
func (it *LocalCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts LocalOptions,
) (entities.RepositoryValidation, error) {
	repoDir := opts.RepoDir
	if repoDir == "" {
		repoDir = "."
	}

	ref, err := it.remote.DetectRepositoryRef(repoDir)
	if err != nil {
		return entities.RepositoryValidation{}, fmt.Errorf("failed to detect repository: %w", err)
	}
	logger.Infof("Detected repository: %s", ref)

	results := it.validate.Execute(ctx, settings, []string{ref.String()}, opts.Validate)
	if len(results) == 0 {
		return entities.RepositoryValidation{}, fmt.Errorf("no result produced for %s", ref)
	}
	return results[0], nil
}
