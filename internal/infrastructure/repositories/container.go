package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/e-marchand/dep-checker/internal/domain/repositories"
	gitRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/git"
	ghRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/github"
	layoutRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/layout"
	wsRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/workspace"
)

// WorkspaceFactory builds a workspace rooted at the given directory. The root
// is only known once settings and flags are resolved.
type WorkspaceFactory func(root string) domainRepos.WorkspaceRepository

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register("github", ghRepo.NewReleaseRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() WorkspaceFactory {
		return func(root string) domainRepos.WorkspaceRepository {
			return wsRepo.NewWorkspaceRepository(root)
		}
	}); err != nil {
		return err
	}

	if err := container.Provide(layoutRepo.NewLayoutRepository); err != nil {
		return err
	}

	if err := container.Provide(gitRepo.NewGitRemoteRepository); err != nil {
		return err
	}

	return nil
}
