package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitInfra "github.com/rios0rios0/gitforge/pkg/git/infrastructure"
	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

// ErrUnsupportedRemote is returned when the origin does not point at GitHub.
var ErrUnsupportedRemote = errors.New("unsupported git remote")

// GitRemoteRepository reads the origin remote of a local clone.
type GitRemoteRepository struct{}

// NewGitRemoteRepository creates a go-git backed RemoteRepository.
func NewGitRemoteRepository() repositories.RemoteRepository {
	return &GitRemoteRepository{}
}

// DetectRepositoryRef opens the clone containing dir (walking up to the
// enclosing .git) and parses the origin URL into owner/name.
func (it *GitRemoteRepository) DetectRepositoryRef(dir string) (entities.RepositoryRef, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return entities.RepositoryRef{}, fmt.Errorf("invalid path %q: %w", dir, err)
	}

	//nolint:exhaustruct // only DetectDotGit is relevant
	repo, err := gogit.PlainOpenWithOptions(absDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return entities.RepositoryRef{}, fmt.Errorf("%s is not inside a git repository: %w", absDir, err)
	}

	remoteURL, err := gitInfra.GetRemoteRepoURL(repo)
	if err != nil {
		return entities.RepositoryRef{}, fmt.Errorf("cannot read remote origin: %w", err)
	}

	ref, err := RefFromRemoteURL(remoteURL)
	if err != nil {
		return entities.RepositoryRef{}, err
	}
	logger.Debugf("Detected %s from remote %s", ref, remoteURL)
	return ref, nil
}

// RefFromRemoteURL turns a GitHub remote URL into a RepositoryRef. Remotes
// hosted anywhere else are rejected with ErrUnsupportedRemote.
func RefFromRemoteURL(rawURL string) (entities.RepositoryRef, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")

	info, err := gitInfra.ParseRemoteURL(cleaned)
	if err != nil {
		return entities.RepositoryRef{}, fmt.Errorf("%w: %w", ErrUnsupportedRemote, err)
	}
	if info.ServiceType != globalEntities.GITHUB {
		return entities.RepositoryRef{}, fmt.Errorf("%w: %s is not hosted on GitHub", ErrUnsupportedRemote, rawURL)
	}

	ref, err := entities.ParseRepositoryRef(info.Organization + "/" + info.RepoName)
	if err != nil {
		return entities.RepositoryRef{}, fmt.Errorf("%w: %w", ErrUnsupportedRemote, err)
	}
	return ref, nil
}
