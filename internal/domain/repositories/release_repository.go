package repositories

import (
	"context"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// ReleaseRepository abstracts the remote API that publishes releases.
// Implementations translate transport failures into the entities error taxonomy.
type ReleaseRepository interface {
	// Name returns the hosting provider identifier (e.g. "github").
	Name() string

	// ListReleases returns every published release in API order (newest first).
	// A repository without releases yields an empty slice and no error.
	ListReleases(ctx context.Context, ref entities.RepositoryRef) ([]entities.Release, error)

	// GetRepositoryMetadata fetches descriptive repository information.
	GetRepositoryMetadata(ctx context.Context, ref entities.RepositoryRef) (*entities.RepositoryMetadata, error)

	// DownloadAsset streams the asset to destPath, following redirects.
	DownloadAsset(ctx context.Context, ref entities.RepositoryRef, asset entities.Asset, destPath string) error
}
