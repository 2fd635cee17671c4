//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

// SpyReleaseRepository implements repositories.ReleaseRepository as a configurable spy.
type SpyReleaseRepository struct {
	// --- identity ---
	ProviderName string

	// --- ListReleases ---
	Releases   []entities.Release
	ListErr    error
	ListedRefs []entities.RepositoryRef

	// --- GetRepositoryMetadata ---
	Metadata     *entities.RepositoryMetadata
	MetadataErr  error
	MetadataRefs []entities.RepositoryRef

	// --- DownloadAsset ---
	DownloadErr  error
	AssetContent map[string][]byte // asset name -> bytes written to destPath
	WriteToDisk  bool
	Downloaded   []entities.Asset
	Destinations []string
}

var _ repositories.ReleaseRepository = (*SpyReleaseRepository)(nil)

func (p *SpyReleaseRepository) Name() string {
	if p.ProviderName == "" {
		return "spy"
	}
	return p.ProviderName
}

func (p *SpyReleaseRepository) ListReleases(
	_ context.Context, ref entities.RepositoryRef,
) ([]entities.Release, error) {
	p.ListedRefs = append(p.ListedRefs, ref)
	return p.Releases, p.ListErr
}

func (p *SpyReleaseRepository) GetRepositoryMetadata(
	_ context.Context, ref entities.RepositoryRef,
) (*entities.RepositoryMetadata, error) {
	p.MetadataRefs = append(p.MetadataRefs, ref)
	return p.Metadata, p.MetadataErr
}

func (p *SpyReleaseRepository) DownloadAsset(
	_ context.Context, _ entities.RepositoryRef, asset entities.Asset, destPath string,
) error {
	p.Downloaded = append(p.Downloaded, asset)
	p.Destinations = append(p.Destinations, destPath)
	if p.DownloadErr != nil {
		return p.DownloadErr
	}
	if p.WriteToDisk {
		return os.WriteFile(destPath, p.AssetContent[asset.Name], 0o600)
	}
	return nil
}
