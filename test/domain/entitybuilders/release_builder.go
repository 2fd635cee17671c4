//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/e-marchand/dep-checker/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ReleaseBuilder helps create test releases with a fluent interface.
type ReleaseBuilder struct {
	*testkit.BaseBuilder
	tag        string
	name       string
	prerelease bool
	assets     []entities.Asset
}

// NewReleaseBuilder creates a new release builder with sensible defaults.
func NewReleaseBuilder() *ReleaseBuilder {
	return &ReleaseBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		tag:         "v1.0.0",
	}
}

// WithTag sets the release tag.
func (b *ReleaseBuilder) WithTag(tag string) *ReleaseBuilder {
	b.tag = tag
	return b
}

// WithName sets the release title.
func (b *ReleaseBuilder) WithName(name string) *ReleaseBuilder {
	b.name = name
	return b
}

// WithPrerelease marks the release as a prerelease.
func (b *ReleaseBuilder) WithPrerelease() *ReleaseBuilder {
	b.prerelease = true
	return b
}

// WithAsset appends an asset with the given file name.
func (b *ReleaseBuilder) WithAsset(name string) *ReleaseBuilder {
	b.assets = append(b.assets, entities.Asset{
		ID:          int64(len(b.assets) + 1),
		Name:        name,
		DownloadURL: "https://example.com/download/" + name,
	})
	return b
}

// WithAssets appends one asset per file name.
func (b *ReleaseBuilder) WithAssets(names ...string) *ReleaseBuilder {
	for _, name := range names {
		b.WithAsset(name)
	}
	return b
}

// Build creates the release (satisfies testkit.Builder interface).
func (b *ReleaseBuilder) Build() interface{} {
	return b.BuildRelease()
}

// BuildRelease creates the release with a concrete return type.
func (b *ReleaseBuilder) BuildRelease() entities.Release {
	assets := make([]entities.Asset, len(b.assets))
	copy(assets, b.assets)
	return entities.Release{
		Tag:        b.tag,
		Name:       b.name,
		Prerelease: b.prerelease,
		Assets:     assets,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ReleaseBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.tag = "v1.0.0"
	b.name = ""
	b.prerelease = false
	b.assets = nil
	return b
}

// Clone creates a deep copy of the ReleaseBuilder.
func (b *ReleaseBuilder) Clone() testkit.Builder {
	assets := make([]entities.Asset, len(b.assets))
	copy(assets, b.assets)
	return &ReleaseBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		tag:         b.tag,
		name:        b.name,
		prerelease:  b.prerelease,
		assets:      assets,
	}
}
