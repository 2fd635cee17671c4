//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/test/domain/entitybuilders"
)

func releasesWithTags(tags ...string) []entities.Release {
	releases := make([]entities.Release, 0, len(tags))
	for _, tag := range tags {
		releases = append(releases, entitybuilders.NewReleaseBuilder().WithTag(tag).BuildRelease())
	}
	return releases
}

func TestFindReleaseByTag(t *testing.T) {
	t.Parallel()

	t.Run("should prefer an exact tag match", func(t *testing.T) {
		t.Parallel()

		// given
		releases := releasesWithTags("v1.2.0", "1.2.0")

		// when
		release, found := entities.FindReleaseByTag(releases, "1.2.0")

		// then
		require.True(t, found)
		assert.Equal(t, "1.2.0", release.Tag)
	})

	t.Run("should match the same version with or without the v prefix", func(t *testing.T) {
		t.Parallel()

		// given
		releases := releasesWithTags("v2.0.0", "v1.2.0")

		// when
		release, found := entities.FindReleaseByTag(releases, "1.2.0")

		// then
		require.True(t, found)
		assert.Equal(t, "v1.2.0", release.Tag)
	})

	t.Run("should not match a different version", func(t *testing.T) {
		t.Parallel()

		// given
		releases := releasesWithTags("v2.0.0", "v1.2.0")

		// when
		_, found := entities.FindReleaseByTag(releases, "v1.3.0")

		// then
		assert.False(t, found)
	})

	t.Run("should only match non-semver tags exactly", func(t *testing.T) {
		t.Parallel()

		// given
		releases := releasesWithTags("latest", "nightly")

		// when
		release, found := entities.FindReleaseByTag(releases, "nightly")
		_, missing := entities.FindReleaseByTag(releases, "Nightly")

		// then
		require.True(t, found)
		assert.Equal(t, "nightly", release.Tag)
		assert.False(t, missing)
	})
}

func TestSortedTags(t *testing.T) {
	t.Parallel()

	t.Run("should list tags by descending semantic version", func(t *testing.T) {
		t.Parallel()

		// given
		releases := releasesWithTags("v1.10.0", "v1.2.0", "2.0.0", "v1.9.1")

		// when
		tags := entities.SortedTags(releases)

		// then
		assert.Equal(t, []string{"2.0.0", "v1.10.0", "v1.9.1", "v1.2.0"}, tags)
	})
}
