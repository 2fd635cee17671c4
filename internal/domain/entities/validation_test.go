//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

func TestRepositoryValidation(t *testing.T) {
	t.Parallel()

	t.Run("should return the first release with a recognized component", func(t *testing.T) {
		t.Parallel()

		// given
		validation := entities.RepositoryValidation{
			ReleaseValidations: []entities.ReleaseValidation{
				{Tag: "v3", HasMatchingAsset: true},
				{Tag: "v2", HasMatchingAsset: true, ComponentKind: entities.ComponentProjectFolder},
				{Tag: "v1", HasMatchingAsset: true, ComponentKind: entities.ComponentDatabaseFolder},
			},
		}

		// when
		release, ok := validation.ValidRelease()

		// then
		require.True(t, ok)
		assert.Equal(t, "v2", release.Tag)
		assert.True(t, validation.AnyMatchingAsset())
	})

	t.Run("should report no valid release and no matching asset", func(t *testing.T) {
		t.Parallel()

		// given
		validation := entities.RepositoryValidation{
			ReleaseValidations: []entities.ReleaseValidation{{Tag: "v1"}},
		}

		// when
		_, ok := validation.ValidRelease()

		// then
		assert.False(t, ok)
		assert.False(t, validation.AnyMatchingAsset())
	})
}

func TestSelectionPolicy(t *testing.T) {
	t.Parallel()

	t.Run("should let a tag win over all", func(t *testing.T) {
		t.Parallel()

		// given
		all, tag := true, "v1.0.0"

		// when
		policy := entities.NewSelectionPolicy(all, tag)

		// then
		assert.Equal(t, entities.SelectTag, policy.Mode)
		assert.Equal(t, "v1.0.0", policy.Tag)
		assert.Equal(t, "tag", policy.Mode.String())
	})

	t.Run("should default to the short-circuit mode", func(t *testing.T) {
		t.Parallel()

		// given
		all, tag := false, ""

		// when
		policy := entities.NewSelectionPolicy(all, tag)

		// then
		assert.Equal(t, entities.SelectDefault, policy.Mode)
		assert.Equal(t, "default", policy.Mode.String())
	})
}

func TestExtractionError(t *testing.T) {
	t.Parallel()

	t.Run("should match the sentinel and carry the tool output", func(t *testing.T) {
		t.Parallel()

		// given
		err := error(&entities.ExtractionError{Archive: "Widget.zip", Output: "  End-of-central-directory signature not found \n"})

		// when
		msg := err.Error()

		// then
		require.ErrorIs(t, err, entities.ErrExtraction)
		assert.Equal(t, "archive extraction failed: Widget.zip (End-of-central-directory signature not found)", msg)
	})
}
