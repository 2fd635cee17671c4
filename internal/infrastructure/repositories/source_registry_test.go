//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
	infraRepos "github.com/e-marchand/dep-checker/internal/infrastructure/repositories"
	doubles "github.com/e-marchand/dep-checker/test/infrastructure/repositorydoubles"
)

func TestSourceRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build a gateway with the given options", func(t *testing.T) {
		t.Parallel()

		// given
		var received entities.SourceOptions
		registry := infraRepos.NewSourceRegistry()
		registry.Register("github", func(opts entities.SourceOptions) repositories.ReleaseRepository {
			received = opts
			return &doubles.SpyReleaseRepository{ProviderName: "github"}
		})

		// when
		source, err := registry.Get("github", entities.SourceOptions{Token: "t"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "github", source.Name())
		assert.Equal(t, "t", received.Token)
	})

	t.Run("should reject an unknown provider and list the registered ones", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewSourceRegistry()
		registry.Register("github", func(_ entities.SourceOptions) repositories.ReleaseRepository {
			return &doubles.SpyReleaseRepository{}
		})

		// when
		_, err := registry.Get("gitlab", entities.SourceOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider type")
		assert.Contains(t, err.Error(), "available: github")
	})

	t.Run("should list registered names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewSourceRegistry()
		factory := func(_ entities.SourceOptions) repositories.ReleaseRepository {
			return &doubles.SpyReleaseRepository{}
		}
		registry.Register("zeta", factory)
		registry.Register("alpha", factory)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"alpha", "zeta"}, names)
	})
}
