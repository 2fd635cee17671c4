//go:build unit

package commands_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
	infraRepos "github.com/e-marchand/dep-checker/internal/infrastructure/repositories"
	layoutRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/layout"
	wsRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/workspace"
	"github.com/e-marchand/dep-checker/test/domain/entitybuilders"
	doubles "github.com/e-marchand/dep-checker/test/infrastructure/repositorydoubles"
)

func zipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range entries {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

// newDiskValidateCommand wires the orchestrator to the real workspace and
// classifier, with a gateway that serves archives from memory.
func newDiskValidateCommand(source *doubles.SpyReleaseRepository) *commands.ValidateCommand {
	registry := infraRepos.NewSourceRegistry()
	registry.Register("github", func(_ entities.SourceOptions) repositories.ReleaseRepository {
		return source
	})
	factory := func(root string) repositories.WorkspaceRepository {
		return wsRepo.NewWorkspaceRepository(root)
	}
	return commands.NewValidateCommand(registry, factory, layoutRepo.NewLayoutRepository())
}

func TestValidateCommandOnDisk(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("unzip"); err != nil {
		t.Skip("unzip is not installed")
	}

	t.Run("should give identical results on repeated runs and leave no scratch space behind", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		source := &doubles.SpyReleaseRepository{
			ProviderName: "github",
			Releases: []entities.Release{
				entitybuilders.NewReleaseBuilder().
					WithTag("v1.0.0").
					WithAsset("Widget.zip").
					BuildRelease(),
			},
			AssetContent: map[string][]byte{
				"Widget.zip": zipBytes(t, map[string]string{
					"Widget.4dbase/Project/Sources/dependencies.json": `{"dependencies":{"Bar":{"version":"1.0"}}}`,
					"Widget.4dbase/Project/Widget.4DProject":          "{}",
				}),
			},
			WriteToDisk: true,
		}
		cmd := newDiskValidateCommand(source)
		opts := commands.ValidateOptions{ScratchRoot: root}

		// when
		first := cmd.Execute(context.Background(), entities.DefaultSettings(), []string{"acme/Widget"}, opts)
		second := cmd.Execute(context.Background(), entities.DefaultSettings(), []string{"acme/Widget"}, opts)

		// then
		require.Len(t, first, 1)
		assert.True(t, first[0].IsValid)
		require.Len(t, first[0].ReleaseValidations, 1)
		assert.Equal(t, entities.ComponentDatabaseFolder, first[0].ReleaseValidations[0].ComponentKind)
		assert.Equal(t,
			entities.DependencyManifest{"Bar": {Version: "1.0"}},
			first[0].ReleaseValidations[0].Dependencies,
		)
		assert.Equal(t, first, second)

		leftover, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, leftover)
	})

	t.Run("should clean up after an archive that cannot be extracted", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		source := &doubles.SpyReleaseRepository{
			ProviderName: "github",
			Releases: []entities.Release{
				entitybuilders.NewReleaseBuilder().
					WithTag("v1.0.0").
					WithAsset("Widget.zip").
					BuildRelease(),
			},
			AssetContent: map[string][]byte{"Widget.zip": []byte("not a zip")},
			WriteToDisk:  true,
		}
		cmd := newDiskValidateCommand(source)

		// when
		results := cmd.Execute(
			context.Background(), entities.DefaultSettings(), []string{"acme/Widget"},
			commands.ValidateOptions{ScratchRoot: root},
		)

		// then
		require.Len(t, results, 1)
		assert.False(t, results[0].IsValid)
		require.Len(t, results[0].ReleaseValidations, 1)
		assert.Contains(t, results[0].ReleaseValidations[0].Errors[0], "Cannot extract")

		leftover, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, leftover)
	})
}
