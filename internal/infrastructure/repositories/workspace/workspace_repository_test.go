//go:build unit

package workspace_test

import (
	"archive/zip"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	wsRepo "github.com/e-marchand/dep-checker/internal/infrastructure/repositories/workspace"
)

func buildZip(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, "archive.zip")
	out, err := os.Create(path)
	require.NoError(t, err)

	writer := zip.NewWriter(out)
	for name, content := range files {
		entry, createErr := writer.Create(name)
		require.NoError(t, createErr)
		_, writeErr := entry.Write([]byte(content))
		require.NoError(t, writeErr)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, out.Close())
	return path
}

func requireUnzip(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("unzip"); err != nil {
		t.Skip("unzip is not available on this host")
	}
}

func TestCreateScratchSpace(t *testing.T) {
	t.Parallel()

	t.Run("should create unique directories under a missing root", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "nested", "root")
		workspace := wsRepo.NewWorkspaceRepository(root)

		// when
		first, err1 := workspace.CreateScratchSpace(context.Background())
		second, err2 := workspace.CreateScratchSpace(context.Background())

		// then
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first, second)
		assert.DirExists(t, first)
		assert.DirExists(t, second)
		assert.Equal(t, root, filepath.Dir(first))
		assert.Contains(t, filepath.Base(first), "scratch_")
	})

	t.Run("should fail with ErrIO when the root cannot be created", func(t *testing.T) {
		t.Parallel()

		// given
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		workspace := wsRepo.NewWorkspaceRepository(filepath.Join(blocker, "root"))

		// when
		_, err := workspace.CreateScratchSpace(context.Background())

		// then
		require.ErrorIs(t, err, entities.ErrIO)
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("should preserve the directory structure", func(t *testing.T) {
		t.Parallel()
		requireUnzip(t)

		// given
		archive := buildZip(t, t.TempDir(), map[string]string{
			"Widget.4dbase/Project/Sources/dependencies.json": `{"dependencies":{}}`,
			"README.md": "hello",
		})
		workspace := wsRepo.NewWorkspaceRepository(t.TempDir())
		dest := filepath.Join(t.TempDir(), "extracted")

		// when
		err := workspace.Extract(context.Background(), archive, dest)

		// then
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dest, "Widget.4dbase", "Project", "Sources", "dependencies.json"))
		assert.FileExists(t, filepath.Join(dest, "README.md"))
	})

	t.Run("should return an ExtractionError with the tool output for a corrupt archive", func(t *testing.T) {
		t.Parallel()
		requireUnzip(t)

		// given
		archive := filepath.Join(t.TempDir(), "broken.zip")
		require.NoError(t, os.WriteFile(archive, []byte("this is not a zip"), 0o600))
		workspace := wsRepo.NewWorkspaceRepository(t.TempDir())

		// when
		err := workspace.Extract(context.Background(), archive, filepath.Join(t.TempDir(), "out"))

		// then
		require.ErrorIs(t, err, entities.ErrExtraction)
		var extractionErr *entities.ExtractionError
		require.ErrorAs(t, err, &extractionErr)
		assert.Equal(t, "broken.zip", extractionErr.Archive)
		assert.NotEmpty(t, extractionErr.Output)
	})

	t.Run("should report a missing extraction tool", func(t *testing.T) {
		t.Parallel()

		// given
		archive := buildZip(t, t.TempDir(), map[string]string{"a.txt": "a"})
		workspace := wsRepo.NewWorkspaceRepository(t.TempDir(), wsRepo.WithUnzipCommand("definitely-not-unzip-42"))

		// when
		err := workspace.Extract(context.Background(), archive, filepath.Join(t.TempDir(), "out"))

		// then
		require.ErrorIs(t, err, entities.ErrExtraction)
		assert.Contains(t, err.Error(), "not available on this host")
	})
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	t.Run("should remove the scratch directory and its contents", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := wsRepo.NewWorkspaceRepository(t.TempDir())
		scratch, err := workspace.CreateScratchSpace(context.Background())
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(scratch, "extracted", "deep"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(scratch, "extracted", "deep", "f"), []byte("x"), 0o600))

		// when
		workspace.Cleanup(scratch)

		// then
		assert.NoDirExists(t, scratch)
	})

	t.Run("should leave sibling scratch directories alone", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := wsRepo.NewWorkspaceRepository(t.TempDir())
		first, err1 := workspace.CreateScratchSpace(context.Background())
		second, err2 := workspace.CreateScratchSpace(context.Background())
		require.NoError(t, err1)
		require.NoError(t, err2)

		// when
		workspace.Cleanup(first)

		// then
		assert.NoDirExists(t, first)
		assert.DirExists(t, second)
	})

	t.Run("should never touch paths outside the workspace root", func(t *testing.T) {
		t.Parallel()

		// given
		outside := t.TempDir()
		workspace := wsRepo.NewWorkspaceRepository(t.TempDir())

		// when
		workspace.Cleanup(outside)
		workspace.Cleanup("")

		// then
		assert.DirExists(t, outside)
	})

	t.Run("should swallow the removal of a path that no longer exists", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		workspace := wsRepo.NewWorkspaceRepository(root)

		// when / then
		assert.NotPanics(t, func() { workspace.Cleanup(filepath.Join(root, "scratch_gone")) })
	})
}
