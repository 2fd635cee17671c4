//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

// ExtractCall records a single invocation of Extract.
type ExtractCall struct {
	ArchivePath string
	DestDir     string
}

// SpyWorkspaceRepository implements repositories.WorkspaceRepository without
// touching the disk. Scratch paths are synthetic.
type SpyWorkspaceRepository struct {
	Root string

	// --- CreateScratchSpace ---
	CreateErr error
	Created   []string

	// --- Extract ---
	ExtractErr   error
	ExtractCalls []ExtractCall

	// --- Cleanup ---
	Cleaned []string
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (w *SpyWorkspaceRepository) CreateScratchSpace(_ context.Context) (string, error) {
	if w.CreateErr != nil {
		return "", w.CreateErr
	}
	path := fmt.Sprintf("%s/scratch_%d", w.Root, len(w.Created)+1)
	w.Created = append(w.Created, path)
	return path, nil
}

func (w *SpyWorkspaceRepository) Extract(_ context.Context, archivePath, destDir string) error {
	w.ExtractCalls = append(w.ExtractCalls, ExtractCall{ArchivePath: archivePath, DestDir: destDir})
	return w.ExtractErr
}

func (w *SpyWorkspaceRepository) Cleanup(path string) {
	w.Cleaned = append(w.Cleaned, path)
}
