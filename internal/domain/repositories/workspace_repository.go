package repositories

import "context"

// WorkspaceRepository allocates scratch directories and unpacks archives into them.
type WorkspaceRepository interface {
	// CreateScratchSpace allocates a fresh, collision-free directory.
	CreateScratchSpace(ctx context.Context) (string, error)

	// Extract unpacks the archive's whole tree into destDir.
	Extract(ctx context.Context, archivePath, destDir string) error

	// Cleanup removes path recursively. Failures are logged, never returned.
	Cleanup(path string)
}
