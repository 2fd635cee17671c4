package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

const (
	defaultUnzip  = "unzip"
	scratchPrefix = "scratch_"
	dirPerm       = 0o750
)

// WorkspaceRepository allocates scratch directories under a fixed root and
// delegates archive extraction to the host's unzip tool.
type WorkspaceRepository struct {
	root  string
	unzip string
	now   func() time.Time
}

// Option customizes a WorkspaceRepository.
type Option func(*WorkspaceRepository)

// WithUnzipCommand overrides the extraction tool name or path.
func WithUnzipCommand(name string) Option {
	return func(w *WorkspaceRepository) {
		w.unzip = name
	}
}

// NewWorkspaceRepository creates a workspace rooted at root.
func NewWorkspaceRepository(root string, opts ...Option) repositories.WorkspaceRepository {
	w := &WorkspaceRepository{
		root:  root,
		unzip: defaultUnzip,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateScratchSpace creates root/scratch_<nanotime>_<uuid>. The directory is
// created with Mkdir so an existing name is an error, never a shared directory.
func (it *WorkspaceRepository) CreateScratchSpace(_ context.Context) (string, error) {
	if err := os.MkdirAll(it.root, dirPerm); err != nil {
		return "", fmt.Errorf("%w: cannot create workspace root %q: %w", entities.ErrIO, it.root, err)
	}

	token, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%w: cannot generate scratch name: %w", entities.ErrIO, err)
	}

	name := fmt.Sprintf("%s%d_%s", scratchPrefix, it.now().UnixNano(), token.String())
	path := filepath.Join(it.root, name)
	if mkErr := os.Mkdir(path, dirPerm); mkErr != nil {
		return "", fmt.Errorf("%w: cannot create scratch directory %q: %w", entities.ErrIO, path, mkErr)
	}

	logger.Debugf("Allocated scratch space %s", path)
	return path, nil
}

// Extract runs `unzip -q -o archive -d destDir` and wraps any failure in an
// ExtractionError carrying the tool output.
func (it *WorkspaceRepository) Extract(ctx context.Context, archivePath, destDir string) error {
	tool, err := exec.LookPath(it.unzip)
	if err != nil {
		return &entities.ExtractionError{
			Archive: filepath.Base(archivePath),
			Output:  fmt.Sprintf("%s is not available on this host", it.unzip),
			Err:     err,
		}
	}

	if _, statErr := os.Stat(archivePath); statErr != nil {
		return &entities.ExtractionError{Archive: filepath.Base(archivePath), Err: statErr}
	}

	if mkErr := os.MkdirAll(destDir, dirPerm); mkErr != nil {
		return fmt.Errorf("%w: cannot create extraction directory %q: %w", entities.ErrIO, destDir, mkErr)
	}

	//nolint:gosec // G204: tool is resolved from configuration, arguments are paths we allocated
	cmd := exec.CommandContext(ctx, tool, "-q", "-o", archivePath, "-d", destDir)
	output, runErr := cmd.CombinedOutput()
	if runErr != nil {
		return &entities.ExtractionError{
			Archive: filepath.Base(archivePath),
			Output:  string(output),
			Err:     runErr,
		}
	}

	logger.Debugf("Extracted %s into %s", filepath.Base(archivePath), destDir)
	return nil
}

// Cleanup removes a scratch directory. Paths outside the workspace root are
// left alone.
func (it *WorkspaceRepository) Cleanup(path string) {
	if path == "" {
		return
	}
	if !it.owns(path) {
		logger.Warnf("Refusing to remove %q: not inside workspace %q", path, it.root)
		return
	}
	if err := os.RemoveAll(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("Failed to remove scratch space %q: %v", path, err)
		return
	}
	logger.Debugf("Removed scratch space %s", path)
}

func (it *WorkspaceRepository) owns(path string) bool {
	rel, err := filepath.Rel(filepath.Clean(it.root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..")
}
