package repositories

import "github.com/e-marchand/dep-checker/internal/domain/entities"

// RemoteRepository resolves the hosted repository a local clone points to.
type RemoteRepository interface {
	DetectRepositoryRef(dir string) (entities.RepositoryRef, error)
}
