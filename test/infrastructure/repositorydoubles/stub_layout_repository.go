//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

// StubLayoutRepository returns queued classifications, one per call, then
// Default once the queue is drained.
type StubLayoutRepository struct {
	Queue   []entities.Classification
	Default entities.Classification

	ClassifiedDirs []string
	ExpectedNames  []string
}

var _ repositories.LayoutRepository = (*StubLayoutRepository)(nil)

func (s *StubLayoutRepository) Classify(rootDir, expectedName string) entities.Classification {
	s.ClassifiedDirs = append(s.ClassifiedDirs, rootDir)
	s.ExpectedNames = append(s.ExpectedNames, expectedName)
	if len(s.Queue) > 0 {
		next := s.Queue[0]
		s.Queue = s.Queue[1:]
		return next
	}
	return s.Default
}

// StubRemoteRepository implements repositories.RemoteRepository.
type StubRemoteRepository struct {
	Ref          entities.RepositoryRef
	Err          error
	RequestedDir []string
}

var _ repositories.RemoteRepository = (*StubRemoteRepository)(nil)

func (s *StubRemoteRepository) DetectRepositoryRef(dir string) (entities.RepositoryRef, error) {
	s.RequestedDir = append(s.RequestedDir, dir)
	return s.Ref, s.Err
}
