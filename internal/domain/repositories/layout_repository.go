package repositories

import "github.com/e-marchand/dep-checker/internal/domain/entities"

// LayoutRepository classifies an extracted directory tree.
type LayoutRepository interface {
	Classify(rootDir, expectedName string) entities.Classification
}
