package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

const (
	databaseFolderSuffix = ".4dbase"
	compiledSuffix       = ".4DZ"
	projectFolderName    = "Project"
	projectFileSuffix    = ".4DProject"
	maxListedEntries     = 10
)

// shapeCheck pairs a component kind with its detection predicate. detect
// returns the directory manifests are looked up under, or "" when the shape
// carries no manifest.
type shapeCheck struct {
	kind   entities.ComponentKind
	detect func(dir string, entries []os.DirEntry) (manifestBase string, matched bool)
}

// shapeChecks are tried in order; the first match wins.
//
//nolint:gochecknoglobals // fixed priority table
var shapeChecks = []shapeCheck{
	{kind: entities.ComponentDatabaseFolder, detect: detectDatabaseFolder},
	{kind: entities.ComponentCompiledArchive, detect: detectCompiledArchive},
	{kind: entities.ComponentProjectFolder, detect: detectProjectFolder},
}

// LayoutRepository classifies extracted archives on the local filesystem.
type LayoutRepository struct{}

// NewLayoutRepository creates a filesystem-backed classifier.
func NewLayoutRepository() repositories.LayoutRepository {
	return &LayoutRepository{}
}

// Classify inspects rootDir and, when nothing matches and rootDir holds a
// single wrapper directory, inspects that directory once more. It never
// descends further than one level.
func (it *LayoutRepository) Classify(rootDir, expectedName string) entities.Classification {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return entities.Classification{
			Errors: []string{fmt.Sprintf("Cannot read extracted archive contents: %v", err)},
		}
	}

	if result, ok := classifyDir(rootDir, entries); ok {
		return result
	}

	if wrapper, ok := wrapperDir(rootDir, entries); ok {
		wrapperPath := filepath.Join(rootDir, wrapper)
		inner, readErr := os.ReadDir(wrapperPath)
		if readErr != nil {
			return entities.Classification{
				Errors: []string{fmt.Sprintf("Cannot read wrapper directory %q: %v", wrapper, readErr)},
			}
		}
		logger.Debugf("Descending into wrapper directory %q", wrapper)
		if result, matched := classifyDir(wrapperPath, inner); matched {
			return result
		}
	}

	return entities.Classification{
		Errors: []string{noComponentMessage(expectedName, entries)},
	}
}

func classifyDir(dir string, entries []os.DirEntry) (entities.Classification, bool) {
	for _, check := range shapeChecks {
		base, matched := check.detect(dir, entries)
		if !matched {
			continue
		}
		result := entities.Classification{Kind: check.kind}
		if base != "" {
			result.Dependencies = readManifest(base)
		}
		logger.Debugf("Classified %s as %s", dir, check.kind)
		return result, true
	}
	return entities.Classification{}, false
}

func detectDatabaseFolder(dir string, entries []os.DirEntry) (string, bool) {
	for _, entry := range entries {
		if isDir(dir, entry) && hasSuffixFold(entry.Name(), databaseFolderSuffix) {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

func detectCompiledArchive(dir string, entries []os.DirEntry) (string, bool) {
	for _, entry := range entries {
		if !isDir(dir, entry) && hasSuffixFold(entry.Name(), compiledSuffix) {
			return "", true
		}
	}
	return "", false
}

func detectProjectFolder(dir string, entries []os.DirEntry) (string, bool) {
	for _, entry := range entries {
		if !isDir(dir, entry) || !strings.EqualFold(entry.Name(), projectFolderName) {
			continue
		}
		projectDir := filepath.Join(dir, entry.Name())
		projectEntries, err := os.ReadDir(projectDir)
		if err != nil {
			continue
		}
		for _, file := range projectEntries {
			if !isDir(projectDir, file) && strings.HasSuffix(file.Name(), projectFileSuffix) {
				return dir, true
			}
		}
	}
	return "", false
}

// wrapperDir reports the single top-level directory an archive may wrap its
// contents in. A lone database folder is never a wrapper.
func wrapperDir(dir string, entries []os.DirEntry) (string, bool) {
	if len(entries) != 1 || !isDir(dir, entries[0]) {
		return "", false
	}
	name := entries[0].Name()
	if hasSuffixFold(name, databaseFolderSuffix) {
		return "", false
	}
	return name, true
}

// isDir reports whether entry is a directory, resolving symlinks that unzip
// restored from the archive.
func isDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func hasSuffixFold(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix))
}

func noComponentMessage(expectedName string, entries []os.DirEntry) string {
	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		if i == maxListedEntries {
			names = append(names, "...")
			break
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}

	found := "an empty archive"
	if len(names) > 0 {
		found = strings.Join(names, ", ")
	}
	return fmt.Sprintf(
		"No valid 4D component found for %q: expected a *%s folder, a *%s file, "+
			"or a %s folder containing a *%s file; found %s",
		expectedName, databaseFolderSuffix, compiledSuffix, projectFolderName, projectFileSuffix, found,
	)
}
