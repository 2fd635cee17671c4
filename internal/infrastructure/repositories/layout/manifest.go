package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

const manifestFileName = "dependencies.json"

// manifestCandidates are tried in order relative to the manifest base.
//
//nolint:gochecknoglobals // fixed lookup order
var manifestCandidates = []string{
	filepath.Join("Project", "Sources", manifestFileName),
	filepath.Join("Sources", manifestFileName),
}

// flexString accepts JSON strings and numbers. Numbers keep their literal
// text, so 1.10 stays "1.10".
type flexString string

func (v *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = flexString(n.String())
		return nil
	}
	return fmt.Errorf("expected string or number, got %s", string(data))
}

type manifestEntry struct {
	Github  flexString `json:"github"`
	Version flexString `json:"version"`
	Path    flexString `json:"path"`
}

type manifestFile struct {
	Dependencies map[string]manifestEntry `json:"dependencies"`
}

// readManifest returns the first candidate manifest under base that parses.
// Unparsable files are skipped; nil means no manifest.
func readManifest(base string) entities.DependencyManifest {
	for _, rel := range manifestCandidates {
		path := filepath.Join(base, rel)
		//nolint:gosec // G304: path is inside a scratch directory we extracted
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var parsed manifestFile
		if unmarshalErr := json.Unmarshal(data, &parsed); unmarshalErr != nil {
			logger.Debugf("Ignoring unparsable manifest %s: %v", path, unmarshalErr)
			continue
		}

		manifest := make(entities.DependencyManifest, len(parsed.Dependencies))
		for name, entry := range parsed.Dependencies {
			manifest[name] = entities.Dependency{
				Github:  string(entry.Github),
				Version: string(entry.Version),
				Path:    string(entry.Path),
			}
		}
		logger.Debugf("Read %d dependencies from %s", len(manifest), path)
		return manifest
	}
	return nil
}
