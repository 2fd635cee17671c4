package entities

import "sort"

// ComponentKind is the recognized shape of an extracted component.
type ComponentKind string

const (
	// ComponentNone means no recognized shape was found.
	ComponentNone ComponentKind = ""
	// ComponentDatabaseFolder is a directory ending in ".4dbase".
	ComponentDatabaseFolder ComponentKind = "4dbase"
	// ComponentCompiledArchive is a file ending in ".4DZ".
	ComponentCompiledArchive ComponentKind = "4DZ"
	// ComponentProjectFolder is a "Project" directory holding a ".4DProject" file.
	ComponentProjectFolder ComponentKind = "project"
)

// Recognized reports whether the kind denotes an actual component.
func (k ComponentKind) Recognized() bool {
	return k != ComponentNone
}

// Dependency is one entry of a dependency manifest. Every field is optional.
type Dependency struct {
	Github  string `json:"github,omitempty"`
	Version string `json:"version,omitempty"`
	Path    string `json:"path,omitempty"`
}

// DependencyManifest maps a dependency name to its declaration.
type DependencyManifest map[string]Dependency

// Names returns the dependency names sorted alphabetically.
func (m DependencyManifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Classification is the outcome of inspecting an extracted tree.
type Classification struct {
	Kind         ComponentKind
	Dependencies DependencyManifest
	Errors       []string
}
