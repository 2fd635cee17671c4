package entities

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// RepositoryRef identifies a remote repository by owner and short name.
type RepositoryRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// ParseRepositoryRef splits an "owner/name" token into a RepositoryRef.
// Anything other than exactly two non-empty segments free of whitespace is
// rejected.
func ParseRepositoryRef(token string) (RepositoryRef, error) {
	parts := strings.Split(strings.TrimSpace(token), "/")
	if len(parts) != 2 || slices.ContainsFunc(parts, invalidSegment) { //nolint:mnd // owner + name
		return RepositoryRef{}, fmt.Errorf(
			"%w: %q is not in 'owner/name' format", ErrMalformedReference, token,
		)
	}
	return RepositoryRef{Owner: parts[0], Name: parts[1]}, nil
}

func invalidSegment(segment string) bool {
	return segment == "" || strings.ContainsFunc(segment, unicode.IsSpace)
}

// String returns the "owner/name" form.
func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// RepositoryMetadata is the optional enrichment shown with --metadata.
type RepositoryMetadata struct {
	FullName      string   `json:"full_name"`
	Description   string   `json:"description,omitempty"`
	DefaultBranch string   `json:"default_branch,omitempty"`
	HTMLURL       string   `json:"html_url,omitempty"`
	License       string   `json:"license,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	Stars         int      `json:"stars"`
	Archived      bool     `json:"archived"`
}
