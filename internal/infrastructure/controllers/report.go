package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// ErrInvalidRepositories is returned by controllers when at least one
// repository failed validation, so the process exits non-zero.
var ErrInvalidRepositories = errors.New("one or more repositories are invalid")

const (
	markValid   = "✓"
	markInvalid = "✗"
)

// batchReport is the structured (--json) rendering of a check run.
type batchReport struct {
	Valid        bool                            `json:"valid"`
	Total        int                             `json:"total"`
	Invalid      int                             `json:"invalid"`
	Repositories []entities.RepositoryValidation `json:"repositories"`
}

func countInvalid(results []entities.RepositoryValidation) int {
	invalid := 0
	for _, result := range results {
		if !result.IsValid {
			invalid++
		}
	}
	return invalid
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func writeBatchJSON(w io.Writer, results []entities.RepositoryValidation) error {
	invalid := countInvalid(results)
	return writeJSON(w, batchReport{
		Valid:        invalid == 0,
		Total:        len(results),
		Invalid:      invalid,
		Repositories: results,
	})
}

func writeBatchText(w io.Writer, results []entities.RepositoryValidation) {
	for _, result := range results {
		writeRepositoryText(w, result)
	}
	invalid := countInvalid(results)
	fmt.Fprintf(w, "\n%d checked, %d valid, %d invalid\n", len(results), len(results)-invalid, invalid)
}

func writeRepositoryText(w io.Writer, result entities.RepositoryValidation) {
	mark := markValid
	if !result.IsValid {
		mark = markInvalid
	}
	fmt.Fprintf(w, "%s %s\n", mark, result.Repository)

	if meta := result.Metadata; meta != nil {
		if meta.Description != "" {
			fmt.Fprintf(w, "    %s\n", meta.Description)
		}
		fmt.Fprintf(w, "    default branch: %s, stars: %d", meta.DefaultBranch, meta.Stars)
		if meta.License != "" {
			fmt.Fprintf(w, ", license: %s", meta.License)
		}
		if meta.Archived {
			fmt.Fprint(w, ", archived")
		}
		fmt.Fprintln(w)
	}

	for _, release := range result.ReleaseValidations {
		writeReleaseText(w, release, "    ")
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(w, "    error: %s\n", msg)
	}
}

func writeReleaseText(w io.Writer, release entities.ReleaseValidation, indent string) {
	mark := markValid
	if !release.IsValid() {
		mark = markInvalid
	}

	label := release.Tag
	if label == "" {
		label = release.MatchedAssetName
	}
	line := fmt.Sprintf("%s%s %s", indent, mark, label)
	if release.HasMatchingAsset && release.Tag != "" {
		line += fmt.Sprintf(" [%s]", release.MatchedAssetName)
	}
	if release.ComponentKind.Recognized() {
		line += fmt.Sprintf(" -> %s", release.ComponentKind)
	}
	fmt.Fprintln(w, line)

	if names := release.Dependencies.Names(); len(names) > 0 {
		fmt.Fprintf(w, "%s    dependencies: %s\n", indent, strings.Join(names, ", "))
	}
	for _, msg := range release.Errors {
		fmt.Fprintf(w, "%s    %s\n", indent, msg)
	}
}
