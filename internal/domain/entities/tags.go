package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// FindReleaseByTag returns the release whose tag equals wanted. When no tag is
// identical, tags that are the same semantic version ("1.2.0" and "v1.2.0")
// also match.
func FindReleaseByTag(releases []Release, wanted string) (Release, bool) {
	for _, release := range releases {
		if release.Tag == wanted {
			return release, true
		}
	}

	canonical := normalizeVersion(wanted)
	if !semver.IsValid(canonical) {
		return Release{}, false
	}
	for _, release := range releases {
		candidate := normalizeVersion(release.Tag)
		if semver.IsValid(candidate) && semver.Compare(candidate, canonical) == 0 {
			return release, true
		}
	}
	return Release{}, false
}

// SortedTags lists release tags, highest semantic version first.
func SortedTags(releases []Release) []string {
	tags := make([]string, 0, len(releases))
	for _, release := range releases {
		tags = append(tags, release.Tag)
	}
	sortVersionsDescending(tags)
	return tags
}

func sortVersionsDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}
		return versions[i] > versions[j]
	})
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
