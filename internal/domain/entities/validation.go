package entities

// ReleaseValidation is the result of inspecting a single release.
type ReleaseValidation struct {
	Tag              string             `json:"tag"`
	MatchedAssetName string             `json:"matched_asset,omitempty"`
	HasMatchingAsset bool               `json:"has_matching_asset"`
	ComponentKind    ComponentKind      `json:"component_kind,omitempty"`
	Dependencies     DependencyManifest `json:"dependencies,omitempty"`
	Errors           []string           `json:"errors"`
}

// IsValid reports whether the release carries a recognized component.
func (v ReleaseValidation) IsValid() bool {
	return v.HasMatchingAsset && v.ComponentKind.Recognized()
}

// RepositoryValidation is the terminal result for one repository.
type RepositoryValidation struct {
	Repository         string              `json:"repository"`
	Ref                RepositoryRef       `json:"ref"`
	IsValid            bool                `json:"is_valid"`
	HasReleases        bool                `json:"has_releases"`
	Metadata           *RepositoryMetadata `json:"metadata,omitempty"`
	ReleaseValidations []ReleaseValidation `json:"releases"`
	Errors             []string            `json:"errors"`
}

// ValidRelease returns the first release holding a recognized component.
func (v RepositoryValidation) ValidRelease() (ReleaseValidation, bool) {
	for _, release := range v.ReleaseValidations {
		if release.IsValid() {
			return release, true
		}
	}
	return ReleaseValidation{}, false
}

// AnyMatchingAsset reports whether at least one inspected release had a matching archive.
func (v RepositoryValidation) AnyMatchingAsset() bool {
	for _, release := range v.ReleaseValidations {
		if release.HasMatchingAsset {
			return true
		}
	}
	return false
}
