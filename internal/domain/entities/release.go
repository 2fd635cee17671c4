package entities

import (
	"strings"
)

// ArchiveSuffix is the extension an asset needs to be considered for download.
const ArchiveSuffix = ".zip"

// Release is one published release, assets in API order.
type Release struct {
	Tag        string  `json:"tag"`
	Name       string  `json:"name,omitempty"`
	Prerelease bool    `json:"prerelease"`
	Draft      bool    `json:"draft"`
	Assets     []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
	Size        int64  `json:"size"`
}

// IsArchive reports whether the asset name carries the archive suffix.
func (a Asset) IsArchive() bool {
	return strings.HasSuffix(strings.ToLower(a.Name), ArchiveSuffix)
}

// ArchiveAssets returns the archive-suffixed assets, preserving order.
func (r Release) ArchiveAssets() []Asset {
	var archives []Asset
	for _, asset := range r.Assets {
		if asset.IsArchive() {
			archives = append(archives, asset)
		}
	}
	return archives
}

// MatchArchiveAsset returns the first archive asset whose name, suffix stripped,
// equals repoName or starts with repoName followed by "-" or "_". All
// comparisons are case-insensitive.
func MatchArchiveAsset(assets []Asset, repoName string) (Asset, bool) {
	wanted := strings.ToLower(repoName)
	for _, asset := range assets {
		if !asset.IsArchive() {
			continue
		}
		lower := strings.ToLower(asset.Name)
		stem := strings.TrimSuffix(lower, ArchiveSuffix)
		if stem == wanted ||
			strings.HasPrefix(stem, wanted+"-") ||
			strings.HasPrefix(stem, wanted+"_") {
			return asset, true
		}
	}
	return Asset{}, false
}

// AssetNames lists asset names for error messages.
func AssetNames(assets []Asset) []string {
	names := make([]string, 0, len(assets))
	for _, asset := range assets {
		names = append(names, asset.Name)
	}
	return names
}
