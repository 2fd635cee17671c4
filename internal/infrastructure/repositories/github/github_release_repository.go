package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/domain/repositories"
)

const (
	providerName = "github"
	perPage      = 100
	tokenHint    = "no GitHub token configured; set GITHUB_TOKEN or --token to raise the limit"
)

// GitHubReleaseRepository implements repositories.ReleaseRepository for GitHub.
type GitHubReleaseRepository struct {
	token          string
	client         *gh.Client
	downloadClient *http.Client
}

// NewReleaseRepository creates a GitHub gateway. An empty token is legal and
// only lowers the rate limit.
func NewReleaseRepository(opts entities.SourceOptions) repositories.ReleaseRepository {
	timeout := opts.HTTPTimeout
	if timeout <= 0 {
		timeout = entities.DefaultHTTPTimeout
	}

	client := gh.NewClient(&http.Client{Timeout: timeout})
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}
	client.UserAgent = entities.UserAgent

	if opts.APIURL != "" && opts.APIURL != entities.DefaultAPIURL {
		baseURL, err := url.Parse(opts.APIURL)
		if err != nil {
			logger.Warnf("Ignoring invalid API URL %q: %v", opts.APIURL, err)
		} else {
			client.BaseURL = baseURL
		}
	}

	return &GitHubReleaseRepository{
		token:          opts.Token,
		client:         client,
		downloadClient: &http.Client{Timeout: timeout, Transport: &userAgentTransport{base: http.DefaultTransport}},
	}
}

// userAgentTransport stamps the client marker on requests that go-github
// builds without it, such as the redirected asset download.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", entities.UserAgent)
	return t.base.RoundTrip(clone)
}

func (p *GitHubReleaseRepository) Name() string { return providerName }

// ListReleases pages through every release of the repository.
func (p *GitHubReleaseRepository) ListReleases(
	ctx context.Context,
	ref entities.RepositoryRef,
) ([]entities.Release, error) {
	allReleases := make([]entities.Release, 0)
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		releases, resp, err := p.client.Repositories.ListReleases(ctx, ref.Owner, ref.Name, opts)
		if err != nil {
			return nil, p.translateError(err, ref, "list releases")
		}

		for _, r := range releases {
			allReleases = append(allReleases, toRelease(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Debugf("Listed %d releases for %s", len(allReleases), ref)
	return allReleases, nil
}

func (p *GitHubReleaseRepository) GetRepositoryMetadata(
	ctx context.Context,
	ref entities.RepositoryRef,
) (*entities.RepositoryMetadata, error) {
	repo, _, err := p.client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, p.translateError(err, ref, "fetch repository")
	}

	return &entities.RepositoryMetadata{
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
		License:       repo.GetLicense().GetSPDXID(),
		Topics:        repo.Topics,
		Stars:         repo.GetStargazersCount(),
		Archived:      repo.GetArchived(),
	}, nil
}

// DownloadAsset writes the asset to destPath through a temporary file so a
// failed transfer never leaves a truncated archive behind.
func (p *GitHubReleaseRepository) DownloadAsset(
	ctx context.Context,
	ref entities.RepositoryRef,
	asset entities.Asset,
	destPath string,
) error {
	body, err := p.openAsset(ctx, ref, asset)
	if err != nil {
		return err
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer body.Close()

	if mkdirErr := os.MkdirAll(filepath.Dir(destPath), 0o750); mkdirErr != nil {
		return fmt.Errorf("%w: creating directory for %s: %w", entities.ErrDownloadFailed, asset.Name, mkdirErr)
	}

	tmpPath := destPath + ".part"
	//nolint:gosec // G304: destination is a scratch path allocated by the workspace
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", entities.ErrDownloadFailed, tmpPath, err)
	}

	written, copyErr := io.Copy(out, body)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %w", entities.ErrDownloadFailed, asset.Name, errors.Join(copyErr, closeErr))
	}

	if renameErr := os.Rename(tmpPath, destPath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming %s: %w", entities.ErrDownloadFailed, asset.Name, renameErr)
	}

	logger.Debugf("Downloaded %s (%d bytes)", asset.Name, written)
	return nil
}

func (p *GitHubReleaseRepository) openAsset(
	ctx context.Context,
	ref entities.RepositoryRef,
	asset entities.Asset,
) (io.ReadCloser, error) {
	if asset.ID != 0 {
		body, _, err := p.client.Repositories.DownloadReleaseAsset(
			ctx, ref.Owner, ref.Name, asset.ID, p.downloadClient,
		)
		if err != nil {
			return nil, p.downloadError(err, asset)
		}
		if body == nil {
			return nil, fmt.Errorf("%w: %s: empty response", entities.ErrDownloadFailed, asset.Name)
		}
		return body, nil
	}

	if asset.DownloadURL == "" {
		return nil, fmt.Errorf("%w: %s has no download URL", entities.ErrDownloadFailed, asset.Name)
	}
	req, err := p.client.NewRequest(http.MethodGet, asset.DownloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrDownloadFailed, asset.Name, err)
	}
	req.Header.Set("Accept", "application/octet-stream")
	resp, err := p.client.BareDo(ctx, req)
	if err != nil {
		return nil, p.downloadError(err, asset)
	}
	return resp.Body, nil
}

func (p *GitHubReleaseRepository) downloadError(err error, asset entities.Asset) error {
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return fmt.Errorf(
			"%w: %s: HTTP %d", entities.ErrDownloadFailed, asset.Name, respErr.Response.StatusCode,
		)
	}
	return fmt.Errorf("%w: %s: %w", entities.ErrDownloadFailed, asset.Name, err)
}

// translateError maps go-github failures onto the entities error taxonomy.
func (p *GitHubReleaseRepository) translateError(err error, ref entities.RepositoryRef, action string) error {
	var (
		rateErr  *gh.RateLimitError
		abuseErr *gh.AbuseRateLimitError
		respErr  *gh.ErrorResponse
	)

	switch {
	case errors.As(err, &rateErr):
		return p.rateLimited(ref, action, fmt.Sprintf("resets at %s", rateErr.Rate.Reset.Format("15:04:05 MST")))
	case errors.As(err, &abuseErr):
		return p.rateLimited(ref, action, "secondary rate limit")
	case errors.As(err, &respErr) && respErr.Response != nil:
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s does not exist or is not accessible", entities.ErrNotFound, ref)
		case http.StatusTooManyRequests:
			return p.rateLimited(ref, action, "HTTP 429")
		default:
			return fmt.Errorf(
				"%w: failed to %s for %s: HTTP %d: %s",
				entities.ErrTransport, action, ref, respErr.Response.StatusCode, respErr.Message,
			)
		}
	default:
		return fmt.Errorf("%w: failed to %s for %s: %w", entities.ErrTransport, action, ref, err)
	}
}

func (p *GitHubReleaseRepository) rateLimited(ref entities.RepositoryRef, action, detail string) error {
	if p.token == "" {
		logger.Warn(tokenHint)
		return fmt.Errorf("%w while trying to %s for %s (%s; %s)", entities.ErrRateLimited, action, ref, detail, tokenHint)
	}
	return fmt.Errorf("%w while trying to %s for %s (%s)", entities.ErrRateLimited, action, ref, detail)
}

func toRelease(r *gh.RepositoryRelease) entities.Release {
	assets := make([]entities.Asset, 0, len(r.Assets))
	for _, a := range r.Assets {
		assets = append(assets, entities.Asset{
			ID:          a.GetID(),
			Name:        a.GetName(),
			DownloadURL: a.GetBrowserDownloadURL(),
			Size:        int64(a.GetSize()),
		})
	}
	return entities.Release{
		Tag:        r.GetTagName(),
		Name:       r.GetName(),
		Prerelease: r.GetPrerelease(),
		Draft:      r.GetDraft(),
		Assets:     assets,
	}
}
