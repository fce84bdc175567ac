package installer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"arch-setup/internal/logger"
)

// gitHubRelease is the subset of the GitHub release JSON that is used.
type gitHubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// releaseAssetURL asks the GitHub API for a release of repo and returns the
// download URL of the first asset whose name ends in suffix. tag may be "latest".
func releaseAssetURL(ctx context.Context, client *http.Client, apiBase, repo, tag, suffix string) (string, error) {
	apiBase = strings.TrimSuffix(apiBase, "/")
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", apiBase, repo, tag)
	if tag == "" || tag == "latest" {
		url = fmt.Sprintf("%s/repos/%s/releases/latest", apiBase, repo)
	}
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch release for %s@%s: %w", repo, tag, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release fetch failed for %s@%s: HTTP status %d", repo, tag, resp.StatusCode)
	}

	var release gitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode release JSON for %s@%s: %w", repo, tag, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))

	for _, asset := range release.Assets {
		if strings.HasSuffix(asset.Name, suffix) {
			return asset.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("no asset ending in %q in release %s of %s", suffix, release.TagName, repo)
}
