package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"arch-setup/internal/logger"
	"github.com/spf13/afero"
)

// downloadFile fetches url with a GET request and writes the body to destPath on fs.
// Redirects are followed by the client; any non-2xx final status is an error.
func downloadFile(ctx context.Context, client *http.Client, fs afero.Fs, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to GET %s: HTTP status %d", url, resp.StatusCode)
	}

	out, err := fs.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	logger.Debug("[DEBUG] Downloaded %s (%d bytes) to %s\n", url, n, destPath)
	return nil
}
