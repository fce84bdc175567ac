package installer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFile_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/v2/install", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/v2/install", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("#!/usr/bin/env fish\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, downloadFile(context.Background(), srv.Client(), fs, srv.URL+"/latest", "/tmp/install"))

	data, err := afero.ReadFile(fs, "/tmp/install")
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env fish\n", string(data))
}

func TestDownloadFile_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	fs := afero.NewMemMapFs()
	err := downloadFile(context.Background(), srv.Client(), fs, srv.URL+"/missing", "/tmp/install")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	exists, _ := afero.Exists(fs, "/tmp/install")
	assert.False(t, exists)
}

func TestDownloadFile_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, downloadFile(ctx, srv.Client(), afero.NewMemMapFs(), srv.URL, "/tmp/x"))
}

func TestReleaseAssetURL(t *testing.T) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"tag_name": "0.7.30",
			"assets": []map[string]string{
				{"name": "bedrock-linux-0.7.30-x86_64.sh.sig", "browser_download_url": "https://example.invalid/sig"},
				{"name": "bedrock-linux-0.7.30-x86_64.sh", "browser_download_url": "https://example.invalid/sh"},
			},
		})
	}))
	defer srv.Close()

	ctx := context.Background()

	url, err := releaseAssetURL(ctx, srv.Client(), srv.URL+"/", "bedrocklinux/bedrocklinux-userland", "latest", "-x86_64.sh")
	require.NoError(t, err)
	assert.Equal(t, "https://example.invalid/sh", url)

	_, err = releaseAssetURL(ctx, srv.Client(), srv.URL, "bedrocklinux/bedrocklinux-userland", "0.7.30", "-ppc64le.sh")
	assert.Error(t, err)

	assert.Equal(t, []string{
		"/repos/bedrocklinux/bedrocklinux-userland/releases/latest",
		"/repos/bedrocklinux/bedrocklinux-userland/releases/tags/0.7.30",
	}, requested)
}
