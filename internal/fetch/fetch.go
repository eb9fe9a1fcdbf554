package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// Fetcher retrieves upload-source URLs over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose requests are bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads rawURL and returns its body. The caller must close it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, drive.NewError(drive.KindInvalidInput, "invalid source url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, drive.NewError(drive.KindInvalidInput, "invalid source url %q: %v", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, drive.NewError(drive.KindTransportFailure, "fetch %s: %v", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, drive.NewError(drive.KindTransportFailure, "fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	return resp.Body, nil
}
