// Package fetch retrieves source documents over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ZaguanLabs/lexiloc"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single document fetch.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves documents with a shared HTTP client and identifies
// itself with the lexiloc user agent.
type Fetcher struct {
	client *http.Client
	log    zerolog.Logger
}

// New creates a Fetcher. A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration, log zerolog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Get fetches url and returns the response body as a string. Any status
// outside 2xx is a FetchError.
func (f *Fetcher) Get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &lexiloc.FetchError{URL: url, Cause: err}
	}
	req.Header.Set("User-Agent", lexiloc.UserAgent())

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", &lexiloc.FetchError{URL: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &lexiloc.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &lexiloc.FetchError{URL: url, Cause: err}
	}

	f.log.Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched source document")

	return string(body), nil
}
