package http

import (
	"context"
	"io"
	"net/http"

	"github.com/wallfetch/wallfetch/pkg/spotlight"
)

// ProvideHTTPClient returns an *http.Client that identifies as wallfetch on
// every request.
func ProvideHTTPClient() *http.Client {
	return &http.Client{
		Transport: &Transport{
			headers: map[string]string{
				UserAgentHeader: UserAgent(),
				"Accept":        "application/json",
			},
		},
	}
}

// Fetcher adapts an *http.Client to the pipeline's Transport interface:
// perform one GET, return the body bytes, map every failure to a
// TransportError.
type Fetcher struct {
	client *http.Client
}

// NewFetcher wraps client; ProvideHTTPClient() is the usual argument.
func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch performs a GET against url and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &spotlight.TransportError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &spotlight.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &spotlight.TransportError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &spotlight.TransportError{URL: url, Err: err}
	}
	return body, nil
}
