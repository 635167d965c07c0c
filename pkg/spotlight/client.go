// Package spotlight fetches curated wallpaper metadata from the Windows
// Spotlight content-delivery API and normalizes the two incompatible API
// generations into one record shape.
package spotlight

import (
	"context"
	"errors"
	"time"

	"github.com/wallfetch/wallfetch/pkg/global"
)

// Transport performs a single GET and returns the raw body. Implementations
// should return a *TransportError for network failures and non-2xx statuses.
type Transport interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Logger is the observation side channel for non-fatal events, mainly
// per-item skips. Tests inject a recording implementation;
// *console.Console satisfies it.
type Logger interface {
	Debugf(msg string, v ...interface{})
	Warnf(msg string, v ...interface{})
}

// Client runs the fetch pipeline: resolve locale, build the versioned request
// URL, fetch, parse, dedupe — retrying the whole unit on failure with a fixed
// delay between attempts.
type Client struct {
	transport Transport
	log       Logger

	// RetryDelay is the fixed wait between attempts. Tests shrink it.
	RetryDelay time.Duration
	// Now is the clock used for the v3 request timestamp.
	Now func() time.Time
	// PortraitDetect reports whether the primary display is portrait. Used
	// only when FetchOptions.Portrait is nil.
	PortraitDetect func() bool
}

// NewClient returns a Client with production defaults. The display probe is
// left nil; callers that want orientation auto-detection set PortraitDetect.
func NewClient(transport Transport, log Logger) *Client {
	return &Client{
		transport:  transport,
		log:        log,
		RetryDelay: global.RetryDelay,
		Now:        time.Now,
	}
}

// FetchOptions selects what to fetch. Zero values mean: default API version,
// system locale, landscape (or auto-detected) orientation, default attempts.
type FetchOptions struct {
	Version  APIVersion
	Locale   string
	Portrait *bool
	Attempts int
}

// Fetch runs the pipeline and returns the deduplicated records of the first
// successful attempt. On failure it waits RetryDelay and tries again until
// the attempt budget is spent, then returns the last error as-is.
// Configuration errors are returned immediately; retrying cannot fix a
// machine that has no readable locale.
func (c *Client) Fetch(ctx context.Context, opts FetchOptions) ([]ImageRecord, error) {
	if opts.Version == InvalidVersion {
		opts.Version = DefaultVersion
	}
	if opts.Attempts < 1 {
		opts.Attempts = global.DefaultAttempts
	}

	portrait := false
	if opts.Portrait != nil {
		portrait = *opts.Portrait
	} else if c.PortraitDetect != nil {
		portrait = c.PortraitDetect()
	}

	remaining := opts.Attempts
	for {
		remaining--
		records, err := c.attempt(ctx, opts.Version, opts.Locale, portrait)
		if err == nil {
			return records, nil
		}

		var confErr *ConfigurationError
		if errors.As(err, &confErr) || remaining <= 0 {
			return nil, err
		}

		c.log.Warnf("wallpaper fetch failed (%s), retrying in %s: %s", errorKind(err), c.RetryDelay, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.RetryDelay):
		}
	}
}

// attempt is one full pass of the pipeline.
func (c *Client) attempt(ctx context.Context, version APIVersion, localeOverride string, portrait bool) ([]ImageRecord, error) {
	loc, err := ResolveLocale(localeOverride)
	if err != nil {
		return nil, err
	}

	url, err := RequestURL(version, loc, c.Now())
	if err != nil {
		return nil, err
	}
	c.log.Debugf("fetching %s batch for %s/%s", version, loc.Tag, loc.Region)

	body, err := c.transport.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	records, err := ParseBatch(body, version, portrait, c.log)
	if err != nil {
		return nil, err
	}
	return Dedupe(records), nil
}

func errorKind(err error) string {
	var transportErr *TransportError
	var formatErr *DataFormatError
	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &formatErr):
		return "data format"
	default:
		return "internal"
	}
}
