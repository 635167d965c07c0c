package http

import (
	"net/http"
)

// Transport writes default headers onto every request before handing it to
// the base round tripper. Headers already set on a request are left alone.
type Transport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range t.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
