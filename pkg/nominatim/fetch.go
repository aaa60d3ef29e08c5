package nominatim

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Adda-Baaj/thikana/pkg/httpclient"
)

// Headers is an immutable set of request headers. Each value list is sent
// as a single header value joined with ";".
type Headers struct {
	values map[string][]string
}

// NewHeaders copies fields into a Headers value.
func NewHeaders(fields map[string][]string) Headers {
	values := make(map[string][]string, len(fields))
	for k, v := range fields {
		values[k] = append([]string(nil), v...)
	}
	return Headers{values: values}
}

// DefaultHeaders is the header set sent with every search request.
func DefaultHeaders() Headers {
	return NewHeaders(map[string][]string{
		"Content-Type": {"application/json", "charset=utf-8"},
	})
}

// Flatten returns a fresh header map with each value list joined by ";".
func (h Headers) Flatten() map[string]string {
	out := make(map[string]string, len(h.values))
	for k, v := range h.values {
		out[k] = strings.Join(v, ";")
	}
	return out
}

// FetchResult is the buffered outcome of one GET.
type FetchResult struct {
	ok     bool
	status int
	body   []byte
}

// NewFetchResult derives the success flag from status.
func NewFetchResult(status int, body []byte) FetchResult {
	if body == nil {
		body = []byte{}
	}
	return FetchResult{ok: status < http.StatusBadRequest, status: status, body: body}
}

// OK reports whether the status code is below 400.
func (r FetchResult) OK() bool { return r.ok }

// Status returns the HTTP status code.
func (r FetchResult) Status() int { return r.status }

// Body returns a copy of the complete response payload.
func (r FetchResult) Body() []byte { return append([]byte{}, r.body...) }

// Text returns the payload as UTF-8 text.
func (r FetchResult) Text() string { return string(r.body) }

// Fetcher performs single GET requests with a fixed header set.
type Fetcher struct {
	client  httpclient.Client
	headers map[string]string
}

// NewFetcher binds a transport and the headers sent on every request.
func NewFetcher(client httpclient.Client, headers Headers) *Fetcher {
	if client == nil {
		client = httpclient.NewRestyClient(0, nil)
	}
	return &Fetcher{client: client, headers: headers.Flatten()}
}

// Fetch GETs url and buffers the whole body whatever the status. Transport
// failures are wrapped in ErrTransport and never retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (FetchResult, error) {
	resp, err := f.client.Get(ctx, url, f.headers)
	if err != nil {
		return FetchResult{}, fmt.Errorf("%w: get %s: %w", ErrTransport, url, err)
	}
	return NewFetchResult(resp.StatusCode(), resp.Body()), nil
}
