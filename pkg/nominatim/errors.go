// Package nominatim builds, fetches and decodes street searches against the
// OpenStreetMap Nominatim search endpoint.
package nominatim

import "errors"

var (
	// ErrEncoding reports a street that cannot be percent-encoded as UTF-8.
	ErrEncoding = errors.New("nominatim: query encoding failed")
	// ErrTransport reports a connection, DNS or I/O failure during a fetch.
	ErrTransport = errors.New("nominatim: transport failed")
	// ErrParse reports a response body that is not a JSON array of place objects.
	ErrParse = errors.New("nominatim: malformed response")
)
