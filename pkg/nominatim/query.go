package nominatim

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

const (
	// SearchEndpoint is the only lookup endpoint the tool talks to.
	SearchEndpoint = "http://nominatim.openstreetmap.org/search"
	// City restricts every search to Saint Petersburg.
	City = "СПб"
)

// QueryBuilder turns a street name into a search URL.
type QueryBuilder struct {
	Endpoint string
	City     string
}

// DefaultQueryBuilder targets SearchEndpoint with the City filter.
func DefaultQueryBuilder() QueryBuilder {
	return QueryBuilder{Endpoint: SearchEndpoint, City: City}
}

// SearchURL builds the search URL for street using DefaultQueryBuilder.
func SearchURL(street string) (string, error) {
	return DefaultQueryBuilder().Build(street)
}

// Build returns endpoint?street=..&format=json&city=.. with both values query-escaped.
func (b QueryBuilder) Build(street string) (string, error) {
	street, err := encodeComponent(street)
	if err != nil {
		return "", fmt.Errorf("street: %w", err)
	}
	city, err := encodeComponent(b.City)
	if err != nil {
		return "", fmt.Errorf("city: %w", err)
	}
	return fmt.Sprintf("%s?street=%s&format=json&city=%s", b.Endpoint, street, city), nil
}

// encodeComponent refuses invalid UTF-8 rather than escaping raw bytes or replacement runes.
func encodeComponent(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrEncoding, s)
	}
	return url.QueryEscape(s), nil
}
