package nominatim

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Adda-Baaj/thikana/internal/domain"
)

type placeRecord struct {
	DisplayName string `json:"display_name"`
	OSMType     string `json:"osm_type"`
	Type        string `json:"type"`
}

// DecodePlaces parses a JSON array of place objects. Missing fields stay
// empty and unknown fields are ignored, but every element must be an object.
func DecodePlaces(body []byte) ([]domain.Place, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrParse)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	places := make([]domain.Place, 0, len(elems))
	for i, raw := range elems {
		if len(raw) == 0 || raw[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrParse, i)
		}
		var rec placeRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrParse, i, err)
		}
		places = append(places, domain.Place{
			DisplayName: rec.DisplayName,
			OSMType:     rec.OSMType,
			Type:        rec.Type,
		})
	}
	return places, nil
}
