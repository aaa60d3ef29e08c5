package domain

import "fmt"

// Place is a single match returned by the address lookup service.
type Place struct {
	DisplayName string `json:"display_name" yaml:"display_name"`
	OSMType     string `json:"osm_type" yaml:"osm_type"`
	Type        string `json:"type" yaml:"type"`
}

func (p Place) String() string {
	return fmt.Sprintf("{display_name: %s, osm_type: %s, type: %s}", p.DisplayName, p.OSMType, p.Type)
}
