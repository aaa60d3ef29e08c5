package domain

import "testing"

func TestPlaceString(t *testing.T) {
	p := Place{DisplayName: "Nevsky Prospekt", OSMType: "way", Type: "primary"}
	want := "{display_name: Nevsky Prospekt, osm_type: way, type: primary}"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q want %q", got, want)
	}
}

func TestPlaceStringEmptyFields(t *testing.T) {
	p := Place{DisplayName: "x"}
	want := "{display_name: x, osm_type: , type: }"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q want %q", got, want)
	}
}
