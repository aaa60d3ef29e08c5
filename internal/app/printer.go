package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Adda-Baaj/thikana/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	errorLine = "Error happened."
)

// Printer renders search outcomes for the console.
type Printer struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewPrinter builds a printer for one of the Format* values; unknown formats fall back to text.
func NewPrinter(format string, out, errOut io.Writer) *Printer {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case FormatJSON, FormatYAML:
	default:
		format = FormatText
	}
	return &Printer{format: format, out: out, errOut: errOut}
}

// Places writes the decoded places to the output stream.
func (p *Printer) Places(places []domain.Place) error {
	if places == nil {
		places = []domain.Place{}
	}
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(places)
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(places); err != nil {
			return err
		}
		return enc.Close()
	default:
		parts := make([]string, len(places))
		for i, pl := range places {
			parts[i] = pl.String()
		}
		_, err := fmt.Fprintf(p.out, "places - [%s]\n", strings.Join(parts, ", "))
		return err
	}
}

// Failure writes the generic error line to the error stream.
func (p *Printer) Failure() error {
	_, err := fmt.Fprintln(p.errOut, errorLine)
	return err
}
