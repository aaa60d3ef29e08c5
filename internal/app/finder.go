package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Adda-Baaj/thikana/internal/config"
	"github.com/Adda-Baaj/thikana/internal/domain"
	"github.com/Adda-Baaj/thikana/internal/logger"
	"github.com/Adda-Baaj/thikana/internal/search"
	"github.com/Adda-Baaj/thikana/pkg/httpclient"
	"github.com/Adda-Baaj/thikana/pkg/nominatim"
	"github.com/go-resty/resty/v2"
)

// Searcher starts a background search and reports through the listener.
type Searcher interface {
	Search(ctx context.Context, query string, l search.Listener) <-chan struct{}
}

// Finder is the CLI runtime: it starts one search and prints its outcome.
type Finder struct {
	searcher Searcher
	printer  *Printer
	log      logger.Logger
}

// NewFinder wires the search pipeline from config. restyLog may be nil.
func NewFinder(cfg *config.Config, log logger.Logger, restyLog resty.Logger, out, errOut io.Writer) (*Finder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)

	client := httpclient.NewRestyClient(cfg.HTTPTimeout, restyLog)
	fetcher := nominatim.NewFetcher(client, nominatim.DefaultHeaders())
	svc := search.NewService(fetcher, log, search.WithMaxConcurrent(cfg.MaxConcurrentSearches))

	log.DebugObj("finder initialized", "finder_config", map[string]any{
		"endpoint":                nominatim.SearchEndpoint,
		"city":                    nominatim.City,
		"output_format":           cfg.OutputFormat,
		"http_timeout":            cfg.HTTPTimeout.String(),
		"max_concurrent_searches": cfg.MaxConcurrentSearches,
	})

	return newFinder(svc, NewPrinter(cfg.OutputFormat, out, errOut), log), nil
}

func newFinder(searcher Searcher, printer *Printer, log logger.Logger) *Finder {
	return &Finder{searcher: searcher, printer: printer, log: logger.Ensure(log)}
}

// Run searches for query and blocks until the outcome is printed or ctx ends.
// A failed search is reported on the error stream, not as a returned error,
// and an interrupted wait is a normal shutdown.
func (f *Finder) Run(ctx context.Context, query string) error {
	if f == nil || f.searcher == nil {
		return fmt.Errorf("finder is not initialized")
	}

	done := f.searcher.Search(ctx, query, search.ListenerFuncs{
		Download: func(places []domain.Place) {
			if err := f.printer.Places(places); err != nil {
				f.log.ErrorObj("print places failed", "error", err)
			}
		},
		Error: func() {
			if err := f.printer.Failure(); err != nil {
				f.log.ErrorObj("print failure failed", "error", err)
			}
		},
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		f.log.InfoObj("finder exiting before search finished", "reason", ctx.Err())
		return nil
	}
}

// ReportMissingQuery prints the failure line for a command line without a
// -q value. No search is started.
func (f *Finder) ReportMissingQuery() error {
	if f == nil || f.printer == nil {
		return fmt.Errorf("finder is not initialized")
	}
	return f.printer.Failure()
}
