package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Adda-Baaj/thikana/internal/domain"
	"github.com/Adda-Baaj/thikana/internal/search"
	"github.com/Adda-Baaj/thikana/pkg/httpclient"
	"github.com/Adda-Baaj/thikana/pkg/nominatim"
)

// fakeSearcher answers synchronously on a goroutine with canned places or a failure.
type fakeSearcher struct {
	places []domain.Place
	fail   bool
	query  string
	block  chan struct{}
}

func (f *fakeSearcher) Search(_ context.Context, query string, l search.Listener) <-chan struct{} {
	f.query = query
	done := make(chan struct{})
	go func() {
		defer close(done)
		if f.block != nil {
			<-f.block
		}
		if f.fail {
			l.OnError()
			return
		}
		l.OnDownload(f.places)
	}()
	return done
}

func TestFinderRunPrintsPlaces(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &fakeSearcher{places: []domain.Place{{DisplayName: "a", OSMType: "way", Type: "t"}}}
	f := newFinder(s, NewPrinter(FormatText, &out, &errOut), nil)

	if err := f.Run(context.Background(), "Nevsky"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.query != "Nevsky" {
		t.Fatalf("query = %q", s.query)
	}
	if out.String() != "places - [{display_name: a, osm_type: way, type: t}]\n" {
		t.Fatalf("stdout = %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestFinderRunPrintsErrorLine(t *testing.T) {
	var out, errOut bytes.Buffer
	f := newFinder(&fakeSearcher{fail: true}, NewPrinter(FormatText, &out, &errOut), nil)

	if err := f.Run(context.Background(), "x"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("no partial results expected, got %q", out.String())
	}
	if errOut.String() != "Error happened.\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestFinderRunReturnsOnContextDone(t *testing.T) {
	s := &fakeSearcher{block: make(chan struct{})}
	defer close(s.block)
	f := newFinder(s, NewPrinter(FormatText, &bytes.Buffer{}, &bytes.Buffer{}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Run(ctx, "x"); err != nil {
		t.Fatalf("Run err = %v want nil on shutdown", err)
	}
}

func TestFinderReportMissingQuery(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &fakeSearcher{}
	f := newFinder(s, NewPrinter(FormatText, &out, &errOut), nil)

	if err := f.ReportMissingQuery(); err != nil {
		t.Fatalf("ReportMissingQuery: %v", err)
	}
	if errOut.String() != "Error happened.\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
	if out.Len() != 0 || s.query != "" {
		t.Fatalf("no search expected, stdout = %q query = %q", out.String(), s.query)
	}
}

func TestNewFinderRequiresConfig(t *testing.T) {
	if _, err := NewFinder(nil, nil, nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestFinderEndToEndAgainstTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("city") != nominatim.City {
			t.Errorf("city = %q", r.URL.Query().Get("city"))
		}
		_, _ = w.Write([]byte(`[{"display_name":"` + r.URL.Query().Get("street") + `","osm_type":"way","type":"residential","importance":0.5}]`))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	fetcher := nominatim.NewFetcher(httpclient.NewRestyClient(0, nil), nominatim.DefaultHeaders())
	svc := search.NewService(fetcher, nil, search.WithQueryBuilder(nominatim.QueryBuilder{
		Endpoint: srv.URL + "/search",
		City:     nominatim.City,
	}))
	f := newFinder(svc, NewPrinter(FormatText, &out, &errOut), nil)

	if err := f.Run(context.Background(), "Sadovaya"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "display_name: Sadovaya, osm_type: way, type: residential") {
		t.Fatalf("stdout = %q stderr = %q", out.String(), errOut.String())
	}
}
