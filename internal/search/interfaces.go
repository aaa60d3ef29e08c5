package search

import (
	"context"

	"github.com/Adda-Baaj/thikana/internal/domain"
	"github.com/Adda-Baaj/thikana/pkg/nominatim"
)

// Listener receives the single outcome of a search. Both methods run on the
// search goroutine, not the caller's.
type Listener interface {
	OnDownload(places []domain.Place)
	OnError()
}

// ListenerFuncs adapts a pair of functions to Listener. Nil funcs are skipped.
type ListenerFuncs struct {
	Download func(places []domain.Place)
	Error    func()
}

// OnDownload calls Download when set.
func (l ListenerFuncs) OnDownload(places []domain.Place) {
	if l.Download != nil {
		l.Download(places)
	}
}

// OnError calls Error when set.
func (l ListenerFuncs) OnError() {
	if l.Error != nil {
		l.Error()
	}
}

// URLBuilder turns a street into a search URL.
type URLBuilder interface {
	Build(street string) (string, error)
}

// PageFetcher performs the GET for a built URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (nominatim.FetchResult, error)
}
