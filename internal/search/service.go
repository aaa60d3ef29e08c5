package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adda-Baaj/thikana/internal/domain"
	"github.com/Adda-Baaj/thikana/internal/logger"
	"github.com/Adda-Baaj/thikana/pkg/nominatim"
	"golang.org/x/sync/semaphore"
)

// ErrUnexpected wraps a panic recovered inside the search pipeline.
var ErrUnexpected = errors.New("search: unexpected fault")

// Outcome is the channel form of a finished search.
type Outcome struct {
	Places []domain.Place
	Failed bool
}

// Service runs build -> fetch -> decode searches in the background.
type Service struct {
	builder URLBuilder
	fetcher PageFetcher
	log     logger.Logger
	sem     *semaphore.Weighted
}

// Option configures a Service.
type Option func(*Service)

// WithQueryBuilder replaces the default Nominatim query builder.
func WithQueryBuilder(b URLBuilder) Option {
	return func(s *Service) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithMaxConcurrent caps in-flight searches. Zero or less means unbounded.
func WithMaxConcurrent(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(n)
		} else {
			s.sem = nil
		}
	}
}

// NewService wires a search service around the given fetcher.
func NewService(fetcher PageFetcher, log logger.Logger, opts ...Option) *Service {
	if fetcher == nil {
		fetcher = nominatim.NewFetcher(nil, nominatim.DefaultHeaders())
	}
	s := &Service{
		builder: nominatim.DefaultQueryBuilder(),
		fetcher: fetcher,
		log:     logger.Ensure(log),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search starts a search for query and returns at once. Exactly one of
// l.OnDownload or l.OnError is called from the search goroutine; the returned
// channel is closed after it returns. Cancelling ctx does not stop a started search.
func (s *Service) Search(ctx context.Context, query string, l Listener) <-chan struct{} {
	done := make(chan struct{})
	if l == nil {
		s.log.WarnObj("search started without listener", "query", query)
		l = ListenerFuncs{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(done)

		if s.sem != nil {
			// Acquire cannot fail on a context that is never cancelled.
			_ = s.sem.Acquire(ctx, 1)
			defer s.sem.Release(1)
		}

		places, err := s.run(ctx, query)
		if err != nil {
			s.deliver(query, "OnError", l.OnError)
			return
		}
		s.deliver(query, "OnDownload", func() { l.OnDownload(places) })
	}()

	return done
}

// SearchAsync is Search with the outcome delivered on a buffered channel.
func (s *Service) SearchAsync(ctx context.Context, query string) <-chan Outcome {
	out := make(chan Outcome, 1)
	s.Search(ctx, query, ListenerFuncs{
		Download: func(places []domain.Place) { out <- Outcome{Places: places} },
		Error:    func() { out <- Outcome{Failed: true} },
	})
	return out
}

// run executes the pipeline stages in order. Any error or panic is returned
// after being logged with its kind.
func (s *Service) run(ctx context.Context, query string) (places []domain.Place, err error) {
	var res nominatim.FetchResult
	fetched := false

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
			places = nil
		}
		if err != nil {
			meta := map[string]any{
				"query": query,
				"kind":  faultKind(err),
				"error": err.Error(),
			}
			if fetched {
				meta["status"] = res.Status()
				meta["body"] = nominatim.DescribeBody(res.Body())
			}
			s.log.WarnObj("search failed", "search_error", meta)
		}
	}()

	url, err := s.builder.Build(query)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	s.log.DebugObj("search request", "search_request", map[string]any{"query": query, "url": url})

	res, err = s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	fetched = true
	if !res.OK() {
		// The body is still decoded; an error status only gets a log line.
		s.log.WarnObj("search response has error status", "search_response", map[string]any{
			"query":  query,
			"status": res.Status(),
			"body":   nominatim.DescribeBody(res.Body()),
		})
	}

	places, err = nominatim.DecodePlaces(res.Body())
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	s.log.DebugObj("search completed", "search_result", map[string]any{
		"query":  query,
		"status": res.Status(),
		"places": len(places),
	})
	return places, nil
}

// deliver invokes a listener callback, containing any panic it raises.
func (s *Service) deliver(query, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorObj("search listener panicked", "listener_panic", map[string]any{
				"query":    query,
				"callback": name,
				"panic":    fmt.Sprint(r),
			})
		}
	}()
	fn()
}

func faultKind(err error) string {
	switch {
	case errors.Is(err, nominatim.ErrEncoding):
		return "encoding"
	case errors.Is(err, nominatim.ErrTransport):
		return "transport"
	case errors.Is(err, nominatim.ErrParse):
		return "parse"
	default:
		return "unexpected"
	}
}
