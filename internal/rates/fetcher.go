package rates

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"dashboard/internal/metrics"
)

// ErrRetrieval is matched by every error returned from Retrieve.
var ErrRetrieval = errors.New("rates retrieval failed")

// RetrievalError covers network failures, bad proxy responses and parse failures alike.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string { return fmt.Sprintf("%s: %v", ErrRetrieval, e.Err) }

// Unwrap exposes the underlying cause.
func (e *RetrievalError) Unwrap() error { return e.Err }

// Is reports ErrRetrieval as a match.
func (e *RetrievalError) Is(target error) bool { return target == ErrRetrieval }

// Source returns the HTML of the rates page.
type Source interface {
	FetchPage(ctx context.Context) (string, error)
}

// Renderer consumes the table chosen by the pipeline.
type Renderer interface {
	RenderRates(table Table, origin Origin)
}

// RatePublisher receives the USD rate of every rendered table.
type RatePublisher interface {
	Set(ctx context.Context, rate float64) error
}

// Fetcher runs the rates pipeline.
type Fetcher struct {
	source    Source
	publisher RatePublisher
	metrics   *metrics.Recorder
	log       *zap.SugaredLogger
}

// NewFetcher creates a Fetcher. The metrics recorder may be nil.
func NewFetcher(source Source, publisher RatePublisher, rec *metrics.Recorder, logger *zap.SugaredLogger) *Fetcher {
	return &Fetcher{
		source:    source,
		publisher: publisher,
		metrics:   rec,
		log:       logger,
	}
}

// Retrieve fetches and scans the rates page. The table may lack any currency, USD included.
func (f *Fetcher) Retrieve(ctx context.Context) (table Table, err error) {
	defer func() {
		if p := recover(); p != nil {
			table, err = nil, &RetrievalError{Err: fmt.Errorf("panic while scanning rates: %v", p)}
		}
	}()

	content, err := f.source.FetchPage(ctx)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	doc, err := ParseHTML(content)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	return Scan(doc), nil
}

// Resolve picks the table to render. The live table is used only when it carries a USD price;
// every other outcome yields the fallback table.
func Resolve(table Table, err error) (Table, Origin) {
	if err != nil {
		return FallbackTable(), OriginFallback
	}
	usd, ok := table[USD]
	if !ok || usd == "" || usd == Unavailable {
		return FallbackTable(), OriginFallback
	}
	return table.Complete(), OriginLive
}

// FetchRates retrieves the rates, publishes the USD rate and calls r exactly once,
// with either the live table or the fallback table.
func (f *Fetcher) FetchRates(ctx context.Context, r Renderer) {
	start := time.Now()
	live, err := f.Retrieve(ctx)
	table, origin := Resolve(live, err)

	switch {
	case err != nil:
		f.log.Warnw("Using offline rates", "error", err)
	case origin == OriginFallback:
		f.log.Warnw("Using offline rates", "reason", "no USD row on rates page")
	default:
		f.log.Debugw("Rates fetched", "usd", table[USD])
	}
	f.metrics.ObserveRates(string(origin), time.Since(start))

	if f.publisher != nil {
		if perr := f.publisher.Set(ctx, ParseRate(table[USD])); perr != nil {
			f.log.Errorw("Failed to publish conversion rate", "error", perr)
		}
	}

	r.RenderRates(table, origin)
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseRate reads the leading decimal number of a price string, ignoring trailing text
// such as a currency suffix. It returns 0 when the string does not start with a number.
func ParseRate(price string) float64 {
	m := leadingFloat.FindString(strings.TrimLeftFunc(price, unicode.IsSpace))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
