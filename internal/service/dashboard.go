// Package service assembles the dashboard panels and implements note management.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dashboard/internal/calendar"
	"dashboard/internal/content"
	"dashboard/internal/metrics"
	"dashboard/internal/prayer"
	"dashboard/internal/rates"
	"dashboard/internal/weather"
)

// RatesFetcher runs the rates pipeline and renders its result into r.
type RatesFetcher interface {
	FetchRates(ctx context.Context, r rates.Renderer)
}

// WeatherFetcher returns the weather panel content.
type WeatherFetcher interface {
	Fetch(ctx context.Context) (*weather.Report, error)
}

// PrayerCalculator returns the prayer times of the day containing now.
type PrayerCalculator interface {
	Schedule(now time.Time) (*prayer.Schedule, error)
}

// Page holds the content of every dashboard panel. A nil panel failed to load and is shown empty.
type Page struct {
	Date    string
	Rates   *RatesView
	Weather *weather.Report
	Prayer  *prayer.Schedule
	Hadith  content.Hadith
	News    []content.NewsItem
	Note    *NoteView
}

// DashboardServiceInterface defines the operations available for the dashboard page.
type DashboardServiceInterface interface {
	BuildPage(ctx context.Context) *Page
	Rates(ctx context.Context) *RatesView
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

// DashboardService builds the dashboard page.
type DashboardService struct {
	rates   RatesFetcher
	weather WeatherFetcher
	prayer  PrayerCalculator
	notes   NoteServiceInterface
	noteKey string
	loc     *time.Location
	metrics *metrics.Recorder
	log     *zap.SugaredLogger
	now     func() time.Time
}

// NewDashboardService creates a new DashboardService. weather, prayer and notes may be nil,
// in which case their panels stay empty.
func NewDashboardService(
	ratesFetcher RatesFetcher,
	weatherFetcher WeatherFetcher,
	prayerTimes PrayerCalculator,
	notes NoteServiceInterface,
	noteKey string,
	loc *time.Location,
	rec *metrics.Recorder,
	logger *zap.SugaredLogger,
) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		rates:   ratesFetcher,
		weather: weatherFetcher,
		prayer:  prayerTimes,
		notes:   notes,
		noteKey: noteKey,
		loc:     loc,
		metrics: rec,
		log:     logger,
		now:     time.Now,
	}
}

// Rates runs the rates pipeline once and returns the rendered panel.
func (s *DashboardService) Rates(ctx context.Context) *RatesView {
	panel := NewRatesPanel()
	s.rates.FetchRates(ctx, panel)
	return panel.View()
}

// BuildPage loads every panel concurrently. No panel waits on another, and a failing
// panel is logged and left empty.
func (s *DashboardService) BuildPage(ctx context.Context) *Page {
	now := s.now().In(s.loc)
	page := &Page{
		Date:   calendar.ToJalali(now).FormatLong(),
		Hadith: content.RandomHadith(nil),
		News:   content.News(),
	}

	var g errgroup.Group

	g.Go(func() error {
		page.Rates = s.Rates(ctx)
		return nil
	})

	if s.weather != nil {
		g.Go(func() error {
			report, err := s.weather.Fetch(ctx)
			if err != nil {
				s.widgetFailed("weather", err)
				return nil
			}
			page.Weather = report
			return nil
		})
	}

	if s.prayer != nil {
		g.Go(func() error {
			schedule, err := s.prayer.Schedule(now)
			if err != nil {
				s.widgetFailed("prayer", err)
				return nil
			}
			page.Prayer = schedule
			return nil
		})
	}

	if s.notes != nil {
		g.Go(func() error {
			note, err := s.notes.Load(ctx, s.noteKey)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					s.widgetFailed("notes", err)
				}
				return nil
			}
			page.Note = note
			return nil
		})
	}

	_ = g.Wait()
	return page
}

func (s *DashboardService) widgetFailed(widget string, err error) {
	s.log.Warnw("Widget failed to load", "widget", widget, "error", err)
	s.metrics.WidgetFailed(widget)
}
