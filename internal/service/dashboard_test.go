package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dashboard/internal/conversion"
	"dashboard/internal/metrics"
	"dashboard/internal/prayer"
	"dashboard/internal/provider"
	"dashboard/internal/rates"
	"dashboard/internal/repository"
	"dashboard/internal/weather"
)

const livePage = `<table>
<tr><td>دالر</td><td>71.50</td><td>71.80</td></tr>
<tr><td>یورو</td><td>76.20</td><td>76.60</td></tr>
</table>`

func newFetcher(src rates.Source, store conversion.Store) *rates.Fetcher {
	return rates.NewFetcher(src, store, nil, zap.NewNop().Sugar())
}

func newTestDashboard(f RatesFetcher, w WeatherFetcher, n NoteServiceInterface) *DashboardService {
	return newTestDashboardWithPrayer(f, w, nil, n)
}

func newTestDashboardWithPrayer(f RatesFetcher, w WeatherFetcher, p PrayerCalculator, n NoteServiceInterface) *DashboardService {
	kabul := time.FixedZone("AFT", 4*3600+1800)
	s := NewDashboardService(f, w, p, n, "userNote", kabul, metrics.NewRecorder(), zap.NewNop().Sugar())
	s.now = func() time.Time { return time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC) }
	return s
}

func TestRatesPanel(t *testing.T) {
	p := NewRatesPanel()
	assert.Nil(t, p.View())

	p.RenderRates(rates.Table{rates.USD: "71.80", rates.EUR: "76.60"}, rates.OriginLive)

	v := p.View()
	require.NotNil(t, v)
	assert.Equal(t, 1, p.Renders())
	assert.Equal(t, "71.80", v.USD)
	require.Len(t, v.Rows, 5)
	assert.Equal(t, RateRow{Code: rates.USD, Flag: "🇺🇸", Label: "دالر", Price: "71.80"}, v.Rows[0])
	assert.Equal(t, rates.Unavailable, v.Rows[4].Price)
	assert.Equal(t, rates.PKR, v.Rows[4].Code)
}

func TestDashboardService_BuildPage(t *testing.T) {
	note := &mockNoteRepo{
		getFunc: func(ctx context.Context, key string) (*repository.Note, error) {
			return &repository.Note{Key: key, Body: "pay rent", UpdatedAt: time.Now()}, nil
		},
	}
	w := &mockWeather{
		fetchFunc: func(ctx context.Context) (*weather.Report, error) {
			return &weather.Report{Temperature: 18}, nil
		},
	}

	svc := newTestDashboard(
		newFetcher(stubSource{page: livePage}, conversion.NewMemoryStore()),
		w,
		NewNoteService(note, zap.NewNop().Sugar()),
	)
	page := svc.BuildPage(context.Background())

	assert.Equal(t, "۲۵ مهر ۱۴۰۵", page.Date)
	require.NotNil(t, page.Rates)
	assert.Equal(t, rates.OriginLive, page.Rates.Origin)
	assert.Equal(t, "71.80", page.Rates.USD)
	require.NotNil(t, page.Weather)
	assert.Equal(t, 18, page.Weather.Temperature)
	require.NotNil(t, page.Note)
	assert.Equal(t, "pay rent...", page.Note.Preview)
	assert.NotEmpty(t, page.Hadith.Arabic)
	assert.NotEmpty(t, page.Hadith.Persian)
	assert.Len(t, page.News, 3)
}

func TestDashboardService_BuildPage_FailingWidgets(t *testing.T) {
	note := &mockNoteRepo{
		getFunc: func(ctx context.Context, key string) (*repository.Note, error) {
			return nil, errors.New("db down")
		},
	}
	w := &mockWeather{
		fetchFunc: func(ctx context.Context) (*weather.Report, error) {
			return nil, errors.New("open-meteo down")
		},
	}

	svc := newTestDashboard(
		newFetcher(stubSource{err: errors.New("proxy down")}, conversion.NewMemoryStore()),
		w,
		NewNoteService(note, zap.NewNop().Sugar()),
	)
	page := svc.BuildPage(context.Background())

	require.NotNil(t, page.Rates, "rates panel always renders")
	assert.Equal(t, rates.OriginFallback, page.Rates.Origin)
	assert.Equal(t, "71.20", page.Rates.USD)
	assert.Nil(t, page.Weather)
	assert.Nil(t, page.Note)
	assert.NotEmpty(t, page.Date)
}

func TestDashboardService_BuildPage_OptionalWidgets(t *testing.T) {
	svc := newTestDashboard(newFetcher(stubSource{page: livePage}, conversion.NewMemoryStore()), nil, nil)
	page := svc.BuildPage(context.Background())

	assert.NotNil(t, page.Rates)
	assert.Nil(t, page.Weather)
	assert.Nil(t, page.Note)
}

func TestRatesPipeline_PublishesConversionRate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		src    stubSource
		rate   float64
		result string
	}{
		{"live", stubSource{page: livePage}, 71.80, "718.00"},
		{"fallback", stubSource{err: errors.New("offline")}, 71.20, "712.00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := conversion.NewMemoryStore()
			svc := newTestDashboard(newFetcher(tc.src, store), nil, nil)

			view := svc.Rates(ctx)

			got, err := store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, rates.ParseRate(view.USD), got)
			assert.Equal(t, tc.rate, got)

			conv, err := conversion.NewConverter(store).Convert(ctx, decimal.NewFromInt(10))
			require.NoError(t, err)
			assert.Equal(t, tc.result, conv.Result.StringFixed(2))
		})
	}
}

func TestRatesPipeline_ThroughProxy(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		origin rates.Origin
		usd    string
	}{
		{"contents present", `{"contents":"<table><tr><td>دالر</td><td>71.50</td><td>71.80</td></tr></table>"}`, rates.OriginLive, "71.80"},
		{"no contents field", `{"status":{"http_code":200}}`, rates.OriginFallback, "71.20"},
		{"not JSON", `<html>rate limited</html>`, rates.OriginFallback, "71.20"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			src := provider.NewAllOriginsProvider(srv.URL, "https://sarafi.af/fa/exchange-rates/sarai-shahzada", 5)
			store := conversion.NewMemoryStore()
			view := newTestDashboard(newFetcher(src, store), nil, nil).Rates(context.Background())

			require.NotNil(t, view)
			assert.Equal(t, tc.origin, view.Origin)
			assert.Equal(t, tc.usd, view.USD)
			if tc.origin == rates.OriginFallback {
				for _, row := range view.Rows {
					assert.Equal(t, rates.FallbackTable()[row.Code], row.Price)
				}
			}
		})
	}
}

func TestDashboardService_BuildPage_Prayer(t *testing.T) {
	fetcher := newFetcher(stubSource{page: livePage}, conversion.NewMemoryStore())

	t.Run("schedule for the page time", func(t *testing.T) {
		var asked time.Time
		p := &mockPrayer{
			scheduleFunc: func(now time.Time) (*prayer.Schedule, error) {
				asked = now
				return &prayer.Schedule{Date: "2026-10-17", Next: &prayer.Time{Name: "dhuhr", Label: "پیشین"}}, nil
			},
		}

		page := newTestDashboardWithPrayer(fetcher, nil, p, nil).BuildPage(context.Background())

		require.NotNil(t, page.Prayer)
		assert.Equal(t, "پیشین", page.Prayer.Next.Label)
		assert.True(t, asked.Equal(time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC)))
		assert.Equal(t, 4*3600+1800, func() int { _, off := asked.Zone(); return off }())
	})

	t.Run("failure leaves the panel empty", func(t *testing.T) {
		p := &mockPrayer{
			scheduleFunc: func(time.Time) (*prayer.Schedule, error) {
				return nil, errors.New("no schedule")
			},
		}

		page := newTestDashboardWithPrayer(fetcher, nil, p, nil).BuildPage(context.Background())

		assert.Nil(t, page.Prayer)
		require.NotNil(t, page.Rates)
	})

	t.Run("real calculator", func(t *testing.T) {
		kabul := time.FixedZone("AFT", 4*3600+1800)
		page := newTestDashboardWithPrayer(fetcher, nil, prayer.NewCalculator(34.5553, 69.2075, kabul), nil).
			BuildPage(context.Background())

		require.NotNil(t, page.Prayer)
		assert.Len(t, page.Prayer.Times, 6)
		require.NotNil(t, page.Prayer.Next)
		assert.Equal(t, "dhuhr", page.Prayer.Next.Name)
	})
}
