package api

import (
	"context"

	"github.com/shopspring/decimal"

	"dashboard/internal/conversion"
	"dashboard/internal/service"
)

// mockDashboardService implements service.DashboardServiceInterface for testing.
type mockDashboardService struct {
	buildPageFunc func(ctx context.Context) *service.Page
	ratesFunc     func(ctx context.Context) *service.RatesView
}

func (m *mockDashboardService) BuildPage(ctx context.Context) *service.Page {
	return m.buildPageFunc(ctx)
}

func (m *mockDashboardService) Rates(ctx context.Context) *service.RatesView {
	return m.ratesFunc(ctx)
}

// mockNoteService implements service.NoteServiceInterface for testing.
type mockNoteService struct {
	loadFunc func(ctx context.Context, key string) (*service.NoteView, error)
	saveFunc func(ctx context.Context, key, body string) (*service.NoteView, error)
}

func (m *mockNoteService) Load(ctx context.Context, key string) (*service.NoteView, error) {
	return m.loadFunc(ctx, key)
}

func (m *mockNoteService) Save(ctx context.Context, key, body string) (*service.NoteView, error) {
	return m.saveFunc(ctx, key, body)
}

// mockConverter implements Converter for testing.
type mockConverter struct {
	convertFunc func(ctx context.Context, amount decimal.Decimal) (conversion.Conversion, error)
}

func (m *mockConverter) Convert(ctx context.Context, amount decimal.Decimal) (conversion.Conversion, error) {
	return m.convertFunc(ctx, amount)
}
