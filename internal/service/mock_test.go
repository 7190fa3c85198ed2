package service

import (
	"context"
	"time"

	"dashboard/internal/prayer"
	"dashboard/internal/repository"
	"dashboard/internal/weather"
)

// Mock repository
type mockNoteRepo struct {
	getFunc  func(ctx context.Context, key string) (*repository.Note, error)
	saveFunc func(ctx context.Context, key, body string) (*repository.Note, error)
}

func (m *mockNoteRepo) Get(ctx context.Context, key string) (*repository.Note, error) {
	return m.getFunc(ctx, key)
}

func (m *mockNoteRepo) Save(ctx context.Context, key, body string) (*repository.Note, error) {
	return m.saveFunc(ctx, key, body)
}

// Mock weather client
type mockWeather struct {
	fetchFunc func(ctx context.Context) (*weather.Report, error)
}

func (m *mockWeather) Fetch(ctx context.Context) (*weather.Report, error) {
	return m.fetchFunc(ctx)
}

// Mock page source for the rates pipeline
type stubSource struct {
	page string
	err  error
}

func (s stubSource) FetchPage(context.Context) (string, error) {
	return s.page, s.err
}

// Mock prayer calculator
type mockPrayer struct {
	scheduleFunc func(now time.Time) (*prayer.Schedule, error)
}

func (m *mockPrayer) Schedule(now time.Time) (*prayer.Schedule, error) {
	return m.scheduleFunc(now)
}
