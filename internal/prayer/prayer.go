// Package prayer computes the daily prayer times shown on the dashboard.
package prayer

import (
	"fmt"
	"sync"
	"time"

	goprayer "github.com/hablullah/go-prayer"
)

// Time is one entry of the prayer panel.
type Time struct {
	Name  string
	Label string
	At    time.Time
}

// Clock returns the time formatted as HH:MM.
func (t Time) Clock() string {
	return t.At.Format("15:04")
}

// Schedule is the prayer panel for one day. Next is nil once the last prayer of the day has passed.
type Schedule struct {
	Date  string
	Times []Time
	Next  *Time
}

var labels = []struct{ name, label string }{
	{"fajr", "صبح"},
	{"sunrise", "طلوع"},
	{"dhuhr", "پیشین"},
	{"asr", "دیگر"},
	{"maghrib", "شام"},
	{"isha", "خفتن"},
}

// Calculator computes schedules with the Karachi twilight angles and Hanafi Asr.
// Yearly tables are computed once and reused.
type Calculator struct {
	latitude  float64
	longitude float64
	loc       *time.Location

	mu    sync.Mutex
	years map[int][]goprayer.Schedule
}

// NewCalculator creates a Calculator for the given position, reporting times in loc.
func NewCalculator(latitude, longitude float64, loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{
		latitude:  latitude,
		longitude: longitude,
		loc:       loc,
		years:     make(map[int][]goprayer.Schedule),
	}
}

// Schedule returns the prayer times of the day containing now, with the next upcoming prayer marked.
func (c *Calculator) Schedule(now time.Time) (*Schedule, error) {
	now = now.In(c.loc)

	day, err := c.day(now)
	if err != nil {
		return nil, err
	}

	s := &Schedule{Date: day.Date}
	for i, at := range []time.Time{day.Fajr, day.Sunrise, day.Zuhr, day.Asr, day.Maghrib, day.Isha} {
		s.Times = append(s.Times, Time{Name: labels[i].name, Label: labels[i].label, At: at.In(c.loc)})
	}
	if next, ok := NextAfter(s.Times, now); ok {
		s.Next = &next
	}
	return s, nil
}

func (c *Calculator) day(now time.Time) (goprayer.Schedule, error) {
	year, err := c.year(now.Year())
	if err != nil {
		return goprayer.Schedule{}, err
	}

	date := now.Format("2006-01-02")
	if i := now.YearDay() - 1; i < len(year) && year[i].Date == date {
		return year[i], nil
	}
	for _, d := range year {
		if d.Date == date {
			return d, nil
		}
	}
	return goprayer.Schedule{}, fmt.Errorf("no prayer schedule for %s", date)
}

func (c *Calculator) year(y int) ([]goprayer.Schedule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.years[y]; ok {
		return s, nil
	}
	s, err := goprayer.Calculate(goprayer.Config{
		Latitude:           c.latitude,
		Longitude:          c.longitude,
		Timezone:           c.loc,
		TwilightConvention: goprayer.Karachi(),
		AsrConvention:      goprayer.Hanafi,
	}, y)
	if err != nil {
		return nil, fmt.Errorf("calculate prayer times for %d: %w", y, err)
	}
	c.years[y] = s
	return s, nil
}

// NextAfter returns the first time in times that is later than now.
func NextAfter(times []Time, now time.Time) (Time, bool) {
	for _, t := range times {
		if t.At.After(now) {
			return t, true
		}
	}
	return Time{}, false
}
