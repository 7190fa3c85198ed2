// Package weather fetches current conditions and a short forecast from open-meteo.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dashboard/internal/calendar"
)

// forecastDays is the number of days after today shown in the panel.
const forecastDays = 3

// Report is the weather panel content.
type Report struct {
	Temperature int
	WindSpeed   float64
	// Humidity is the relative humidity in percent, or -1 when open-meteo omits it.
	Humidity    int
	Forecast    []Day
}

// Day is one forecast entry.
type Day struct {
	Name string
	Max  int
	Min  int
}

// Client queries the open-meteo forecast API.
type Client struct {
	baseURL   string
	latitude  float64
	longitude float64
	client    *http.Client
	now       func() time.Time
}

// NewClient creates a new Client.
func NewClient(baseURL string, latitude, longitude float64, timeoutSec int) *Client {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1"
	}
	return &Client{
		baseURL:   baseURL,
		latitude:  latitude,
		longitude: longitude,
		client:    &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		now:       time.Now,
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
	} `json:"current_weather"`
	Current *struct {
		Humidity *float64 `json:"relative_humidity_2m"`
	} `json:"current"`
	Daily struct {
		Max []float64 `json:"temperature_2m_max"`
		Min []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (c *Client) forecastURL() string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("current", "relative_humidity_2m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	return c.baseURL + "/forecast?" + q.Encode()
}

// Fetch returns the current weather and the forecast for the next days.
func (c *Client) Fetch(ctx context.Context) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.forecastURL(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("open-meteo request creation failed: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open-meteo request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("open-meteo returned status %d: %s", resp.StatusCode, string(body))
	}

	var result forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode open-meteo response: %w", err)
	}
	if result.CurrentWeather == nil {
		return nil, fmt.Errorf("open-meteo response has no current weather")
	}

	report := &Report{
		Temperature: round(result.CurrentWeather.Temperature),
		WindSpeed:   result.CurrentWeather.WindSpeed,
		Humidity:    -1,
	}
	if result.Current != nil && result.Current.Humidity != nil {
		report.Humidity = round(*result.Current.Humidity)
	}

	today := c.now()
	for i := 1; i <= forecastDays && i < len(result.Daily.Max) && i < len(result.Daily.Min); i++ {
		report.Forecast = append(report.Forecast, Day{
			Name: calendar.Weekday(today.AddDate(0, 0, i).Weekday()),
			Max:  round(result.Daily.Max[i]),
			Min:  round(result.Daily.Min[i]),
		})
	}

	return report, nil
}

// round matches JavaScript Math.round, which rounds halves toward positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
