package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultOpenMeteoURL is the public forecast endpoint.
const DefaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

var (
	hourlyFields = []string{
		"temperature_2m",
		"apparent_temperature",
		"precipitation",
		"weathercode",
		"windspeed_10m",
	}
	dailyFields = []string{
		"weathercode",
		"temperature_2m_max",
		"temperature_2m_min",
		"apparent_temperature_max",
		"apparent_temperature_min",
		"precipitation_sum",
	}
)

// OpenMeteoProvider implements weather.ForecastSource for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider builds a provider. An empty baseURL selects the
// public endpoint.
func NewOpenMeteoProvider(client *http.Client, baseURL string, breaker BreakerConfig) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo", breaker),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// ForecastURL returns the request URL for a location and zone.
func (p *OpenMeteoProvider) ForecastURL(at weather.Coordinates, timezone string) string {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	values.Set("hourly", strings.Join(hourlyFields, ","))
	values.Set("daily", strings.Join(dailyFields, ","))
	values.Set("current_weather", "true")
	values.Set("timeformat", "unixtime")
	values.Set("timezone", timezone)
	// The dashboard labels precipitation in inches.
	values.Set("precipitation_unit", "inch")

	return fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
}

func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, at weather.Coordinates, timezone string) (weather.RawForecast, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, p.ForecastURL(at, timezone), nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.RawForecast{}, err
	}
	defer resp.Body.Close()

	var payload weather.RawForecast
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawForecast{}, fmt.Errorf("%w: %v", weather.ErrParse, err)
	}
	if err := payload.Validate(); err != nil {
		return weather.RawForecast{}, err
	}

	return payload, nil
}
