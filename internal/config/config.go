package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// Location shown on the dashboard. City/Country are only used to
	// geocode when GeocoderAPIKey is set.
	Latitude       float64 `validate:"latitude"`
	Longitude      float64 `validate:"longitude"`
	City           string
	Country        string
	GeocoderAPIKey string

	// TimeZone is the IANA zone sent to the forecast API.
	TimeZone string `validate:"required,timezone"`

	OpenMeteoURL string        `validate:"omitempty,url"`
	HTTPTimeout  time.Duration `validate:"gt=0"`
	IconBase     string        `validate:"required"`

	// Static export: rewrite ExportPath every ExportInterval (disabled when empty).
	ExportPath     string
	ExportInterval time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	return LoadWith(weather.ResolveLocalTimeZone)
}

// LoadWith is Load with an explicit fallback time-zone resolver.
func LoadWith(resolveTZ weather.TimeZoneResolver) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	// Berlin by default.
	if cfg.Latitude, err = getenvFloat("LATITUDE", 52.52); err != nil {
		return nil, err
	}
	if cfg.Longitude, err = getenvFloat("LONGITUDE", 13.41); err != nil {
		return nil, err
	}
	cfg.City = os.Getenv("WEATHER_LOCATION_CITY")
	cfg.Country = os.Getenv("WEATHER_LOCATION_COUNTRY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.TimeZone = os.Getenv("TIMEZONE")
	if cfg.TimeZone == "" && resolveTZ != nil {
		cfg.TimeZone = resolveTZ()
	}

	cfg.OpenMeteoURL = os.Getenv("OPEN_METEO_URL")
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	cfg.IconBase = getenvDefault("ICON_BASE", "./img")

	cfg.ExportPath = os.Getenv("EXPORT_PATH")
	if cfg.ExportInterval, err = getenvDuration("EXPORT_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Coordinates returns the configured location.
func (c *AppConfig) Coordinates() weather.Coordinates {
	return weather.Coordinates{Lat: c.Latitude, Lon: c.Longitude}
}

// WantsGeocoding reports whether the location should be resolved from City.
func (c *AppConfig) WantsGeocoding() bool {
	return c.City != "" && c.GeocoderAPIKey != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
