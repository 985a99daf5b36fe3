package providers

import (
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// geocoder keeps its key in a package variable.
var geocodeMu sync.Mutex

// geocodeFunc is swapped in tests.
var geocodeFunc = geocoder.Geocoding

// GeocodeCity resolves a city to coordinates through the Google geocoding API.
// Open-Meteo itself only accepts latitude and longitude.
func GeocodeCity(apiKey, city, country string) (weather.Coordinates, error) {
	if apiKey == "" {
		return weather.Coordinates{}, fmt.Errorf("geocoding requires an api key")
	}
	if city == "" {
		return weather.Coordinates{}, fmt.Errorf("geocoding requires a city")
	}

	geocodeMu.Lock()
	defer geocodeMu.Unlock()

	geocoder.ApiKey = apiKey
	loc, err := geocodeFunc(geocoder.Address{
		City:    city,
		Country: country,
	})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geocode %s,%s: %w", city, country, err)
	}

	return weather.Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}
