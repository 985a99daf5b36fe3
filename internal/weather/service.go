package weather

import (
	"context"
	"fmt"
	"log"
)

// Service fetches a forecast from its source and turns it into view-models.
type Service struct {
	source    ForecastSource
	resolveTZ TimeZoneResolver
}

// NewService creates a new Service. A nil resolver defaults to
// ResolveLocalTimeZone.
func NewService(source ForecastSource, resolveTZ TimeZoneResolver) *Service {
	if resolveTZ == nil {
		resolveTZ = ResolveLocalTimeZone
	}
	return &Service{
		source:    source,
		resolveTZ: resolveTZ,
	}
}

// TimeZone returns the zone used when a caller does not name one.
func (s *Service) TimeZone() string {
	return s.resolveTZ()
}

// Forecast performs one fetch and normalizes the result. An empty timezone
// is resolved through the service's resolver.
func (s *Service) Forecast(ctx context.Context, at Coordinates, timezone string) (ForecastBundle, error) {
	if s.source == nil {
		return ForecastBundle{}, fmt.Errorf("no forecast source configured")
	}
	if timezone == "" {
		timezone = s.resolveTZ()
	}

	log.Printf("DEBUG: Forecast called for %s (%s) via %s", at, timezone, s.source.Name())

	raw, err := s.source.FetchForecast(ctx, at, timezone)
	if err != nil {
		log.Printf("ERROR: %s forecast failed for %s: %v", s.source.Name(), at, err)
		return ForecastBundle{}, err
	}
	if err := raw.Validate(); err != nil {
		return ForecastBundle{}, err
	}

	current, daily, hourly := Normalize(raw)

	// The provider echoes the zone it applied; prefer it for day names.
	if raw.TimeZone != "" {
		timezone = raw.TimeZone
	}

	return ForecastBundle{
		Location: at,
		TimeZone: timezone,
		Current:  current,
		Daily:    daily,
		Hourly:   hourly,
	}, nil
}
