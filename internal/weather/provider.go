package weather

import (
	"context"
)

// ForecastSource abstracts the forecast API (Open-Meteo in production, a
// fake in tests). Implementations return ErrNetwork or ErrParse wrapped.
type ForecastSource interface {
	Name() string
	FetchForecast(ctx context.Context, at Coordinates, timezone string) (RawForecast, error)
}
