package weather

import "fmt"

// RawForecast mirrors the Open-Meteo forecast payload requested with
// timeformat=unixtime. Top-level sections are pointers so that an absent
// section can be told apart from an empty one.
type RawForecast struct {
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	TimeZone         string           `json:"timezone"`
	UTCOffsetSeconds int              `json:"utc_offset_seconds"`
	CurrentWeather   *RawCurrent      `json:"current_weather"`
	Daily            *RawDailySeries  `json:"daily"`
	Hourly           *RawHourlySeries `json:"hourly"`
}

type RawCurrent struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
	WindSpeed   float64 `json:"windspeed"`
	Time        int64   `json:"time"`
}

// RawDailySeries holds parallel arrays; index i of each describes day i.
type RawDailySeries struct {
	Time                   []int64   `json:"time"`
	WeatherCode            []int     `json:"weathercode"`
	Temperature2mMax       []float64 `json:"temperature_2m_max"`
	Temperature2mMin       []float64 `json:"temperature_2m_min"`
	ApparentTemperatureMax []float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin []float64 `json:"apparent_temperature_min"`
	PrecipitationSum       []float64 `json:"precipitation_sum"`
}

// RawHourlySeries holds parallel arrays; index i of each describes hour i.
type RawHourlySeries struct {
	Time                []int64   `json:"time"`
	WeatherCode         []int     `json:"weathercode"`
	Temperature2m       []float64 `json:"temperature_2m"`
	ApparentTemperature []float64 `json:"apparent_temperature"`
	WindSpeed10m        []float64 `json:"windspeed_10m"`
	Precipitation       []float64 `json:"precipitation"`
}

// Validate checks the required sections and that sibling arrays line up.
func (r RawForecast) Validate() error {
	switch {
	case r.CurrentWeather == nil:
		return fmt.Errorf("%w: missing current_weather", ErrParse)
	case r.Daily == nil:
		return fmt.Errorf("%w: missing daily", ErrParse)
	case r.Hourly == nil:
		return fmt.Errorf("%w: missing hourly", ErrParse)
	}

	d := r.Daily
	if err := sameLength("daily", len(d.Time), map[string]int{
		"weathercode":              len(d.WeatherCode),
		"temperature_2m_max":       len(d.Temperature2mMax),
		"temperature_2m_min":       len(d.Temperature2mMin),
		"apparent_temperature_max": len(d.ApparentTemperatureMax),
		"apparent_temperature_min": len(d.ApparentTemperatureMin),
		"precipitation_sum":        len(d.PrecipitationSum),
	}); err != nil {
		return err
	}

	h := r.Hourly
	return sameLength("hourly", len(h.Time), map[string]int{
		"weathercode":          len(h.WeatherCode),
		"temperature_2m":       len(h.Temperature2m),
		"apparent_temperature": len(h.ApparentTemperature),
		"windspeed_10m":        len(h.WindSpeed10m),
		"precipitation":        len(h.Precipitation),
	})
}

func sameLength(section string, want int, lengths map[string]int) error {
	for name, n := range lengths {
		if n != want {
			return fmt.Errorf("%w: %s.%s has %d entries, %s.time has %d", ErrParse, section, name, n, section, want)
		}
	}
	return nil
}
