package weather

import "github.com/i474232898/weather-dashboard/internal/common"

// Normalize flattens a validated response into the three view-models.
func Normalize(raw RawForecast) (CurrentView, []DailyView, []HourlyView) {
	return NormalizeCurrent(raw), NormalizeDaily(raw), NormalizeHourly(raw)
}

// NormalizeCurrent builds the current panel. Today's extremes are the first
// element of each daily series, passed through unrounded.
func NormalizeCurrent(raw RawForecast) CurrentView {
	cw := raw.CurrentWeather
	v := CurrentView{
		CurrentTemp: common.PadTwo(common.RoundInt(cw.Temperature)),
		WindSpeed:   cw.WindSpeed,
		IconCode:    cw.WeatherCode,
	}

	d := raw.Daily
	if d == nil || len(d.Time) == 0 {
		return v
	}
	v.HighTemp = first(d.Temperature2mMax)
	v.LowTemp = first(d.Temperature2mMin)
	v.HighFeelsLike = first(d.ApparentTemperatureMax)
	v.LowFeelsLike = first(d.ApparentTemperatureMin)
	v.Precip = first(d.PrecipitationSum)
	return v
}

func first(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	x := xs[0]
	return &x
}

// NormalizeDaily returns one entry per day in the daily series. Input that
// failed Validate is cut to its shortest sibling series rather than indexed
// out of range.
func NormalizeDaily(raw RawForecast) []DailyView {
	d := raw.Daily
	if d == nil {
		return []DailyView{}
	}

	n := shortest(len(d.Time), len(d.WeatherCode), len(d.Temperature2mMax))
	out := make([]DailyView, 0, n)
	for i, t := range d.Time[:n] {
		out = append(out, DailyView{
			Timestamp: t * 1000,
			IconCode:  d.WeatherCode[i],
			MaxTemp:   common.RoundInt(d.Temperature2mMax[i]),
		})
	}
	return out
}

// NormalizeHourly keeps the hours at or after the current observation.
// Every sibling series is read at the same source index as the kept time.
// Like NormalizeDaily it stops at the shortest sibling series.
func NormalizeHourly(raw RawForecast) []HourlyView {
	h := raw.Hourly
	if h == nil {
		return []HourlyView{}
	}

	var now int64
	if raw.CurrentWeather != nil {
		now = raw.CurrentWeather.Time
	}

	n := shortest(len(h.Time), len(h.WeatherCode), len(h.Temperature2m),
		len(h.ApparentTemperature), len(h.WindSpeed10m), len(h.Precipitation))
	out := make([]HourlyView, 0, n)
	for i, t := range h.Time[:n] {
		if t < now {
			continue
		}
		out = append(out, HourlyView{
			Timestamp: t * 1000,
			IconCode:  h.WeatherCode[i],
			Temp:      common.RoundInt(h.Temperature2m[i]),
			FeelsLike: common.RoundInt(h.ApparentTemperature[i]),
			WindSpeed: common.RoundInt(h.WindSpeed10m[i]),
			Precip:    common.RoundTo(h.Precipitation[i], 2),
		})
	}
	return out
}

func shortest(lengths ...int) int {
	n := lengths[0]
	for _, l := range lengths[1:] {
		n = min(n, l)
	}
	return n
}
