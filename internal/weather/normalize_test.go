package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRaw() RawForecast {
	return RawForecast{
		TimeZone: "Europe/Berlin",
		CurrentWeather: &RawCurrent{
			Temperature: 21.4,
			WeatherCode: 3,
			WindSpeed:   12,
			Time:        1700003600,
		},
		Daily: &RawDailySeries{
			Time:                   []int64{1699999200, 1700085600, 1700172000},
			WeatherCode:            []int{3, 61, 0},
			Temperature2mMax:       []float64{25.6, 19.2, -0.6},
			Temperature2mMin:       []float64{14.1, 11.0, -5.3},
			ApparentTemperatureMax: []float64{26.0, 18.4, -2.1},
			ApparentTemperatureMin: []float64{13.2, 9.8, -8.7},
			PrecipitationSum:       []float64{0.02, 0.4, 0},
		},
		Hourly: &RawHourlySeries{
			Time:                []int64{1700000000, 1700003600, 1700007200, 1700010800},
			WeatherCode:         []int{0, 2, 3, 45},
			Temperature2m:       []float64{20.1, 21.4, 22.6, 23.5},
			ApparentTemperature: []float64{19.5, 20.8, 22.0, 22.49},
			WindSpeed10m:        []float64{10.2, 12.0, 13.5, 14.5},
			Precipitation:       []float64{0.5, 0.01, 0.126, 0.004},
		},
	}
}

func TestNormalizeCurrentSample(t *testing.T) {
	v := NormalizeCurrent(sampleRaw())

	assert.Equal(t, "21", v.CurrentTemp)
	require.NotNil(t, v.HighTemp)
	assert.Equal(t, 25.6, *v.HighTemp)
	assert.Equal(t, 14.1, *v.LowTemp)
	assert.Equal(t, 26.0, *v.HighFeelsLike)
	assert.Equal(t, 13.2, *v.LowFeelsLike)
	assert.Equal(t, 0.02, *v.Precip)
	assert.Equal(t, 12.0, v.WindSpeed)
	assert.Equal(t, 3, v.IconCode)
}

func TestNormalizeCurrentPadsTemperature(t *testing.T) {
	cases := map[float64]string{
		0:     "00",
		4.6:   "05",
		-3.2:  "-03",
		9.49:  "09",
		35.5:  "36",
		104.2: "104",
	}
	for temp, want := range cases {
		raw := sampleRaw()
		raw.CurrentWeather.Temperature = temp
		got := NormalizeCurrent(raw).CurrentTemp
		assert.Equal(t, want, got, "temperature %v", temp)
		assert.GreaterOrEqual(t, len(got), 2)
	}
}

func TestNormalizeCurrentWithoutDaily(t *testing.T) {
	raw := sampleRaw()
	raw.Daily = &RawDailySeries{}

	v := NormalizeCurrent(raw)
	assert.Equal(t, "21", v.CurrentTemp)
	assert.Nil(t, v.HighTemp)
	assert.Nil(t, v.Precip)

	fields := v.Fields()
	require.Len(t, fields, 7)
	assert.Equal(t, Field{Slot: "curr-high", Text: Placeholder, Kind: KindNone}, fields[1])
	assert.Equal(t, Field{Slot: "curr-prcp", Text: Placeholder, Kind: KindNone}, fields[6])
	assert.Equal(t, KindWindSpeed, fields[3].Kind)
}

func TestCurrentViewFields(t *testing.T) {
	fields := NormalizeCurrent(sampleRaw()).Fields()

	slots := make([]string, 0, len(fields))
	for _, f := range fields {
		slots = append(slots, f.Slot)
	}
	assert.Equal(t, []string{"curr-temp", "curr-high", "curr-high-fl", "curr-wind", "curr-low", "curr-low-fl", "curr-prcp"}, slots)

	assert.Equal(t, Field{Slot: "curr-high", Text: "25.6", Kind: KindTemperature}, fields[1])
	assert.Equal(t, Field{Slot: "curr-wind", Text: "12", Kind: KindWindSpeed}, fields[3])
	assert.Equal(t, Field{Slot: "curr-prcp", Text: "0.02", Kind: KindPrecipitation}, fields[6])
}

func TestNormalizeDaily(t *testing.T) {
	raw := sampleRaw()
	days := NormalizeDaily(raw)

	require.Len(t, days, len(raw.Daily.Time))
	for i, d := range days {
		assert.Equal(t, raw.Daily.Time[i]*1000, d.Timestamp)
		assert.Equal(t, raw.Daily.WeatherCode[i], d.IconCode)
	}
	assert.Equal(t, 26, days[0].MaxTemp)
	assert.Equal(t, 19, days[1].MaxTemp)
	assert.Equal(t, -1, days[2].MaxTemp)
}

func TestNormalizeDailyEmpty(t *testing.T) {
	raw := sampleRaw()
	raw.Daily = &RawDailySeries{}

	days := NormalizeDaily(raw)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestNormalizeHourlyFiltersPastHours(t *testing.T) {
	raw := sampleRaw()
	hours := NormalizeHourly(raw)

	require.Len(t, hours, 3)
	var prev int64
	for _, h := range hours {
		assert.GreaterOrEqual(t, h.Timestamp/1000, raw.CurrentWeather.Time)
		assert.Greater(t, h.Timestamp, prev)
		prev = h.Timestamp
	}
}

func TestNormalizeHourlyKeepsSlotsAligned(t *testing.T) {
	hours := NormalizeHourly(sampleRaw())
	require.Len(t, hours, 3)

	// The first hour (index 0) is dropped; the rest must come from indexes 1..3.
	assert.Equal(t, HourlyView{Timestamp: 1700003600000, IconCode: 2, Temp: 21, FeelsLike: 21, WindSpeed: 12, Precip: 0.01}, hours[0])
	assert.Equal(t, HourlyView{Timestamp: 1700007200000, IconCode: 3, Temp: 23, FeelsLike: 22, WindSpeed: 14, Precip: 0.13}, hours[1])
	assert.Equal(t, HourlyView{Timestamp: 1700010800000, IconCode: 45, Temp: 24, FeelsLike: 22, WindSpeed: 15, Precip: 0}, hours[2])
}

func TestNormalizeHourlyAllPast(t *testing.T) {
	raw := sampleRaw()
	raw.CurrentWeather.Time = 1800000000

	assert.Empty(t, NormalizeHourly(raw))
}

func TestNormalize(t *testing.T) {
	current, daily, hourly := Normalize(sampleRaw())
	assert.Equal(t, "21", current.CurrentTemp)
	assert.Len(t, daily, 3)
	assert.Len(t, hourly, 3)
}

func TestNormalizeMismatchedSeries(t *testing.T) {
	raw := sampleRaw()
	raw.Daily.Temperature2mMax = raw.Daily.Temperature2mMax[:1]
	raw.Hourly.Precipitation = raw.Hourly.Precipitation[:2]
	require.ErrorIs(t, raw.Validate(), ErrParse)

	var days []DailyView
	var hours []HourlyView
	require.NotPanics(t, func() {
		days = NormalizeDaily(raw)
		hours = NormalizeHourly(raw)
	})
	assert.Len(t, days, 1)
	assert.Len(t, hours, 1)
}

func TestValidate(t *testing.T) {
	require.NoError(t, sampleRaw().Validate())

	raw := sampleRaw()
	raw.CurrentWeather = nil
	assert.ErrorIs(t, raw.Validate(), ErrParse)

	raw = sampleRaw()
	raw.Hourly = nil
	assert.ErrorIs(t, raw.Validate(), ErrParse)

	raw = sampleRaw()
	raw.Daily.Temperature2mMax = raw.Daily.Temperature2mMax[:1]
	err := raw.Validate()
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "temperature_2m_max")

	raw = sampleRaw()
	raw.Hourly.Precipitation = append(raw.Hourly.Precipitation, 1)
	assert.ErrorIs(t, raw.Validate(), ErrParse)
}

func TestKindUnit(t *testing.T) {
	assert.Equal(t, "°C", KindTemperature.Unit())
	assert.Equal(t, "km/h", KindWindSpeed.Unit())
	assert.Equal(t, "inch", KindPrecipitation.Unit())
	assert.Equal(t, "", KindNone.Unit())
}
