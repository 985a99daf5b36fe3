package weather

import (
	"fmt"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// Kind tags a displayed value with the measurement it carries.
type Kind int

const (
	KindNone Kind = iota
	KindTemperature
	KindWindSpeed
	KindPrecipitation
)

// Unit returns the suffix rendered after a value of this kind.
func (k Kind) Unit() string {
	switch k {
	case KindTemperature:
		return "°C"
	case KindWindSpeed:
		return "km/h"
	case KindPrecipitation:
		return "inch"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindTemperature:
		return "temp"
	case KindWindSpeed:
		return "wind"
	case KindPrecipitation:
		return "inch"
	default:
		return "none"
	}
}

// Coordinates identifies the single location the dashboard shows.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.2f,%.2f", c.Lat, c.Lon)
}

// Field is one rendered slot of the current-conditions panel.
type Field struct {
	Slot string
	Text string
	Kind Kind
}

// CurrentView is the snapshot shown in the top panel.
// Today's extremes are nil when the daily series is empty.
type CurrentView struct {
	CurrentTemp   string   `json:"currentTemp"`
	HighTemp      *float64 `json:"highTemp"`
	LowTemp       *float64 `json:"lowTemp"`
	HighFeelsLike *float64 `json:"highFeelsLike"`
	LowFeelsLike  *float64 `json:"lowFeelsLike"`
	WindSpeed     float64  `json:"windSpeed"`
	Precip        *float64 `json:"precip"`
	IconCode      int      `json:"iconCode"`
}

// Fields lists the panel slots in render order.
func (v CurrentView) Fields() []Field {
	return []Field{
		{Slot: "curr-temp", Text: v.CurrentTemp, Kind: KindTemperature},
		optional("curr-high", v.HighTemp, KindTemperature),
		optional("curr-high-fl", v.HighFeelsLike, KindTemperature),
		{Slot: "curr-wind", Text: common.FormatFloat(v.WindSpeed), Kind: KindWindSpeed},
		optional("curr-low", v.LowTemp, KindTemperature),
		optional("curr-low-fl", v.LowFeelsLike, KindTemperature),
		optional("curr-prcp", v.Precip, KindPrecipitation),
	}
}

// Placeholder is shown for a value the forecast did not include.
const Placeholder = "--"

// optional renders a missing value as Placeholder with no unit.
func optional(slot string, v *float64, kind Kind) Field {
	if v == nil {
		return Field{Slot: slot, Text: Placeholder, Kind: KindNone}
	}
	return Field{Slot: slot, Text: common.FormatFloat(*v), Kind: kind}
}

// DailyView is one row of the day list.
type DailyView struct {
	Timestamp int64 `json:"timestamp"` // unix milliseconds
	IconCode  int   `json:"iconCode"`
	MaxTemp   int   `json:"maxTemp"`
}

// HourlyView is one row of the hour list.
type HourlyView struct {
	Timestamp int64   `json:"timestamp"` // unix milliseconds
	IconCode  int     `json:"iconCode"`
	Temp      int     `json:"temp"`
	FeelsLike int     `json:"feelsLike"`
	WindSpeed int     `json:"windSpeed"`
	Precip    float64 `json:"precip"`
}

// ForecastBundle is everything one render cycle needs.
type ForecastBundle struct {
	Location Coordinates  `json:"location"`
	TimeZone string       `json:"timezone"`
	Current  CurrentView  `json:"current"`
	Daily    []DailyView  `json:"daily"`
	Hourly   []HourlyView `json:"hourly"`
}
