package weather

import "errors"

var (
	// ErrNetwork is returned when the forecast request cannot be completed.
	ErrNetwork = errors.New("forecast request failed")
	// ErrParse is returned when the forecast body is not the expected JSON.
	ErrParse = errors.New("forecast response malformed")
	// ErrUnknownIcon is returned for weather codes missing from the icon table.
	ErrUnknownIcon = errors.New("no icon for weather code")
)
