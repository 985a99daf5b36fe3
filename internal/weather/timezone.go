package weather

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimeZoneResolver returns an IANA zone name.
type TimeZoneResolver func() string

var (
	tzFile        = "/etc/timezone"
	localtimeLink = "/etc/localtime"
)

// ResolveLocalTimeZone returns the host's IANA zone name, falling back to UTC.
func ResolveLocalTimeZone() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); validZone(tz) {
		return tz
	}
	if b, err := os.ReadFile(tzFile); err == nil {
		if tz := strings.TrimSpace(string(b)); validZone(tz) {
			return tz
		}
	}
	if target, err := filepath.EvalSymlinks(localtimeLink); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			if tz := target[i+len("zoneinfo/"):]; validZone(tz) {
				return tz
			}
		}
	}
	return "UTC"
}

func validZone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// LoadLocation is time.LoadLocation with a UTC fallback.
func LoadLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}
