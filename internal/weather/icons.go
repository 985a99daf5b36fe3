package weather

import (
	"fmt"
	"sort"
)

// iconNames maps WMO weather codes to icon asset names.
var iconNames = map[int]string{
	0: "sun",
	1: "sun",

	2: "cloud-sun",

	3: "cloud",

	45: "smog",
	48: "smog",

	51: "cloud-showers-heavy",
	53: "cloud-showers-heavy",
	55: "cloud-showers-heavy",
	56: "cloud-showers-heavy",
	57: "cloud-showers-heavy",
	61: "cloud-showers-heavy",
	63: "cloud-showers-heavy",
	65: "cloud-showers-heavy",
	66: "cloud-showers-heavy",
	67: "cloud-showers-heavy",
	80: "cloud-showers-heavy",
	81: "cloud-showers-heavy",
	82: "cloud-showers-heavy",

	71: "snow",
	73: "snow",
	75: "snow",
	77: "snow",
	85: "snow",
	86: "snow",

	95: "cloud-bold",
	96: "cloud-bold",
	99: "cloud-bold",
}

// IconName returns the icon name for a weather code.
func IconName(code int) (string, bool) {
	name, ok := iconNames[code]
	return name, ok
}

// IconNames returns every distinct icon name in the table, sorted.
func IconNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, n := range iconNames {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IconURL builds "<base>/<name>.svg" for a weather code.
func IconURL(base string, code int) (string, error) {
	name, ok := IconName(code)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownIcon, code)
	}
	return base + "/" + name + ".svg", nil
}
