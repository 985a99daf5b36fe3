// Package web holds the dashboard page template and its icon assets.
package web

import "embed"

//go:embed index.html img/*.svg
var FS embed.FS

// Dashboard returns the raw dashboard template.
func Dashboard() []byte {
	b, err := FS.ReadFile("index.html")
	if err != nil {
		panic("web: dashboard template missing from embed: " + err.Error())
	}
	return b
}
