// Package web serves the embedded static pages.
package web

import (
	"embed"
	"net/http"
)

//go:embed pages/*.html
var pages embed.FS

// PageHandler serves the named embedded page.
func PageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := pages.ReadFile("pages/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	}
}
