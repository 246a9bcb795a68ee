package web

import (
	_ "embed"
	"net/http"

	"github.com/ziadkadry99/portfoliai/internal/preview"
)

//go:embed index.html
var indexHTML []byte

// ServeIndex serves the embedded editor page.
func (h *Web) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// ServeStylesheet serves the CSS of the preview fragment.
func (h *Web) ServeStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(preview.Stylesheet()))
}
