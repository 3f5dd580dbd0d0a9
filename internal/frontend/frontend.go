package frontend

import (
	"embed"
	"net/http"
)

//go:embed index.html
var content embed.FS

// Handler serves the embedded single-page UI.
func Handler() http.Handler {
	return http.FileServer(http.FS(content))
}
