package handler

import (
	"log/slog"
	"net/http"

	"github.com/bookrack/bookrack-go/internal/view"
)

func renderPage(w http.ResponseWriter, renderer *view.Renderer, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, data); err != nil {
		slog.Error("rendering page", "template", name, "error", err)
	}
}

func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
