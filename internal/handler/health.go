package handler

import (
	"net/http"

	"github.com/msomdec/little-lemon/internal/service"
)

// HandleHealthz reports liveness together with whether the menu catalog has
// finished warming up. It never triggers a warm-up itself.
func HandleHealthz(catalog *service.MenuCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"menuWarm": catalog.IsWarm(),
		})
	}
}
