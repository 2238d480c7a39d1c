package handler

import (
	"net/http"

	"github.com/msomdec/little-lemon/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, catalog *service.MenuCatalog, profiles *service.ProfileService) {
	menu := NewMenuHandler(catalog)
	profile := NewProfileHandler(profiles)

	mux.HandleFunc("GET /healthz", HandleHealthz(catalog))

	mux.HandleFunc("GET /api/menu", menu.HandleList)
	mux.HandleFunc("GET /api/menu/categories", menu.HandleCategories)
	mux.HandleFunc("GET /api/menu/filtered", menu.HandleFiltered)
	mux.HandleFunc("PUT /api/menu/filter", menu.HandleSetFilter)
	mux.HandleFunc("POST /api/menu/filter/toggle", menu.HandleToggleCategory)
	mux.HandleFunc("POST /api/menu/live", menu.HandleLive)

	mux.HandleFunc("POST /api/register", profile.HandleRegister)
	mux.HandleFunc("GET /api/profile", profile.HandleProfile)
	mux.HandleFunc("POST /api/logout", profile.HandleLogout)
	mux.HandleFunc("GET /api/start", profile.HandleStart)
}
