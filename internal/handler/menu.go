package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/little-lemon/internal/domain"
	"github.com/msomdec/little-lemon/internal/service"
	"github.com/starfederation/datastar-go/datastar"
)

// MenuHandler serves the cached menu and its filtered view.
type MenuHandler struct {
	catalog *service.MenuCatalog
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(catalog *service.MenuCatalog) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// warm makes sure the catalog is loaded, answering 500 when it cannot be.
func (h *MenuHandler) warm(w http.ResponseWriter, r *http.Request) bool {
	if err := h.catalog.EnsureWarm(r.Context()); err != nil {
		writeServiceError(w, r, "warm menu catalog", err)
		return false
	}
	return true
}

func (h *MenuHandler) menuResponse(items []domain.MenuItem, withFilter bool) MenuResponse {
	resp := MenuResponse{Items: toMenuItemDTOs(items)}
	if withFilter {
		f := toFilterDTO(h.catalog.Criteria())
		resp.Filter = &f
	}
	if err := h.catalog.LastFetchError(); err != nil {
		resp.FetchError = "menu could not be loaded from the server"
	}
	return resp
}

// HandleList returns every cached menu item.
func (h *MenuHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !h.warm(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.menuResponse(h.catalog.Items(), false))
}

// HandleCategories lists the categories present in the menu, falling back to
// the default chips while the menu is empty.
func (h *MenuHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if !h.warm(w, r) {
		return
	}
	categories := h.catalog.Categories()
	if len(categories) == 0 {
		categories = domain.DefaultCategories
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// HandleSetFilter replaces the criteria and returns the recomputed list.
func (h *MenuHandler) HandleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterDTO
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter")
		return
	}
	if !h.warm(w, r) {
		return
	}

	h.catalog.SetFilter(req.toCriteria())
	items := h.catalog.RecomputeFiltered()
	writeJSON(w, http.StatusOK, h.menuResponse(items, true))
}

// HandleToggleCategory flips one category chip and returns the recomputed list.
func (h *MenuHandler) HandleToggleCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := readJSON(w, r, &req); err != nil || req.Category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	if !h.warm(w, r) {
		return
	}

	h.catalog.ToggleCategory(req.Category)
	items := h.catalog.RecomputeFiltered()
	writeJSON(w, http.StatusOK, h.menuResponse(items, true))
}

// HandleFiltered returns the result of the last recompute without redoing it.
func (h *MenuHandler) HandleFiltered(w http.ResponseWriter, r *http.Request) {
	if !h.warm(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.menuResponse(h.catalog.Filtered(), true))
}

// liveSignals are the Datastar signals the home screen keeps in sync.
type liveSignals struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
}

// HandleLive reads the search and category signals, recomputes the filtered
// menu and patches the items signal back over SSE.
func (h *MenuHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	var signals liveSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		writeError(w, http.StatusBadRequest, "invalid signals")
		return
	}
	if !h.warm(w, r) {
		return
	}

	h.catalog.SetFilter(domain.FilterCriteria{Search: signals.Search, Categories: signals.Categories})
	items := h.catalog.RecomputeFiltered()

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(map[string]any{
		"items": toMenuItemDTOs(items),
		"count": len(items),
	}); err != nil {
		slog.Error("patch menu signals", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}
