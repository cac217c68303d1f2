package handlers

import (
	"log/slog"
	"net/http"

	"github.com/amateur-sports/league-system/store"
)

// AdminHandler holds the dangerous bits: operations that act on the store
// itself rather than one entity collection.
type AdminHandler struct {
	store  store.Store
	logger *slog.Logger
}

func NewAdminHandler(s store.Store, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{store: s, logger: logger}
}

// ResetStore wipes every collection, including the admin login flag. The
// caller's token stays valid until it expires.
func (h *AdminHandler) ResetStore(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.logger.Warn("store reset: all collections cleared")
	w.WriteHeader(http.StatusNoContent)
}
