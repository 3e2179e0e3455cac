package system

import "github.com/go-chi/chi/v5"

// Register adds the system routes directly on r, since they live at the root.
func Register(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Get("/healthz", h.Healthz)
	r.Get("/items/{item_id}", h.ReadItem)
}
