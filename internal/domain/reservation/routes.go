package reservation

import (
	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns public reservation routes
func (h *Handler) PublicRoutes() chi.Router {
	r := chi.NewRouter()

	// No auth: the booking form and confirmation view are public
	r.Post("/", h.Submit)
	r.Get("/confirmation", h.Confirmation)

	return r
}
