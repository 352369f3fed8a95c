// internal/app/features/announcements/routes.go
package announcements

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all announcement routes on the given router.
// The active list is public; every other route requires a known teacher
// username.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.ListActive)
	r.Get("/all", h.ListAll)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
