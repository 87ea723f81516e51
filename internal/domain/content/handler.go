package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/cliniqueduparc/clinique-api/internal/pkg/response"
)

// CareService represents an entry in the clinic's care catalog
type CareService struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Icon        string `db:"icon" json:"icon"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
}

// Doctor represents a practitioner profile
type Doctor struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
	Bio       string `db:"bio" json:"bio"`
	PhotoURL  string `db:"photo_url" json:"photo_url"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// GalleryImage represents an image shown on the gallery page
type GalleryImage struct {
	ID       string `db:"id" json:"id"`
	Category string `db:"category" json:"category"`
	Caption  string `db:"caption" json:"caption"`
	URL      string `db:"url" json:"url"`
}

// Testimonial represents a published patient testimonial
type Testimonial struct {
	ID      string `db:"id" json:"id"`
	Author  string `db:"author" json:"author"`
	Rating  int    `db:"rating" json:"rating"`
	Quote   string `db:"quote" json:"quote"`
	Context string `db:"context" json:"context"`
}

// Handler serves the read-only content backing the site's presentational
// sections. No writes; editing happens out of band.
type Handler struct {
	db *sqlx.DB
}

// NewHandler creates content handler
func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{db: db}
}

// ListServices handles GET /content/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	var items []CareService
	err := h.db.SelectContext(r.Context(), &items, `
		SELECT id, name, description, icon, sort_order
		FROM care_services
		WHERE is_active = true
		ORDER BY sort_order
	`)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// ListDoctors handles GET /content/doctors
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	var items []Doctor
	err := h.db.SelectContext(r.Context(), &items, `
		SELECT id, name, specialty, bio, photo_url, sort_order
		FROM doctors
		WHERE is_active = true
		ORDER BY sort_order
	`)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// ListGallery handles GET /content/gallery
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var items []GalleryImage
	var err error

	if category != "" {
		err = h.db.SelectContext(r.Context(), &items, `
			SELECT id, category, caption, url
			FROM gallery_images
			WHERE is_active = true AND category = $1
			ORDER BY sort_order
		`, category)
	} else {
		err = h.db.SelectContext(r.Context(), &items, `
			SELECT id, category, caption, url
			FROM gallery_images
			WHERE is_active = true
			ORDER BY sort_order
		`)
	}

	if err != nil {
		response.InternalError(w)
		return
	}

	// Group by category for the gallery tabs
	grouped := make(map[string][]GalleryImage)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	response.OK(w, map[string]interface{}{
		"items":   items,
		"grouped": grouped,
		"total":   len(items),
	})
}

// ListTestimonials handles GET /content/testimonials
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	var items []Testimonial
	err := h.db.SelectContext(r.Context(), &items, `
		SELECT id, author, rating, quote, context
		FROM testimonials
		WHERE is_published = true
		ORDER BY created_at DESC
	`)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// GetClinicInfo handles GET /content/clinic
func (h *Handler) GetClinicInfo(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"name":    "Clinique Dentaire du Parc",
		"address": "123 Avenue de la Santé, 75014 Paris, France",
		"phone":   "01 42 68 12 34",
		"email":   "contact@centredentaire.fr",
		"hours": map[string]string{
			"monday_friday": "9h00 — 19h00",
			"saturday":      "9h00 — 13h00",
			"sunday":        "Fermé",
		},
	})
}

// Routes returns content routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/services", h.ListServices)
	r.Get("/doctors", h.ListDoctors)
	r.Get("/gallery", h.ListGallery)
	r.Get("/testimonials", h.ListTestimonials)
	r.Get("/clinic", h.GetClinicInfo)

	return r
}
