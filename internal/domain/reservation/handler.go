package reservation

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/cliniqueduparc/clinique-api/internal/pkg/errorhandler"
	"github.com/cliniqueduparc/clinique-api/internal/pkg/response"
)

// Handler handles reservation HTTP requests
type Handler struct {
	svc     *Service
	homeURL string
}

// NewHandler creates reservation handler. homeURL is the redirect target for
// confirmation requests carrying no identifier.
func NewHandler(svc *Service, homeURL string) *Handler {
	return &Handler{svc: svc, homeURL: homeURL}
}

// Submit handles POST /reservations (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	res, fieldErrors, err := h.svc.Submit(r.Context(), &req)
	if fieldErrors != nil {
		errorhandler.LogValidationError(r.Context(), fieldErrors)
		response.ValidationError(w, fieldErrors)
		return
	}
	if err != nil {
		errorhandler.LogDatabaseError(r.Context(), "reservation_insert", err)
		response.ServiceUnavailable(w, MsgSubmitFailed)
		return
	}

	response.Created(w, &SubmittedResponse{
		Reservation:     ToResponse(res),
		ConfirmationURL: "/reservations/confirmation?id=" + res.ID.String(),
		Message:         MsgSubmitted,
	})
}

// Confirmation handles GET /reservations/confirmation?id= (public).
// Without a usable identifier there is no confirmation: silent redirect home.
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		http.Redirect(w, r, h.homeURL, http.StatusSeeOther)
		return
	}

	id, err := uuid.Parse(idParam)
	if err != nil {
		http.Redirect(w, r, h.homeURL, http.StatusSeeOther)
		return
	}

	response.OK(w, h.svc.ResolveConfirmation(r.Context(), id))
}
