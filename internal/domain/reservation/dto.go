package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cliniqueduparc/clinique-api/internal/pkg/validator"
)

// CreateReservationRequest for submitting an appointment request
type CreateReservationRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required,timeslot"`
	Service  string `json:"service" validate:"required,consultation"`
	Requests string `json:"requests,omitempty" validate:"omitempty,max=1000"`
}

// normalize strips surrounding whitespace before schema checks
func (r *CreateReservationRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Service = strings.TrimSpace(r.Service)
	r.Requests = strings.TrimSpace(r.Requests)
}

// validateRequest runs the shape schema and rewrites generic messages into
// the booking form wording. Length-overflow messages keep their limits.
func validateRequest(req *CreateReservationRequest) map[string]string {
	errs := validator.Validate(req)
	if errs == nil {
		return nil
	}

	for field, msg := range errs {
		if strings.HasPrefix(msg, "Valeur trop longue") {
			continue
		}
		switch field {
		case "name":
			errs[field] = msgNameTooShort
		case "phone":
			errs[field] = msgInvalidPhone
		case "date":
			errs[field] = msgDateRequired
		case "time":
			if msg == "Ce champ est requis" {
				errs[field] = msgTimeRequired
			}
		case "service":
			if msg == "Ce champ est requis" {
				errs[field] = msgServiceRequire
			}
		}
	}

	return errs
}

// ReservationResponse for API responses
type ReservationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(res *Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:        res.ID.String(),
		Name:      res.Name,
		Email:     res.Email,
		Phone:     res.Phone,
		Date:      res.Date,
		Time:      res.Time,
		Guests:    res.Guests,
		Occasion:  res.Occasion,
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
	if res.SpecialRequests.Valid {
		resp.SpecialRequests = res.SpecialRequests.String
	}
	return resp
}

// SubmittedResponse for a successful public submission
type SubmittedResponse struct {
	Reservation     *ReservationResponse `json:"reservation"`
	ConfirmationURL string               `json:"confirmation_url"`
	Message         string               `json:"message"`
}

// ConfirmationResponse is the read projection rendered by the confirmation
// view. Degraded marks the reduced branch built from the identifier alone.
type ConfirmationResponse struct {
	ConfirmationNumber string `json:"confirmation_number"`
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email,omitempty"`
	Date               string `json:"date,omitempty"`
	DateDisplay        string `json:"date_display,omitempty"`
	Time               string `json:"time,omitempty"` // display form, "09h00"
	Occasion           string `json:"occasion,omitempty"`
	SpecialRequests    string `json:"special_requests,omitempty"`
	Status             string `json:"status"`
	Degraded           bool   `json:"degraded"`
	CreatedAt          string `json:"created_at"`
}

// ConfirmationNumber derives the human-facing confirmation code from the
// reservation identifier. Cosmetic only, not a second identifier.
func ConfirmationNumber(id uuid.UUID) string {
	return "CDP-" + strings.ToUpper(id.String()[:8])
}

// ToConfirmationResponse projects a reservation for the confirmation view
func ToConfirmationResponse(res *Reservation, degraded bool) *ConfirmationResponse {
	resp := &ConfirmationResponse{
		ConfirmationNumber: ConfirmationNumber(res.ID),
		ID:                 res.ID.String(),
		Name:               res.Name,
		Email:              res.Email,
		Status:             string(res.Status),
		Degraded:           degraded,
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
	}
	if res.Date != "" {
		resp.Date = res.Date
		resp.DateDisplay = FormatDateFR(res.Date)
	}
	if res.Time != "" {
		resp.Time = DisplayTime(res.Time)
	}
	resp.Occasion = res.Occasion
	if res.SpecialRequests.Valid {
		resp.SpecialRequests = res.SpecialRequests.String
	}
	return resp
}
