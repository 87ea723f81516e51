package reservation

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Mailer queues the confirmation email after a stored submission.
// Fire-and-forget: delivery failures never surface to the patient.
type Mailer interface {
	QueueReservationReceived(res *Reservation, confirmationNumber string)
}

// Service orchestrates the booking flow: schema validation, the
// date-freshness rule, persistence and confirmation resolution.
type Service struct {
	repo     Repository
	payloads PayloadStore
	notifier Notifier
	mailer   Mailer

	now func() time.Time
}

// NewService creates reservation service. mailer may be nil when email is
// not configured.
func NewService(repo Repository, payloads PayloadStore, notifier Notifier, mailer Mailer) *Service {
	return &Service{
		repo:     repo,
		payloads: payloads,
		notifier: notifier,
		mailer:   mailer,
		now:      time.Now,
	}
}

// Submit validates and persists an appointment request. Field errors are
// returned as a field-keyed map and abort the flow before any repository
// call. A storage failure is returned as err with nothing staged; the caller
// keeps its form state and may retry, which generates a fresh identifier.
func (s *Service) Submit(ctx context.Context, req *CreateReservationRequest) (*Reservation, map[string]string, error) {
	req.normalize()

	if errs := validateRequest(req); errs != nil {
		s.notifier.Notify(ctx, SeverityError, "Veuillez corriger les erreurs du formulaire")
		return nil, errs, nil
	}

	// Business rule, separate from the shape schema: today or later,
	// compared at local midnight.
	if err := CheckDateFreshness(req.Date, s.now()); err != nil {
		msg := msgInvalidDate
		if err == ErrPastDate {
			msg = msgPastDate
		}
		s.notifier.Notify(ctx, SeverityError, msg)
		return nil, map[string]string{"date": msg}, nil
	}

	// One identifier per submission attempt. Generated before the insert so
	// the caller can navigate with it; retries get a new one.
	now := s.now()
	res := &Reservation{
		ID:              uuid.New(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            NormalizeTime(req.Time),
		Guests:          1,
		Occasion:        req.Service,
		SpecialRequests: sql.NullString{String: req.Requests, Valid: req.Requests != ""},
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, res); err != nil {
		s.notifier.Notify(ctx, SeverityError, MsgSubmitFailed)
		return nil, nil, err
	}

	// Stage the one-shot confirmation payload. Best effort: losing it only
	// degrades the confirmation view.
	if err := s.payloads.Stage(ctx, res); err != nil {
		log.Warn().Err(err).Str("reservation_id", res.ID.String()).Msg("Failed to stage confirmation payload")
	}

	if s.mailer != nil {
		s.mailer.QueueReservationReceived(res, ConfirmationNumber(res.ID))
	}

	s.notifier.Notify(ctx, SeveritySuccess, MsgSubmitted)
	return res, nil, nil
}

// ResolveConfirmation builds the confirmation display data for an
// identifier. The staged payload, when present, yields the full projection;
// otherwise (direct load, refresh, shared link) a degraded projection is
// built from the identifier alone. Never fails.
func (s *Service) ResolveConfirmation(ctx context.Context, id uuid.UUID) *ConfirmationResponse {
	payload, err := s.payloads.Take(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("reservation_id", id.String()).Msg("Failed to read confirmation payload")
		payload = nil
	}

	if payload != nil && payload.ID == id {
		return ToConfirmationResponse(payload, false)
	}

	degraded := &Reservation{
		ID:        id,
		Name:      "Votre rendez-vous",
		Status:    StatusPending,
		CreatedAt: s.now(),
	}
	return ToConfirmationResponse(degraded, true)
}
