package reservation

import "errors"

var (
	ErrInvalidDate = errors.New("reservation date is not a valid calendar date")
	ErrPastDate    = errors.New("reservation date is in the past")
)

// User-facing messages, kept identical to the booking form wording.
const (
	msgNameTooShort   = "Le nom doit contenir au moins 2 caractères"
	msgInvalidPhone   = "Numéro de téléphone invalide"
	msgDateRequired   = "Date requise"
	msgTimeRequired   = "Heure requise"
	msgServiceRequire = "Type de consultation requis"
	msgPastDate       = "La date doit être aujourd'hui ou dans le futur"
	msgInvalidDate    = "Date invalide"

	// MsgSubmitFailed is the generic retry-prompting message shown when the
	// persistence call fails.
	MsgSubmitFailed = "Une erreur est survenue. Veuillez réessayer."
	// MsgSubmitted is shown once the reservation is stored.
	MsgSubmitted = "Rendez-vous demandé avec succès!"
)
