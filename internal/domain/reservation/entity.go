package reservation

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the reservation lifecycle status. Transitions past pending are
// owned by the clinic back office.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Reservation represents a patient's appointment request
type Reservation struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Email           string         `db:"email" json:"email"`
	Phone           string         `db:"phone" json:"phone"`
	Date            string         `db:"date" json:"date"` // ISO calendar date, 2006-01-02
	Time            string         `db:"time" json:"time"` // HH:MM, 24-hour
	Guests          int            `db:"guests" json:"guests"`
	Occasion        string         `db:"occasion" json:"occasion"` // chosen consultation type
	SpecialRequests sql.NullString `db:"special_requests" json:"special_requests"`
	Status          Status         `db:"status" json:"status"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}
