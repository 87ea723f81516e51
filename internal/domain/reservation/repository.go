package reservation

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository is a pure persistence sink for validated reservations. The
// identifier and submission metadata are attached by the caller before the
// call; no further validation happens here. The confirmation view never
// re-fetches, so no read methods exist.
type Repository interface {
	Insert(ctx context.Context, res *Reservation) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates reservation repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, res *Reservation) error {
	query := `
		INSERT INTO reservations (
			id, name, email, phone, date, time,
			guests, occasion, special_requests, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.Name, res.Email, res.Phone, res.Date, res.Time,
		res.Guests, res.Occasion, res.SpecialRequests, res.Status,
		res.CreatedAt, res.UpdatedAt,
	)
	return err
}
