package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the referenced booking id has no row.
var ErrNotFound = errors.New("booking not found")

// NewBooking carries the normalized, validated fields of a submission.
// Status is not part of it: every created row starts out pending.
type NewBooking struct {
	Name        string
	Phone       string
	Service     string
	Date        string
	Time        string
	Note        string
	QuotedPrice decimal.Decimal
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `id, name, phone, service, date, time, note, status,
       suggested_date, suggested_time, confirmed_date, confirmed_time,
       quoted_price::text, created_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.Name, &b.Phone, &b.Service, &b.Date, &b.Time, &b.Note, &b.Status,
		&b.SuggestedDate, &b.SuggestedTime, &b.ConfirmedDate, &b.ConfirmedTime,
		&b.QuotedPrice, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, nb NewBooking) (int64, error) {
	const q = `
INSERT INTO bookings (name, phone, service, date, time, note, status, quoted_price)
VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7)
RETURNING id
`
	var id int64
	if err := r.db.QueryRow(ctx, q,
		nb.Name, nb.Phone, nb.Service, nb.Date, nb.Time, nb.Note,
		nb.QuotedPrice.StringFixed(2),
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`
	b, err := scanBooking(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *Repository) ListAll(ctx context.Context) ([]Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Phone, &b.Service, &b.Date, &b.Time, &b.Note, &b.Status,
			&b.SuggestedDate, &b.SuggestedTime, &b.ConfirmedDate, &b.ConfirmedTime,
			&b.QuotedPrice, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Accept marks the booking accepted. Omitted confirmation fields keep their
// stored values (COALESCE), so re-accepting with only a date does not clear a
// previously confirmed time.
func (r *Repository) Accept(ctx context.Context, id int64, confirmedDate, confirmedTime *string) (*Booking, error) {
	const q = `
UPDATE bookings
SET status = 'accepted',
    confirmed_date = COALESCE($2, confirmed_date),
    confirmed_time = COALESCE($3, confirmed_time)
WHERE id = $1
RETURNING ` + bookingColumns + `
`
	b, err := scanBooking(r.db.QueryRow(ctx, q, id, confirmedDate, confirmedTime))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

// Reject is symmetric to Accept, coalescing the suggested_* fields.
func (r *Repository) Reject(ctx context.Context, id int64, suggestedDate, suggestedTime *string) (*Booking, error) {
	const q = `
UPDATE bookings
SET status = 'rejected',
    suggested_date = COALESCE($2, suggested_date),
    suggested_time = COALESCE($3, suggested_time)
WHERE id = $1
RETURNING ` + bookingColumns + `
`
	b, err := scanBooking(r.db.QueryRow(ctx, q, id, suggestedDate, suggestedTime))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `
DELETE FROM bookings
WHERE id = $1
RETURNING id
`
	var deleted int64
	err := r.db.QueryRow(ctx, q, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
