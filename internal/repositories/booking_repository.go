package repositories

import (
	"database/sql"
	"errors"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain/models"
)

const bookingColumns = `id, user_id, van_id, status, pickup_location, dropoff_location,
		scheduled_time, van_size, time_slot, distance, duration_minutes, toll, fare`

// BookingRepository persists bookings. Each operation runs inside a single
// transaction scoped to the request; there is no cross-request locking.
type BookingRepository struct {
	DB *sql.DB
}

type bookingRow interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingRow) (models.Booking, error) {
	var (
		b        models.Booking
		status   string
		distance sql.NullString
		duration sql.NullInt64
		toll     sql.NullFloat64
		fare     sql.NullFloat64
	)
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.VanID,
		&status,
		&b.PickupLocation,
		&b.DropoffLocation,
		&b.ScheduledTime,
		&b.VanSize,
		&b.TimeSlot,
		&distance,
		&duration,
		&toll,
		&fare,
	); err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	b.Distance = distance.String
	b.DurationMinutes = int(duration.Int64)
	b.Toll = toll.Float64
	if fare.Valid {
		f := fare.Float64
		b.Fare = &f
	}
	return b, nil
}

// Insert persists a new booking, fare included, and returns the stored row
// with its assigned id.
func (r BookingRepository) Insert(b models.Booking) (models.Booking, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO bookings
			(user_id, van_id, status, pickup_location, dropoff_location,
			 scheduled_time, van_size, time_slot, distance, duration_minutes, toll, fare)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.UserID,
		b.VanID,
		b.Status.String(),
		b.PickupLocation,
		b.DropoffLocation,
		b.ScheduledTime,
		b.VanSize,
		b.TimeSlot,
		nullIfEmpty(b.Distance),
		b.DurationMinutes,
		b.Toll,
		b.Fare,
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	stored, err := scanBooking(tx.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id))
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return stored, nil
}

// List returns every persisted booking ordered by id.
func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// GetByID fetches a single booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// UpdateStatus sets only the status column and returns the updated row.
// A missing id fails with NotFound before anything is written. Concurrent
// updates to the same row are last-write-wins.
func (r BookingRepository) UpdateStatus(id int64, status domain.BookingStatus) (models.Booking, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var existing int64
	if err := tx.QueryRow(`SELECT id FROM bookings WHERE id=? FOR UPDATE`, id).Scan(&existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if _, err := tx.Exec(`UPDATE bookings SET status=?, updated_at=NOW() WHERE id=?`, status.String(), id); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	updated, err := scanBooking(tx.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id))
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return updated, nil
}
