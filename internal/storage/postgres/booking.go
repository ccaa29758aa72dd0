package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/google/uuid"
)

// CreateBooking admits one booking against the ticket type's capacity.
//
// The check-then-insert sequence runs under a row-level lock on the
// ticket type (SELECT ... FOR UPDATE), so concurrent attempts against
// the same type are serialised while attempts against other types
// proceed unhindered. Counting confirmed rows inside the lock, instead
// of under a separate read, is what closes the classic race where two
// transactions both observe the last seat free.
//
// Every non-success path rolls the transaction back; no partial booking
// is ever visible. Aborts caused by deadlock or lock-wait timeout
// surface as storage.ErrTransient and are safe to retry from scratch.
func (s *Storage) CreateBooking(ticketTypeID, userID string) (*models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	// A request for an unknown ticket type must not cost a write
	// transaction; probe with a plain read first. The id is re-checked
	// under the lock below, which covers a concurrent delete.
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM ticket_types WHERE id = $1)`,
		ticketTypeID,
	).Scan(&exists)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, storage.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("%s: check ticket type: %w", op, err)
	}
	if !exists {
		return nil, storage.ErrTicketTypeNotFound
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	// Bound the wait for the row lock so a stuck competitor turns into
	// a retryable error instead of an indefinite hang.
	if _, err = tx.Exec(`SET LOCAL lock_timeout = '5s'`); err != nil {
		return nil, fmt.Errorf("%s: set lock timeout: %w", op, err)
	}

	var quantity int
	err = tx.QueryRow(
		`SELECT quantity FROM ticket_types WHERE id = $1 FOR UPDATE`,
		ticketTypeID,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketTypeNotFound
		}
		if isTransient(err) {
			return nil, fmt.Errorf("%s: lock ticket type: %w", op, storage.ErrTransient)
		}
		return nil, fmt.Errorf("%s: lock ticket type: %w", op, err)
	}

	var confirmed int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM bookings WHERE ticket_type_id = $1 AND status = $2`,
		ticketTypeID, models.BookingConfirmed,
	).Scan(&confirmed)
	if err != nil {
		return nil, fmt.Errorf("%s: count confirmed bookings: %w", op, err)
	}

	if confirmed >= quantity {
		return nil, storage.ErrSoldOut
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		UserID:       userID,
		TicketTypeID: ticketTypeID,
		Status:       models.BookingConfirmed,
	}

	err = tx.QueryRow(
		`INSERT INTO bookings (id, user_id, ticket_type_id, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING booking_date`,
		booking.ID, booking.UserID, booking.TicketTypeID, booking.Status,
	).Scan(&booking.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%s: insert booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		if isTransient(err) {
			return nil, fmt.Errorf("%s: commit: %w", op, storage.ErrTransient)
		}
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return booking, nil
}

// MyBookings returns the user's bookings with ticket type and event
// attached, newest first. Plain read, no locking.
func (s *Storage) MyBookings(userID string) ([]models.Booking, error) {
	const op = "storage.postgres.MyBookings"

	query := `
		SELECT b.id, b.user_id, b.ticket_type_id, b.status, b.booking_date,
		       tt.id, tt.name, tt.price, tt.quantity, tt.event_id,
		       e.id, e.title, e.description, e.date, e.location, e.category,
		       COALESCE(e.banner_image, ''), e.organizer_id, e.created_at, e.updated_at
		FROM bookings b
		JOIN ticket_types tt ON tt.id = b.ticket_type_id
		JOIN events e ON e.id = tt.event_id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var tt models.TicketType
		var e models.Event

		err = rows.Scan(
			&b.ID, &b.UserID, &b.TicketTypeID, &b.Status, &b.BookingDate,
			&tt.ID, &tt.Name, &tt.Price, &tt.Quantity, &tt.EventID,
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Category,
			&e.BannerImage, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan booking: %w", op, err)
		}

		tt.Event = &e
		b.TicketType = &tt
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}
