package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/google/uuid"
)

// CreateEvent inserts an event together with its ticket types in one
// transaction, so a half-created event is never visible.
func (s *Storage) CreateEvent(event models.Event, ticketTypes []models.TicketType) (*models.Event, error) {
	const op = "storage.postgres.CreateEvent"

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	event.ID = uuid.New().String()

	err = tx.QueryRow(
		`INSERT INTO events (id, title, description, date, location, category, banner_image, organizer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		 RETURNING created_at, updated_at`,
		event.ID, event.Title, event.Description, event.Date,
		event.Location, event.Category, event.BannerImage, event.OrganizerID,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: insert event: %w", op, err)
	}

	for i := range ticketTypes {
		ticketTypes[i].ID = uuid.New().String()
		ticketTypes[i].EventID = event.ID

		_, err = tx.Exec(
			`INSERT INTO ticket_types (id, name, price, quantity, event_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			ticketTypes[i].ID, ticketTypes[i].Name, ticketTypes[i].Price,
			ticketTypes[i].Quantity, ticketTypes[i].EventID,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: insert ticket type: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	event.TicketTypes = ticketTypes

	return &event, nil
}

// GetAllEvents lists events with organizer and ticket types, ordered by
// date ascending. Filters are combined with AND.
func (s *Storage) GetAllEvents(filter storage.EventFilter) ([]models.Event, error) {
	const op = "storage.postgres.GetAllEvents"

	query := `
		SELECT e.id, e.title, e.description, e.date, e.location, e.category,
		       COALESCE(e.banner_image, ''), e.organizer_id, e.created_at, e.updated_at,
		       u.id, u.username, u.email, u.role, u.is_approved, u.created_at, u.updated_at
		FROM events e
		JOIN users u ON u.id = e.organizer_id`

	var conds []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("e.category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(e.title ILIKE $%d OR e.description ILIKE $%d)", len(args), len(args)))
	}
	if filter.OrganizerID != "" {
		args = append(args, filter.OrganizerID)
		conds = append(conds, fmt.Sprintf("e.organizer_id = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.date ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var org models.User

		err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Category,
			&e.BannerImage, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
			&org.ID, &org.Username, &org.Email, &org.Role, &org.IsApproved,
			&org.CreatedAt, &org.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan event: %w", op, err)
		}

		e.Organizer = &org
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range events {
		events[i].TicketTypes, err = s.ticketTypesByEvent(events[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return events, nil
}

// GetEvent returns one event with organizer, ticket types and reviews.
func (s *Storage) GetEvent(id string) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	var e models.Event
	var org models.User

	err := s.DB.QueryRow(
		`SELECT e.id, e.title, e.description, e.date, e.location, e.category,
		        COALESCE(e.banner_image, ''), e.organizer_id, e.created_at, e.updated_at,
		        u.id, u.username, u.email, u.role, u.is_approved, u.created_at, u.updated_at
		 FROM events e
		 JOIN users u ON u.id = e.organizer_id
		 WHERE e.id = $1`,
		id,
	).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Category,
		&e.BannerImage, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
		&org.ID, &org.Username, &org.Email, &org.Role, &org.IsApproved,
		&org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e.Organizer = &org

	if e.TicketTypes, err = s.ticketTypesByEvent(e.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if e.Reviews, err = s.ReviewsByEvent(e.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &e, nil
}

// UpdateEvent overwrites the mutable fields. Only the organizer who
// owns the event may update it.
func (s *Storage) UpdateEvent(id, userID string, upd models.Event) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	if err := s.checkOwner(id, userID); err != nil {
		return nil, err
	}

	_, err := s.DB.Exec(
		`UPDATE events
		 SET title = $1, description = $2, date = $3, location = $4,
		     category = $5, banner_image = NULLIF($6, ''), updated_at = NOW()
		 WHERE id = $7`,
		upd.Title, upd.Description, upd.Date, upd.Location,
		upd.Category, upd.BannerImage, id,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetEvent(id)
}

// DeleteEvent removes the event; ticket types and their bookings go
// with it (ON DELETE CASCADE). Owner only.
func (s *Storage) DeleteEvent(id, userID string) error {
	const op = "storage.postgres.DeleteEvent"

	if err := s.checkOwner(id, userID); err != nil {
		return err
	}

	if _, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) checkOwner(eventID, userID string) error {
	const op = "storage.postgres.checkOwner"

	var organizerID string
	err := s.DB.QueryRow(`SELECT organizer_id FROM events WHERE id = $1`, eventID).Scan(&organizerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if organizerID != userID {
		return storage.ErrNotOwner
	}

	return nil
}

func (s *Storage) ticketTypesByEvent(eventID string) ([]models.TicketType, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, price, quantity, event_id
		 FROM ticket_types
		 WHERE event_id = $1
		 ORDER BY price ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("ticket types by event: %w", err)
	}
	defer rows.Close()

	var types []models.TicketType
	for rows.Next() {
		var tt models.TicketType
		if err = rows.Scan(&tt.ID, &tt.Name, &tt.Price, &tt.Quantity, &tt.EventID); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		types = append(types, tt)
	}

	return types, rows.Err()
}
