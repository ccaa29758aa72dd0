package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventdesk/internal/config"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.init(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'ATTENDEE',
			is_approved BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			banner_image TEXT,
			organizer_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ticket_types (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE
		)`,
		// No unique constraint on (user_id, ticket_type_id): the same
		// user may book the same ticket type more than once.
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			ticket_type_id UUID NOT NULL REFERENCES ticket_types(id) ON DELETE CASCADE,
			status TEXT NOT NULL DEFAULT 'CONFIRMED',
			booking_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS bookings_ticket_type_idx ON bookings(ticket_type_id)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id),
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// isTransient reports deadlocks, serialization failures and lock-wait
// timeouts: the transaction aborted cleanly and the caller may retry.
func isTransient(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}

	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// isInvalidUUID covers ids that cannot even be parsed as uuid; for
// lookups those behave like a missing row.
func isInvalidUUID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}
