package postgres

import (
	"os"
	"strconv"
	"testing"
	"time"

	"eventdesk/internal/config"
	"eventdesk/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestStorage connects to the database described by the TEST_DB_*
// environment variables and skips the test when it is unreachable, so
// the suite stays runnable on machines without Postgres.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	port := 5432
	if v := os.Getenv("TEST_DB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		require.NoError(t, err, "TEST_DB_PORT must be a number")
		port = p
	}

	cfg := &config.Database{
		Host:     envOr("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     envOr("TEST_DB_USER", "postgres"),
		Password: envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:   envOr("TEST_DB_NAME", "eventdesk_test"),
		SSLMode:  "disable",
	}

	s, err := InitDB(cfg)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func seedUser(t *testing.T, s *Storage, role models.UserRole) *models.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	user, err := s.CreateUser(models.User{
		Username:   "user-" + suffix,
		Email:      "user-" + suffix + "@test.local",
		Password:   "not-a-real-hash",
		Role:       role,
		IsApproved: role != models.RoleOrganizer,
	})
	require.NoError(t, err)

	return user
}

// seedEvent creates an event with a single ticket type of the given
// capacity and returns both.
func seedEvent(t *testing.T, s *Storage, organizerID string, quantity int) (*models.Event, *models.TicketType) {
	t.Helper()

	event, err := s.CreateEvent(models.Event{
		Title:       "Test Event " + uuid.New().String()[:8],
		Description: "seeded for a test",
		Date:        time.Now().Add(72 * time.Hour),
		Location:    "Test Hall",
		Category:    "test-" + uuid.New().String()[:8],
		OrganizerID: organizerID,
	}, []models.TicketType{
		{Name: "Regular", Price: decimal.NewFromInt(25), Quantity: quantity},
	})
	require.NoError(t, err)
	require.Len(t, event.TicketTypes, 1)

	return event, &event.TicketTypes[0]
}

func countBookings(t *testing.T, s *Storage, ticketTypeID string) int {
	t.Helper()

	var n int
	err := s.DB.QueryRow(
		`SELECT COUNT(*) FROM bookings WHERE ticket_type_id = $1 AND status = $2`,
		ticketTypeID, models.BookingConfirmed,
	).Scan(&n)
	require.NoError(t, err)

	return n
}
