package postgres

import (
	"fmt"
	"time"

	"eventdesk/internal/models"
)

// AdminStats aggregates the dashboard numbers in one pass. Revenue sums
// the ticket price of every CONFIRMED booking.
func (s *Storage) AdminStats() (*models.AdminStats, error) {
	const op = "storage.postgres.AdminStats"

	var stats models.AdminStats

	err := s.DB.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = $1),
			(SELECT COUNT(*) FROM users WHERE role = $2),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM bookings)`,
		models.RoleOrganizer, models.RoleAttendee,
	).Scan(
		&stats.TotalUsers, &stats.TotalOrganizers, &stats.TotalAttendees,
		&stats.TotalEvents, &stats.TotalBookings,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: totals: %w", op, err)
	}

	rows, err := s.DB.Query(`SELECT category, COUNT(*) FROM events GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("%s: events by category: %w", op, err)
	}
	for rows.Next() {
		var cc models.CategoryCount
		if err = rows.Scan(&cc.Name, &cc.Value); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: scan category: %w", op, err)
		}
		stats.EventsByCategory = append(stats.EventsByCategory, cc)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	trend, err := s.bookingsTrend()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats.BookingsTrend = trend

	err = s.DB.QueryRow(`
		SELECT COALESCE(SUM(tt.price), 0)
		FROM bookings b
		JOIN ticket_types tt ON tt.id = b.ticket_type_id
		WHERE b.status = $1`,
		models.BookingConfirmed,
	).Scan(&stats.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("%s: total revenue: %w", op, err)
	}

	rows, err = s.DB.Query(`
		SELECT u.username, COALESCE(SUM(tt.price), 0)
		FROM bookings b
		JOIN ticket_types tt ON tt.id = b.ticket_type_id
		JOIN events e ON e.id = tt.event_id
		JOIN users u ON u.id = e.organizer_id
		WHERE b.status = $1
		GROUP BY u.username
		ORDER BY u.username`,
		models.BookingConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: revenue by organizer: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var or models.OrganizerRevenue
		if err = rows.Scan(&or.Name, &or.Value); err != nil {
			return nil, fmt.Errorf("%s: scan revenue: %w", op, err)
		}
		stats.RevenueByOrganizer = append(stats.RevenueByOrganizer, or)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}

// bookingsTrend samples the 100 most recent bookings and buckets them
// by month name, matching the dashboard chart's expectations.
func (s *Storage) bookingsTrend() ([]models.BookingsTrendPoint, error) {
	rows, err := s.DB.Query(`SELECT booking_date FROM bookings ORDER BY booking_date DESC LIMIT 100`)
	if err != nil {
		return nil, fmt.Errorf("bookings trend: %w", err)
	}
	defer rows.Close()

	byMonth := make(map[string]int)
	var order []string

	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan booking date: %w", err)
		}

		month := d.Format("Jan")
		if _, seen := byMonth[month]; !seen {
			order = append(order, month)
		}
		byMonth[month]++
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings trend: %w", err)
	}

	var trend []models.BookingsTrendPoint
	for _, month := range order {
		trend = append(trend, models.BookingsTrendPoint{Name: month, Bookings: byMonth[month]})
	}

	return trend, nil
}
