package postgres

import (
	"testing"

	"eventdesk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	s := newTestStorage(t)

	before, err := s.AdminStats()
	require.NoError(t, err)

	organizer := seedUser(t, s, models.RoleOrganizer)
	attendee := seedUser(t, s, models.RoleAttendee)
	event, ticketType := seedEvent(t, s, organizer.ID, 5)

	_, err = s.CreateBooking(ticketType.ID, attendee.ID)
	require.NoError(t, err)
	_, err = s.CreateBooking(ticketType.ID, attendee.ID)
	require.NoError(t, err)

	after, err := s.AdminStats()
	require.NoError(t, err)

	assert.Equal(t, before.TotalUsers+2, after.TotalUsers)
	assert.Equal(t, before.TotalOrganizers+1, after.TotalOrganizers)
	assert.Equal(t, before.TotalAttendees+1, after.TotalAttendees)
	assert.Equal(t, before.TotalEvents+1, after.TotalEvents)
	assert.Equal(t, before.TotalBookings+2, after.TotalBookings)

	var found bool
	for _, cc := range after.EventsByCategory {
		if cc.Name == event.Category {
			found = true
			assert.Equal(t, 1, cc.Value)
		}
	}
	assert.True(t, found, "seeded category should show up in the breakdown")

	// Two seats at 25 each.
	wantDelta := decimal.NewFromInt(50)
	assert.True(t, after.TotalRevenue.Sub(before.TotalRevenue).Equal(wantDelta),
		"revenue should grow by %s, went from %s to %s", wantDelta, before.TotalRevenue, after.TotalRevenue)

	var organizerFound bool
	for _, or := range after.RevenueByOrganizer {
		if or.Name == organizer.Username {
			organizerFound = true
			assert.True(t, or.Value.Equal(wantDelta))
		}
	}
	assert.True(t, organizerFound, "seeded organizer should appear in the revenue breakdown")

	assert.NotEmpty(t, after.BookingsTrend)
}
