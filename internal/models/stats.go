package models

import "github.com/shopspring/decimal"

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type BookingsTrendPoint struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

type OrganizerRevenue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type AdminStats struct {
	TotalUsers         int                  `json:"totalUsers"`
	TotalOrganizers    int                  `json:"totalOrganizers"`
	TotalAttendees     int                  `json:"totalAttendees"`
	TotalEvents        int                  `json:"totalEvents"`
	TotalBookings      int                  `json:"totalBookings"`
	EventsByCategory   []CategoryCount      `json:"eventsByCategory"`
	BookingsTrend      []BookingsTrendPoint `json:"bookingsTrend"`
	TotalRevenue       decimal.Decimal      `json:"totalRevenue"`
	RevenueByOrganizer []OrganizerRevenue   `json:"revenueByOrganizer"`
}
