package models

import "time"

type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Location    string       `json:"location"`
	Category    string       `json:"category"`
	BannerImage string       `json:"bannerImage,omitempty"`
	OrganizerID string       `json:"organizerId"`
	Organizer   *User        `json:"organizer,omitempty"`
	TicketTypes []TicketType `json:"ticketTypes,omitempty"`
	Reviews     []Review     `json:"reviews,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
