package models

import "time"

type Review struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
