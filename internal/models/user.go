package models

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleOrganizer UserRole = "ORGANIZER"
	RoleAttendee  UserRole = "ATTENDEE"
)

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       UserRole  `json:"role"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
