package models

import "github.com/shopspring/decimal"

type TicketType struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	EventID  string          `json:"eventId"`
	Event    *Event          `json:"event,omitempty"`
}
