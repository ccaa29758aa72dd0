package myBookings

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	MyBookings(userID string) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.myBookings.New"

		log = log.With(slog.String("op", op))

		userID := mwauth.UserID(r.Context())
		if userID == "" {
			log.Error("no caller identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("No token provided"))
			return
		}

		list, err := bookings.MyBookings(userID)
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookings"))
			return
		}

		if list == nil {
			list = []models.Booking{}
		}

		log.Info("bookings listed", slog.String("user_id", userID), slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
