package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	TicketTypeID string `json:"ticketTypeId" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ticketTypeID, userID string) (*models.Booking, error)
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID := mwauth.UserID(r.Context())
		if userID == "" {
			log.Error("no caller identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("No token provided"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		created, err := booking.CreateBooking(req.TicketTypeID, userID)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTicketTypeNotFound):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Ticket type not found"))
			case errors.Is(err, storage.ErrSoldOut):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Tickets sold out"))
			case errors.Is(err, storage.ErrTransient):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("Booking temporarily unavailable, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.String("booking_id", created.ID),
			slog.String("ticket_type_id", created.TicketTypeID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
