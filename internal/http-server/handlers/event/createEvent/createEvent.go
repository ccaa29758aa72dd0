package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type TicketTypeRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
}

type EventRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date" validate:"required"`
	Location    string              `json:"location" validate:"required"`
	Category    string              `json:"category" validate:"required"`
	BannerImage string              `json:"bannerImage"`
	TicketTypes []TicketTypeRequest `json:"ticketTypes" validate:"dive"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event, ticketTypes []models.TicketType) (*models.Event, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

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

		for _, tt := range req.TicketTypes {
			if tt.Price.IsNegative() {
				log.Error("negative ticket price", slog.String("name", tt.Name))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket price must not be negative"))
				return
			}
		}

		ticketTypes := make([]models.TicketType, 0, len(req.TicketTypes))
		for _, tt := range req.TicketTypes {
			ticketTypes = append(ticketTypes, models.TicketType{
				Name:     tt.Name,
				Price:    tt.Price,
				Quantity: tt.Quantity,
			})
		}

		created, err := event.CreateEvent(models.Event{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Location:    req.Location,
			Category:    req.Category,
			BannerImage: req.BannerImage,
			OrganizerID: mwauth.UserID(r.Context()),
		}, ticketTypes)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.String("event_id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
