package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	BannerImage string    `json:"bannerImage"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id, userID string, upd models.Event) (*models.Event, error)
}

func New(log *slog.Logger, event EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		updated, err := event.UpdateEvent(eventID, mwauth.UserID(r.Context()), models.Event{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Location:    req.Location,
			Category:    req.Category,
			BannerImage: req.BannerImage,
		})
		if err != nil {
			log.Error("failed to update event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("Unauthorized"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event"))
			}
			return
		}

		log.Info("event updated")

		render.JSON(w, r, updated)
	}
}
