package getEventInfo

import (
	"errors"
	"log/slog"
	"net/http"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(id string) (*models.Event, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := info.GetEvent(eventID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		render.JSON(w, r, event)
	}
}
