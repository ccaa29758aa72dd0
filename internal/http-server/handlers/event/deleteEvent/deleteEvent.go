package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(id, userID string) error
}

func New(log *slog.Logger, event EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		err := event.DeleteEvent(eventID, mwauth.UserID(r.Context()))
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("Unauthorized"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete event"))
			}
			return
		}

		log.Info("event deleted")

		render.NoContent(w, r)
	}
}
