package getAllEvents

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	GetAllEvents(filter storage.EventFilter) ([]models.Event, error)
}

func New(log *slog.Logger, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		filter := storage.EventFilter{
			Category:    r.URL.Query().Get("category"),
			Search:      r.URL.Query().Get("search"),
			OrganizerID: r.URL.Query().Get("organizerId"),
		}

		list, err := events.GetAllEvents(filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		if list == nil {
			list = []models.Event{}
		}

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
