package getEventReviews

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewsLister
type ReviewsLister interface {
	ReviewsByEvent(eventID string) ([]models.Review, error)
}

func New(log *slog.Logger, reviews ReviewsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.review.getEventReviews.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "eventId")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		list, err := reviews.ReviewsByEvent(eventID)
		if err != nil {
			log.Error("failed to get reviews", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reviews"))
			return
		}

		if list == nil {
			list = []models.Review{}
		}

		log.Info("reviews retrieved", slog.String("event_id", eventID), slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
