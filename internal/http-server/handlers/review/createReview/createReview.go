package createReview

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

type ReviewRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewCreator
type ReviewCreator interface {
	CreateReview(review models.Review) (*models.Review, error)
}

func New(log *slog.Logger, reviews ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.review.createReview.New"

		log = log.With(slog.String("op", op))

		var req ReviewRequest

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

		created, err := reviews.CreateReview(models.Review{
			EventID: req.EventID,
			UserID:  mwauth.UserID(r.Context()),
			Rating:  req.Rating,
			Comment: req.Comment,
		})
		if err != nil {
			log.Error("failed to create review", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create review"))
			return
		}

		log.Info("review created", slog.String("review_id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
