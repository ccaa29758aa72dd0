package approveOrganizer

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizerApprover
type OrganizerApprover interface {
	ApproveOrganizer(id string) (*models.User, error)
}

func New(log *slog.Logger, users OrganizerApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.approveOrganizer.New"

		log = log.With(slog.String("op", op))

		userID := chi.URLParam(r, "id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		user, err := users.ApproveOrganizer(userID)
		if err != nil {
			log.Error("failed to approve organizer", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("User not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to approve organizer"))
			return
		}

		log.Info("organizer approved")

		render.JSON(w, r, user)
	}
}
