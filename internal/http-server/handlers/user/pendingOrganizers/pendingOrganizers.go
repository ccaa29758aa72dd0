package pendingOrganizers

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizersLister
type OrganizersLister interface {
	PendingOrganizers() ([]models.User, error)
}

func New(log *slog.Logger, users OrganizersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.pendingOrganizers.New"

		log = log.With(slog.String("op", op))

		list, err := users.PendingOrganizers()
		if err != nil {
			log.Error("failed to list pending organizers", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list pending organizers"))
			return
		}

		if list == nil {
			list = []models.User{}
		}

		log.Info("pending organizers listed", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
