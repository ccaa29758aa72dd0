package getStats

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	AdminStats() (*models.AdminStats, error)
}

func New(log *slog.Logger, stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getStats.New"

		log = log.With(slog.String("op", op))

		result, err := stats.AdminStats()
		if err != nil {
			log.Error("failed to aggregate stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stats"))
			return
		}

		log.Info("stats aggregated")

		render.JSON(w, r, result)
	}
}
