package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdesk/internal/config"
	"eventdesk/internal/http-server/handlers/admin/getStats"
	"eventdesk/internal/http-server/handlers/auth/login"
	"eventdesk/internal/http-server/handlers/auth/register"
	"eventdesk/internal/http-server/handlers/booking/createBooking"
	"eventdesk/internal/http-server/handlers/booking/myBookings"
	"eventdesk/internal/http-server/handlers/event/createEvent"
	"eventdesk/internal/http-server/handlers/event/deleteEvent"
	"eventdesk/internal/http-server/handlers/event/getAllEvents"
	"eventdesk/internal/http-server/handlers/event/getEventInfo"
	"eventdesk/internal/http-server/handlers/event/updateEvent"
	"eventdesk/internal/http-server/handlers/review/createReview"
	"eventdesk/internal/http-server/handlers/review/getEventReviews"
	"eventdesk/internal/http-server/handlers/user/approveOrganizer"
	"eventdesk/internal/http-server/handlers/user/pendingOrganizers"
	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/http-server/middleware/mwlogger"
	"eventdesk/internal/lib/logger/handlers/slogpretty"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventdesk", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/auth/register", register.New(log, storage))
	router.Post("/auth/login", login.New(log, storage, cfg.JWT))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEventInfo.New(log, storage))
	router.Get("/reviews/event/{eventId}", getEventReviews.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, cfg.JWT.Secret))

		r.Post("/bookings", createBooking.New(log, storage))
		r.Get("/bookings/my-bookings", myBookings.New(log, storage))
		r.Post("/reviews", createReview.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRole(models.RoleOrganizer, models.RoleAdmin))

			r.Post("/events", createEvent.New(log, storage))
			r.Put("/events/{id}", updateEvent.New(log, storage))
			r.Delete("/events/{id}", deleteEvent.New(log, storage))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRole(models.RoleAdmin))

			r.Get("/admin/stats", getStats.New(log, storage))
			r.Get("/users/pending-organizers", pendingOrganizers.New(log, storage))
			r.Put("/users/{id}/approve", approveOrganizer.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
