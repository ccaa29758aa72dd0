package register

import (
	"errors"
	"log/slog"
	"net/http"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN ORGANIZER ATTENDEE"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	CreateUser(user models.User) (*models.User, error)
}

func New(log *slog.Logger, users UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

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

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		role := models.UserRole(req.Role)
		if role == "" {
			role = models.RoleAttendee
		}

		// Organizers need an admin to approve them before they can log
		// in; everyone else is approved from the start.
		user, err := users.CreateUser(models.User{
			Username:   req.Username,
			Email:      req.Email,
			Password:   string(hash),
			Role:       role,
			IsApproved: role != models.RoleOrganizer,
		})
		if err != nil {
			log.Error("failed to create user", sl.Err(err))

			if errors.Is(err, storage.ErrUserExists) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("User with this email or username already exists"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		log.Info("user registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, user)
	}
}
