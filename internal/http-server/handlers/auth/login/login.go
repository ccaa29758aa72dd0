package login

import (
	"errors"
	"log/slog"
	"net/http"

	"eventdesk/internal/config"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/jwt"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByEmail(email string) (*models.User, error)
}

func New(log *slog.Logger, users UserProvider, jwtCfg config.JWT) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

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

		user, err := users.UserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("login attempt for unknown email")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid credentials"))
				return
			}

			log.Error("failed to fetch user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			log.Info("invalid password", slog.String("user_id", user.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid credentials"))
			return
		}

		if user.Role == models.RoleOrganizer && !user.IsApproved {
			log.Info("unapproved organizer login refused", slog.String("user_id", user.ID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Account pending approval"))
			return
		}

		token, err := jwt.NewToken(*user, jwtCfg.Secret, jwtCfg.TTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		log.Info("user logged in", slog.String("user_id", user.ID))

		render.JSON(w, r, LoginResponse{User: user, Token: token})
	}
}
