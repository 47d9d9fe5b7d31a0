package createUser

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/http-server/handlers/user/userRequest"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, user models.User) error
}

func New(log *slog.Logger, creator UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.createUser.New"

		log := log.With(slog.String("op", op))

		var req userRequest.UserRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				log.Error("invalid request field type", sl.Err(err))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.TypeError(typeErr))
				return
			}

			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.String("username", req.Username))

		if err := creator.CreateUser(r.Context(), req.User()); err != nil {
			log.Error("failed to create user", sl.Err(err))

			if errors.Is(err, storage.ErrUserExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already exists"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create user"))
			return
		}

		log.Info("user created")

		render.JSON(w, r, response.OK())
	}
}
