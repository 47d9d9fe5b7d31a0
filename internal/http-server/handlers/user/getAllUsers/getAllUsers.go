package getAllUsers

import (
	"context"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/render"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersGetter
type UsersGetter interface {
	Users(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, usersGetter UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getAllUsers.New"

		log := log.With(slog.String("op", op))

		users, err := usersGetter.Users(r.Context())
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		log.Info("users retrieved successfully", slog.Int("count", len(users)))

		if users == nil {
			users = []models.User{}
		}

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    users,
		})
	}
}
