package deleteAllUsers

import (
	"context"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersDeleter
type UsersDeleter interface {
	DeleteAllUsers(ctx context.Context) error
}

func New(log *slog.Logger, deleter UsersDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.deleteAllUsers.New"

		log := log.With(slog.String("op", op))

		if err := deleter.DeleteAllUsers(r.Context()); err != nil {
			log.Error("failed to delete users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete users"))
			return
		}

		log.Info("all users deleted")

		render.JSON(w, r, response.OK())
	}
}
