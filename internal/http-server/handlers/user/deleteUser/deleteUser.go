package deleteUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserDeleter
type UserDeleter interface {
	DeleteUser(ctx context.Context, username string) error
}

// New deletes one user together with the user's registrations.
func New(log *slog.Logger, deleter UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.deleteUser.New"

		log := log.With(slog.String("op", op))

		username, err := usernameParam(r)
		if err != nil {
			log.Error("invalid username", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid username"))
			return
		}

		if username == "" {
			log.Error("username is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("username is required"))
			return
		}

		log = log.With(slog.String("username", username))

		if err = deleter.DeleteUser(r.Context(), username); err != nil {
			log.Error("failed to delete user", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete user"))
			return
		}

		log.Info("user deleted")

		render.JSON(w, r, response.OK())
	}
}

// usernameParam returns the decoded {username} segment. chi matches against
// the escaped path whenever the URL carries one, so "a%2Fb" arrives encoded.
func usernameParam(r *http.Request) (string, error) {
	username := chi.URLParam(r, "username")
	if r.URL.RawPath == "" {
		return username, nil
	}

	return url.PathUnescape(username)
}
