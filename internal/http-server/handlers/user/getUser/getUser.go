package getUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type UserResponse struct {
	response.Response
	User *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	User(ctx context.Context, username string) (*models.User, error)
}

func New(log *slog.Logger, getter UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getUser.New"

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

		user, err := getter.User(r.Context(), username)
		if err != nil {
			log.Error("failed to get user", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		log.Info("user successfully received")

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
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
