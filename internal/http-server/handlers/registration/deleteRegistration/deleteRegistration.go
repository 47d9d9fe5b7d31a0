package deleteRegistration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationDeleter
type RegistrationDeleter interface {
	DeleteRegistration(ctx context.Context, eventID int, username string) error
}

// New removes the registration identified by the event_id and username query
// parameters.
func New(log *slog.Logger, deleter RegistrationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.deleteRegistration.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()

		eventIdStr := query.Get("event_id")
		username := query.Get("username")
		if eventIdStr == "" || username == "" {
			log.Error("event_id and username are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event_id and username are required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID), slog.String("username", username))

		if err = deleter.DeleteRegistration(r.Context(), eventID, username); err != nil {
			log.Error("failed to delete registration", sl.Err(err))

			if errors.Is(err, storage.ErrRegistrationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete registration"))
			return
		}

		log.Info("registration deleted")

		render.JSON(w, r, response.OK())
	}
}
