package deleteAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsDeleter
type EventsDeleter interface {
	DeleteAllEvents(ctx context.Context) error
}

func New(log *slog.Logger, deleter EventsDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteAllEvents.New"

		log := log.With(slog.String("op", op))

		if err := deleter.DeleteAllEvents(r.Context()); err != nil {
			log.Error("failed to delete events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete events"))
			return
		}

		log.Info("all events deleted")

		render.JSON(w, r, response.OK())
	}
}
