package createEvent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/http-server/handlers/event/eventRequest"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventResponse struct {
	response.Response
	EventId int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, in models.EventInput) (int, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req eventRequest.EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		in, err := req.Input()
		if err != nil {
			log.Error("invalid event date", sl.Err(err), slog.String("date", req.Date.String()))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid date format"))

			return
		}

		eventId, err := event.CreateEvent(r.Context(), in)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventId))

		responseOK(w, r, eventId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
