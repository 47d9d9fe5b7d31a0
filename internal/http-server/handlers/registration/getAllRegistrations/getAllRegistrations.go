package getAllRegistrations

import (
	"context"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/render"
)

type RegistrationsResponse struct {
	response.Response
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsGetter
type RegistrationsGetter interface {
	Registrations(ctx context.Context) ([]models.Registration, error)
}

func New(log *slog.Logger, getter RegistrationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.getAllRegistrations.New"

		log := log.With(slog.String("op", op))

		registrations, err := getter.Registrations(r.Context())
		if err != nil {
			log.Error("failed to get registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registrations"))
			return
		}

		log.Info("registrations retrieved successfully", slog.Int("count", len(registrations)))

		if registrations == nil {
			registrations = []models.Registration{}
		}

		render.JSON(w, r, RegistrationsResponse{
			Response:      response.OK(),
			Registrations: registrations,
		})
	}
}
