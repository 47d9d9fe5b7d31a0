package router

import (
	"log/slog"
	"net/http"

	"eventRegistry/internal/config"
	"eventRegistry/internal/http-server/handlers/docs"
	"eventRegistry/internal/http-server/handlers/event/createEvent"
	"eventRegistry/internal/http-server/handlers/event/deleteAllEvents"
	"eventRegistry/internal/http-server/handlers/event/deleteEvent"
	"eventRegistry/internal/http-server/handlers/event/getAllEvents"
	"eventRegistry/internal/http-server/handlers/event/getEvent"
	"eventRegistry/internal/http-server/handlers/event/registerUser"
	"eventRegistry/internal/http-server/handlers/event/updateEvent"
	"eventRegistry/internal/http-server/handlers/registration/deleteRegistration"
	"eventRegistry/internal/http-server/handlers/registration/getAllRegistrations"
	"eventRegistry/internal/http-server/handlers/user/createUser"
	"eventRegistry/internal/http-server/handlers/user/deleteAllUsers"
	"eventRegistry/internal/http-server/handlers/user/deleteUser"
	"eventRegistry/internal/http-server/handlers/user/getAllUsers"
	"eventRegistry/internal/http-server/handlers/user/getUser"
	"eventRegistry/internal/http-server/middleware/mwlogger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Storage is everything the HTTP layer needs from persistence.
type Storage interface {
	getAllEvents.EventsGetter
	getEvent.EventGetter
	createEvent.EventCreator
	updateEvent.EventUpdater
	deleteAllEvents.EventsDeleter
	deleteEvent.EventDeleter
	registerUser.EventRegistrar

	getAllUsers.UsersGetter
	getUser.UserGetter
	createUser.UserCreator
	deleteAllUsers.UsersDeleter
	deleteUser.UserDeleter

	getAllRegistrations.RegistrationsGetter
	deleteRegistration.RegistrationDeleter
}

func New(log *slog.Logger, storage Storage, corsCfg config.CORS) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/openapi.json", docs.New(log))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getAllEvents.New(log, storage))
		r.Post("/", createEvent.New(log, storage))
		r.Delete("/", deleteAllEvents.New(log, storage))
		r.Get("/{id}", getEvent.New(log, storage))
		r.Put("/{id}", updateEvent.New(log, storage))
		r.Delete("/{id}", deleteEvent.New(log, storage))
		r.Post("/{id}/register", registerUser.New(log, storage))
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", getAllUsers.New(log, storage))
		r.Post("/", createUser.New(log, storage))
		r.Delete("/", deleteAllUsers.New(log, storage))
		r.Get("/{username}", getUser.New(log, storage))
		r.Delete("/{username}", deleteUser.New(log, storage))
	})

	router.Route("/registrations", func(r chi.Router) {
		r.Get("/", getAllRegistrations.New(log, storage))
		r.Delete("/", deleteRegistration.New(log, storage))
	})

	return router
}
