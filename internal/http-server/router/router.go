package router

import (
	"log/slog"
	"net/http"
	"time"

	"eventsManager/internal/http-server/handlers/comment/approveComment"
	"eventsManager/internal/http-server/handlers/comment/createComment"
	"eventsManager/internal/http-server/handlers/comment/deleteComment"
	"eventsManager/internal/http-server/handlers/comment/deleteComments"
	"eventsManager/internal/http-server/handlers/comment/getAllComments"
	"eventsManager/internal/http-server/handlers/dashboard/getDashboard"
	"eventsManager/internal/http-server/handlers/event/createEvent"
	"eventsManager/internal/http-server/handlers/event/deleteEvent"
	"eventsManager/internal/http-server/handlers/event/getAllEvents"
	"eventsManager/internal/http-server/handlers/event/getCategories"
	"eventsManager/internal/http-server/handlers/event/getEventInfo"
	"eventsManager/internal/http-server/handlers/event/getFeaturedEvents"
	"eventsManager/internal/http-server/handlers/event/updateEvent"
	"eventsManager/internal/http-server/middleware/mwlogger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Storage is everything the routes need from the event and comment store.
type Storage interface {
	getAllEvents.EventsGetter
	getEventInfo.EventGetter
	createEvent.EventCreator
	updateEvent.EventUpdater
	deleteEvent.EventDeleter
	getCategories.CategoriesGetter
	createComment.CommentCreator
	getAllComments.CommentsGetter
	approveComment.CommentApprover
	deleteComment.CommentDeleter
	deleteComments.CommentsDeleter
}

func New(log *slog.Logger, storage Storage, now func() time.Time) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/categories", getCategories.New(log, storage))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getAllEvents.New(log, storage))
		r.Get("/featured", getFeaturedEvents.New(log, storage))
		r.Get("/{id}", getEventInfo.New(log, storage))
		r.Post("/{id}/comments", createComment.New(log, storage))
	})

	router.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", getDashboard.New(log, storage, now))

		r.Post("/events", createEvent.New(log, storage))
		r.Put("/events/{id}", updateEvent.New(log, storage))
		r.Delete("/events/{id}", deleteEvent.New(log, storage))

		r.Get("/comments", getAllComments.New(log, storage))
		r.Post("/comments/delete", deleteComments.New(log, storage))
		r.Post("/comments/{id}/approve", approveComment.New(log, storage))
		r.Delete("/comments/{id}", deleteComment.New(log, storage))
	})

	return router
}
