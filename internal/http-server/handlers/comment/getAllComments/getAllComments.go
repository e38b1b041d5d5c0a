package getAllComments

import (
	"context"
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/lib/logger/sl"
	"eventsManager/internal/lib/search"
	"eventsManager/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// UnknownEventTitle stands in for the title of an event that no longer exists.
const UnknownEventTitle = "Événement inconnu"

type CommentView struct {
	models.Comment
	EventTitle string `json:"event_title"`
}

type CommentsResponse struct {
	response.Response
	Comments []CommentView `json:"comments"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentsGetter
type CommentsGetter interface {
	GetAllComments(ctx context.Context) ([]models.Comment, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

// New lists comments for moderation. The "search" query parameter matches
// author and content, "event" restricts to one event id.
func New(log *slog.Logger, getter CommentsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.getAllComments.New"

		log := log.With(slog.String("op", op))

		comments, err := getter.GetAllComments(r.Context())
		if err != nil {
			log.Error("failed to get comments", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get comments"))
			return
		}

		events, err := getter.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get comments"))
			return
		}

		comments = search.Comments(comments, r.URL.Query().Get("search"), r.URL.Query().Get("event"))

		titles := make(map[string]string, len(events))
		for _, e := range events {
			titles[e.ID] = e.Title
		}

		views := make([]CommentView, 0, len(comments))
		for _, c := range comments {
			title, ok := titles[c.EventID]
			if !ok {
				title = UnknownEventTitle
			}

			views = append(views, CommentView{Comment: c, EventTitle: title})
		}

		log.Info("comments retrieved successfully", slog.Int("count", len(views)))

		render.JSON(w, r, CommentsResponse{
			Response: response.OK(),
			Comments: views,
		})
	}
}
