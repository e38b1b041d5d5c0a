package deleteComment

import (
	"context"
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/lib/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentDeleter
type CommentDeleter interface {
	DeleteComment(ctx context.Context, id string) (bool, error)
}

func New(log *slog.Logger, deleter CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.deleteComment.New"

		log := log.With(slog.String("op", op))

		commentID := chi.URLParam(r, "id")
		if commentID == "" {
			log.Error("comment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("comment id is required"))
			return
		}

		log = log.With(slog.String("comment_id", commentID))

		deleted, err := deleter.DeleteComment(r.Context(), commentID)
		if err != nil {
			log.Error("failed to delete comment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete comment"))
			return
		}

		if !deleted {
			log.Info("comment not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("comment not found"))
			return
		}

		log.Info("comment deleted")

		render.JSON(w, r, response.OK())
	}
}
