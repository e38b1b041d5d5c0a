package approveComment

import (
	"context"
	"errors"
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/lib/logger/sl"
	"eventsManager/internal/models"
	"eventsManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type CommentResponse struct {
	response.Response
	Comment *models.Comment `json:"comment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentApprover
type CommentApprover interface {
	ApproveComment(ctx context.Context, id string) (*models.Comment, error)
}

func New(log *slog.Logger, approver CommentApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.approveComment.New"

		log := log.With(slog.String("op", op))

		commentID := chi.URLParam(r, "id")
		if commentID == "" {
			log.Error("comment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("comment id is required"))
			return
		}

		log = log.With(slog.String("comment_id", commentID))

		comment, err := approver.ApproveComment(r.Context(), commentID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCommentNotFound):
				log.Info("comment not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("comment not found"))
			default:
				log.Error("failed to approve comment", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to approve comment"))
			}
			return
		}

		log.Info("comment approved")

		render.JSON(w, r, CommentResponse{
			Response: response.OK(),
			Comment:  comment,
		})
	}
}
