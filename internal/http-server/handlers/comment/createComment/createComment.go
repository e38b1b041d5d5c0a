package createComment

import (
	"context"
	"errors"
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/lib/logger/sl"
	"eventsManager/internal/lib/validate"
	"eventsManager/internal/models"
	"eventsManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strings"
)

type CommentRequest struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type CommentResponse struct {
	response.Response
	Comment *models.Comment `json:"comment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentCreator
type CommentCreator interface {
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
}

func New(log *slog.Logger, creator CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.createComment.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req CommentRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		// whitespace-only fields count as missing
		req.Author = strings.TrimSpace(req.Author)
		req.Content = strings.TrimSpace(req.Content)

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		comment, err := creator.CreateComment(r.Context(), models.CommentInput{
			EventID: eventID,
			Author:  req.Author,
			Content: req.Content,
		})
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to add comment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add comment"))
			return
		}

		log.Info("comment added", slog.String("comment_id", comment.ID))

		render.JSON(w, r, CommentResponse{
			Response: response.OK(),
			Comment:  comment,
		})
	}
}
