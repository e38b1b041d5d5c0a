package deleteComments

import (
	"context"
	"errors"
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/lib/logger/sl"
	"eventsManager/internal/lib/validate"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type DeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type DeleteResponse struct {
	response.Response
	Deleted int `json:"deleted"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentsDeleter
type CommentsDeleter interface {
	DeleteComments(ctx context.Context, ids []string) (int, error)
}

// New removes a selection of comments at once. Ids that match nothing are
// skipped; the response reports how many comments were actually removed.
func New(log *slog.Logger, deleter CommentsDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.deleteComments.New"

		log := log.With(slog.String("op", op))

		var req DeleteRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		deleted, err := deleter.DeleteComments(r.Context(), req.IDs)
		if err != nil {
			log.Error("failed to delete comments", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete comments"))
			return
		}

		log.Info("comments deleted", slog.Int("requested", len(req.IDs)), slog.Int("deleted", deleted))

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Deleted:  deleted,
		})
	}
}
