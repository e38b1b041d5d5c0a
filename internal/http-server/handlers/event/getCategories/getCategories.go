package getCategories

import (
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type CategoriesResponse struct {
	response.Response
	Categories []models.Category `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesGetter
type CategoriesGetter interface {
	GetCategories() []models.Category
}

func New(log *slog.Logger, getter CategoriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getCategories.New"

		log := log.With(slog.String("op", op))

		categories := getter.GetCategories()

		log.Debug("categories listed", slog.Int("count", len(categories)))

		render.JSON(w, r, CategoriesResponse{
			Response:   response.OK(),
			Categories: categories,
		})
	}
}
