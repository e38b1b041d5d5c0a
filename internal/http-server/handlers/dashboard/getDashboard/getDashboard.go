package getDashboard

import (
	"context"
	"eventsManager/internal/lib/api/response"
	"eventsManager/internal/lib/logger/sl"
	"eventsManager/internal/lib/stats"
	"eventsManager/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type DashboardResponse struct {
	response.Response
	Dashboard stats.Dashboard `json:"dashboard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsSource
type StatsSource interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetAllComments(ctx context.Context) ([]models.Comment, error)
}

func New(log *slog.Logger, source StatsSource, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.getDashboard.New"

		log := log.With(slog.String("op", op))

		events, err := source.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build dashboard"))
			return
		}

		comments, err := source.GetAllComments(r.Context())
		if err != nil {
			log.Error("failed to get comments", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build dashboard"))
			return
		}

		dash := stats.Compute(events, comments, now())

		log.Info("dashboard built",
			slog.Int("events", dash.TotalEvents),
			slog.Int("comments", dash.TotalComments),
		)

		render.JSON(w, r, DashboardResponse{
			Response:  response.OK(),
			Dashboard: dash,
		})
	}
}
