package stats

import (
	"time"

	"eventsManager/internal/models"
)

type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

type Dashboard struct {
	TotalEvents     int             `json:"total_events"`
	UpcomingEvents  int             `json:"upcoming_events"`
	TotalComments   int             `json:"total_comments"`
	MostRecentEvent *models.Event   `json:"most_recent_event"`
	Categories      []CategoryCount `json:"categories"`
}

// Compute builds the admin dashboard figures. An event is upcoming when its
// date is after the calendar day of now (UTC). The most recent event is the
// one with the latest date, the earliest listed winning ties. Events with an
// unparsable date are counted but never upcoming nor most recent.
func Compute(events []models.Event, comments []models.Comment, now time.Time) Dashboard {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	counts := make(map[models.Category]int)

	dash := Dashboard{
		TotalEvents:   len(events),
		TotalComments: len(comments),
	}

	var latest time.Time

	for i, e := range events {
		counts[e.Category]++

		date, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			continue
		}

		if date.After(today) {
			dash.UpcomingEvents++
		}

		if dash.MostRecentEvent == nil || date.After(latest) {
			latest = date
			dash.MostRecentEvent = &events[i]
		}
	}

	if dash.MostRecentEvent != nil {
		ev := *dash.MostRecentEvent
		dash.MostRecentEvent = &ev
	}

	for _, c := range models.StoredCategories() {
		dash.Categories = append(dash.Categories, CategoryCount{
			Category: c,
			Count:    counts[c],
		})
	}

	return dash
}
