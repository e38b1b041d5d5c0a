package stats

import (
	"testing"
	"time"

	"eventsManager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "1", Date: "2025-06-15", Category: models.CategoryConference},
		{ID: "2", Date: "2025-07-10", Category: models.CategoryConcert},
		{ID: "3", Date: "2025-08-05", Category: models.CategoryConcert},
		{ID: "4", Date: "2025-11-08", Category: models.CategorySport},
	}
	comments := []models.Comment{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}

	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	dash := Compute(events, comments, now)

	assert.Equal(t, 4, dash.TotalEvents)
	assert.Equal(t, 3, dash.TotalComments)
	assert.Equal(t, 2, dash.UpcomingEvents, "an event happening today is not upcoming")

	require.NotNil(t, dash.MostRecentEvent)
	assert.Equal(t, "4", dash.MostRecentEvent.ID)

	assert.Equal(t, []CategoryCount{
		{Category: models.CategoryConference, Count: 1},
		{Category: models.CategoryConcert, Count: 2},
		{Category: models.CategoryExhibition, Count: 0},
		{Category: models.CategoryWorkshop, Count: 0},
		{Category: models.CategorySport, Count: 1},
		{Category: models.CategoryOther, Count: 0},
	}, dash.Categories)
}

func TestComputeMostRecentIsACopy(t *testing.T) {
	t.Parallel()

	events := []models.Event{{ID: "1", Title: "A", Date: "2025-06-15"}}

	dash := Compute(events, nil, time.Now())
	require.NotNil(t, dash.MostRecentEvent)

	dash.MostRecentEvent.Title = "changed"
	assert.Equal(t, "A", events[0].Title)
}

func TestComputeTies(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "a", Date: "2025-06-15"},
		{ID: "b", Date: "2025-06-15"},
	}

	dash := Compute(events, nil, time.Now())
	require.NotNil(t, dash.MostRecentEvent)
	assert.Equal(t, "a", dash.MostRecentEvent.ID)
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	dash := Compute(nil, nil, time.Now())

	assert.Zero(t, dash.TotalEvents)
	assert.Zero(t, dash.UpcomingEvents)
	assert.Nil(t, dash.MostRecentEvent)
	assert.Len(t, dash.Categories, 6)
}

func TestComputeSkipsBadDates(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "bad", Date: "someday"},
		{ID: "ok", Date: "2030-01-01"},
	}

	dash := Compute(events, nil, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 2, dash.TotalEvents)
	assert.Equal(t, 1, dash.UpcomingEvents)
	require.NotNil(t, dash.MostRecentEvent)
	assert.Equal(t, "ok", dash.MostRecentEvent.ID)
}
