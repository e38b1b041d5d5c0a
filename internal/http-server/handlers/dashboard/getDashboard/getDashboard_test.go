package getDashboard

import (
	"errors"
	"eventsManager/internal/http-server/handlers/dashboard/getDashboard/mocks"
	"eventsManager/internal/lib/logger/handlers/slogdiscard"
	"eventsManager/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
}

func TestGetDashboardHandler(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "1", Title: "Conférence", Date: "2025-06-15", Category: models.CategoryConference},
		{ID: "2", Title: "Concert", Date: "2025-07-10", Category: models.CategoryConcert},
		{ID: "5", Title: "Tournoi", Date: "2025-10-12", Category: models.CategorySport},
	}
	comments := []models.Comment{
		{ID: "c1", EventID: "1"},
		{ID: "c2", EventID: "2"},
	}

	source := mocks.NewStatsSource(t)
	source.On("GetAllEvents", mock.Anything).Return(events, nil)
	source.On("GetAllComments", mock.Anything).Return(comments, nil)

	handler := New(slogdiscard.NewDiscardLogger(), source, fixedNow)

	req, err := http.NewRequest("GET", "/admin/dashboard", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "OK",
		"dashboard": {
			"total_events": 3,
			"upcoming_events": 2,
			"total_comments": 2,
			"most_recent_event": {
				"id": "5", "title": "Tournoi", "description": "", "date": "2025-10-12",
				"location": "", "image_url": "", "organizer": "", "category": "Sport"
			},
			"categories": [
				{"category": "Conference", "count": 1},
				{"category": "Concert", "count": 1},
				{"category": "Exhibition", "count": 0},
				{"category": "Workshop", "count": 0},
				{"category": "Sport", "count": 1},
				{"category": "Other", "count": 0}
			]
		}
	}`, rr.Body.String())
}

func TestGetDashboardErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mockSetup func(m *mocks.StatsSource)
	}{
		{
			name: "Events unavailable",
			mockSetup: func(m *mocks.StatsSource) {
				m.On("GetAllEvents", mock.Anything).Return(nil, errors.New("context canceled"))
			},
		},
		{
			name: "Comments unavailable",
			mockSetup: func(m *mocks.StatsSource) {
				m.On("GetAllEvents", mock.Anything).Return([]models.Event{}, nil)
				m.On("GetAllComments", mock.Anything).Return(nil, errors.New("context canceled"))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			source := mocks.NewStatsSource(t)
			tc.mockSetup(source)

			handler := New(slogdiscard.NewDiscardLogger(), source, fixedNow)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest("GET", "/admin/dashboard", nil))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"status":"Error","error":"failed to build dashboard"}`, rr.Body.String())
		})
	}
}
