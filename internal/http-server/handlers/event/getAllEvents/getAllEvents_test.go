package getAllEvents

import (
	"encoding/json"
	"errors"
	"eventsManager/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventsManager/internal/lib/logger/handlers/slogdiscard"
	"eventsManager/internal/models"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testEvents = []models.Event{
	{
		ID:          "1",
		Title:       "Conférence Tech Innovation 2025",
		Description: "Les dernières innovations technologiques",
		Location:    "Palais des Congrès, Paris",
		Category:    models.CategoryConference,
	},
	{
		ID:          "2",
		Title:       "Concert de Jazz au Parc",
		Description: "Les meilleurs artistes de jazz du moment",
		Location:    "Parc des Expositions, Lyon",
		Category:    models.CategoryConcert,
	},
	{
		ID:          "5",
		Title:       "Tournoi de Tennis Amateur",
		Description: "Un moment sportif et convivial",
		Location:    "Centre Sportif Municipal, Toulouse",
		Category:    models.CategorySport,
	},
}

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          url.Values
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedIDs    []string
		expectedBody   string
	}{
		{
			name: "All events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"1", "2", "5"},
		},
		{
			name:  "Category filter",
			query: url.Values{"category": {"Sport"}},
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"5"},
		},
		{
			name:  "Search is case-insensitive",
			query: url.Values{"search": {"JaZz"}, "category": {"All"}},
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"2"},
		},
		{
			name:  "Search by location",
			query: url.Values{"search": {"paris"}},
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"1"},
		},
		{
			name:  "No match",
			query: url.Values{"search": {"jazz"}, "category": {"Sport"}},
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{},
		},
		{
			name:           "Unknown category",
			query:          url.Values{"category": {"Party"}},
			mockSetup:      func(m *mocks.EventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown category"}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, errors.New("context deadline exceeded"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events?"+tc.query.Encode(), nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var response EventsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

			assert.Equal(t, "OK", response.Status)

			ids := make([]string, 0, len(response.Events))
			for _, e := range response.Events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestEmptyResultIsAnArray(t *testing.T) {
	t.Parallel()

	mockGetter := mocks.NewEventsGetter(t)
	mockGetter.On("GetAllEvents", mock.Anything).Return(nil, nil)

	handler := New(slogdiscard.NewDiscardLogger(), mockGetter)

	req := httptest.NewRequest("GET", "/events", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","events":[]}`, rr.Body.String())
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, testEvents)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualResponse))

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Len(t, actualResponse.Events, 3)
}
