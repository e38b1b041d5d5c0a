package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"eventsManager/internal/http-server/handlers/event/createEvent/mocks"
	"eventsManager/internal/lib/logger/handlers/slogdiscard"
	"eventsManager/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"title": "Concert de Jazz au Parc",
	"description": "Une soirée musicale exceptionnelle",
	"date": "2025-07-10",
	"location": "Parc des Expositions, Lyon",
	"image_url": "https://example.com/jazz.jpg",
	"organizer": "Music Events",
	"category": "Concert"
}`

var validInput = models.EventInput{
	Title:       "Concert de Jazz au Parc",
	Description: "Une soirée musicale exceptionnelle",
	Date:        "2025-07-10",
	Location:    "Parc des Expositions, Lyon",
	ImageURL:    "https://example.com/jazz.jpg",
	Organizer:   "Music Events",
	Category:    models.CategoryConcert,
}

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := validInput.WithID("ev-123")

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, validInput).Return(&created, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Event)
				assert.Equal(t, created, *resp.Event)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"description": "Une soirée musicale exceptionnelle",
				"date": "2025-07-10",
				"location": "Lyon",
				"image_url": "https://example.com/jazz.jpg",
				"organizer": "Music Events",
				"category": "Concert"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "field Title is a required field")
			},
		},
		{
			name: "Short description",
			requestBody: `{
				"title": "Concert",
				"description": "Court",
				"date": "2025-07-10",
				"location": "Lyon",
				"image_url": "https://example.com/jazz.jpg",
				"organizer": "Music Events",
				"category": "Concert"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Description")
			},
		},
		{
			name: "Invalid date format",
			requestBody: `{
				"title": "Concert",
				"description": "Une soirée musicale exceptionnelle",
				"date": "10/07/2025",
				"location": "Lyon",
				"image_url": "https://example.com/jazz.jpg",
				"organizer": "Music Events",
				"category": "Concert"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Date is not a valid date")
			},
		},
		{
			name: "Invalid image url",
			requestBody: `{
				"title": "Concert",
				"description": "Une soirée musicale exceptionnelle",
				"date": "2025-07-10",
				"location": "Lyon",
				"image_url": "not a url",
				"organizer": "Music Events",
				"category": "Concert"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field ImageURL is not a valid URL")
			},
		},
		{
			name: "All is not a storable category",
			requestBody: `{
				"title": "Concert",
				"description": "Une soirée musicale exceptionnelle",
				"date": "2025-07-10",
				"location": "Lyon",
				"image_url": "https://example.com/jazz.jpg",
				"organizer": "Music Events",
				"category": "All"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Category is not a known category")
			},
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, validInput).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/admin/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewEventCreator(t)
	handler := New(logger, mockCreator)

	req, err := http.NewRequest("POST", "/admin/events", bytes.NewBufferString(`{}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `"status":"Error"`)

	for _, field := range []string{"Title", "Description", "Date", "Location", "ImageURL", "Organizer", "Category"} {
		assert.Contains(t, body, field)
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	ev := validInput.WithID("456")
	responseOK(rr, req, &ev)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	require.NotNil(t, actualResponse.Event)
	assert.Equal(t, "456", actualResponse.Event.ID)
	assert.Contains(t, rr.Body.String(), `"image_url":"https://example.com/jazz.jpg"`)
}
