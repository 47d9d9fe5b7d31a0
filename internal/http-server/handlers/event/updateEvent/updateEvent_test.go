package updateEvent

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventRegistry/internal/http-server/handlers/event/updateEvent/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"title": "Workshop",
	"description": "hands-on",
	"date": "2025-02-03T09:30:00Z",
	"location": "Milan"
}`

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	wantInput := mock.MatchedBy(func(in models.EventInput) bool {
		return in.Title == "Workshop" &&
			in.Description == "hands-on" &&
			in.Location == "Milan" &&
			in.Date.Equal(time.Date(2025, 2, 3, 9, 30, 0, 0, time.UTC))
	})

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			eventID:     "1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, 1, wantInput).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Success with unix seconds date",
			eventID: "1",
			requestBody: `{
				"title": "Workshop",
				"description": "hands-on",
				"date": 1738575000,
				"location": "Milan"
			}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, 1, wantInput).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Title of wrong type",
			eventID: "1",
			requestBody: `{
				"title": ["Workshop"],
				"description": "hands-on",
				"date": "2025-02-03T09:30:00Z",
				"location": "Milan"
			}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field title has an invalid type"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "abc",
			requestBody:    validBody,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        "1",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			eventID:        "1",
			requestBody:    `{"title": "Workshop"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Description is a required field, field Date is a required field, field Location is a required field"}`,
		},
		{
			name:    "Invalid date",
			eventID: "1",
			requestBody: `{
				"title": "Workshop",
				"description": "hands-on",
				"date": "03/02/2025",
				"location": "Milan"
			}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"invalid date format"}`,
		},
		{
			name:        "Event not found",
			eventID:     "999",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, 999, wantInput).Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Internal server error",
			eventID:     "1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, 1, wantInput).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/events/{id}", New(logger, mockUpdater))

			req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("/events/%s", tc.eventID), bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockUpdater := mocks.NewEventUpdater(t)
	handler := New(logger, mockUpdater)

	req, err := http.NewRequest(http.MethodPut, "/", bytes.NewBufferString(validBody))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "event id is required")
}
