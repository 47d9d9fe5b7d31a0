package registerUser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/http-server/handlers/event/registerUser/mocks"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{"username": "mrossi", "name": "Mario Rossi", "email": "m@example.com"}`

var mario = models.User{Username: "mrossi", Name: "Mario Rossi", Email: "m@example.com"}

func TestRegisterUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventRegistrar)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			eventID:     "1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventRegistrar) {
				m.On("RegisterForEvent", mock.Anything, 1, mario).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			requestBody:    validBody,
			mockSetup:      func(m *mocks.EventRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        "1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Username of wrong type",
			eventID:        "1",
			requestBody:    `{"username": 42, "name": "Mario Rossi", "email": "m@example.com"}`,
			mockSetup:      func(m *mocks.EventRegistrar) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field username has an invalid type"}`,
		},
		{
			name:           "Missing username",
			eventID:        "1",
			requestBody:    `{"name": "Mario Rossi", "email": "m@example.com"}`,
			mockSetup:      func(m *mocks.EventRegistrar) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Username is a required field"}`,
		},
		{
			name:           "Invalid email",
			eventID:        "1",
			requestBody:    `{"username": "mrossi", "name": "Mario Rossi", "email": "not-an-email"}`,
			mockSetup:      func(m *mocks.EventRegistrar) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Email is not a valid email address"}`,
		},
		{
			name:        "Event not found",
			eventID:     "999",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventRegistrar) {
				m.On("RegisterForEvent", mock.Anything, 999, mario).Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Duplicate registration",
			eventID:     "1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventRegistrar) {
				m.On("RegisterForEvent", mock.Anything, 1, mario).
					Return(fmt.Errorf("%w: duplicate key", storage.ErrRegistrationFailed))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"registration failed"}`,
		},
		{
			name:        "Internal server error",
			eventID:     "1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventRegistrar) {
				m.On("RegisterForEvent", mock.Anything, 1, mario).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRegistrar := mocks.NewEventRegistrar(t)
			tc.mockSetup(mockRegistrar)

			router := chi.NewRouter()
			router.Post("/events/{id}/register", New(logger, mockRegistrar))

			url := "/events/" + tc.eventID + "/register"
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestSecondIdenticalRegistrationIsRejected(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockRegistrar := mocks.NewEventRegistrar(t)

	mockRegistrar.On("RegisterForEvent", mock.Anything, 1, mario).Return(nil).Once()
	mockRegistrar.On("RegisterForEvent", mock.Anything, 1, mario).Return(storage.ErrRegistrationFailed).Once()

	router := chi.NewRouter()
	router.Post("/events/{id}/register", New(logger, mockRegistrar))

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/events/1/register", bytes.NewBufferString(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, codes)
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	expectedResponse := response.OK()
	var actualResponse RegistrationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualResponse))

	assert.Equal(t, expectedResponse.Status, actualResponse.Status)
	assert.Equal(t, expectedResponse.Error, actualResponse.Error)
}

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockRegistrar := mocks.NewEventRegistrar(t)
	handler := New(logger, mockRegistrar)

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(validBody))
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "123")

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	req = req.WithContext(ctx)

	mockRegistrar.On("RegisterForEvent", mock.Anything, 123, mario).Return(nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockRegistrar := mocks.NewEventRegistrar(t)
	handler := New(logger, mockRegistrar)

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(validBody))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "event id is required")
}
