package updateEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdesk/internal/http-server/handlers/event/updateEvent/mocks"
	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	const organizerID = "org-1"

	validBody := `{
		"title": "Go Conference 2025",
		"description": "Updated description",
		"date": "2025-09-01T10:00:00Z",
		"location": "Munich",
		"category": "Tech"
	}`

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "e1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "e1", organizerID, mock.MatchedBy(func(upd models.Event) bool {
					return upd.Title == "Go Conference 2025" && upd.Location == "Munich"
				})).Return(&models.Event{
					ID:       "e1",
					Title:    "Go Conference 2025",
					Location: "Munich",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var event models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &event))
				assert.Equal(t, "Go Conference 2025", event.Title)
			},
		},
		{
			name:           "Invalid JSON",
			eventID:        "e1",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"failed to decode request"}`,
		},
		{
			name:           "Missing required fields",
			eventID:        "e1",
			requestBody:    `{"description": "only a description"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Title")
				assert.Contains(t, body, "required")
			},
		},
		{
			name:        "Not found",
			eventID:     "missing",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "missing", organizerID, mock.AnythingOfType("models.Event")).
					Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Event not found"}`,
		},
		{
			name:        "Not the owner",
			eventID:     "e1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "e1", organizerID, mock.AnythingOfType("models.Event")).
					Return(nil, storage.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:        "Storage failure",
			eventID:     "e1",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "e1", organizerID, mock.AnythingOfType("models.Event")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			router := chi.NewRouter()
			router.Put("/events/{id}", handler)

			req, err := http.NewRequest(http.MethodPut, "/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(mwauth.WithIdentity(req.Context(), organizerID, models.RoleOrganizer))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
