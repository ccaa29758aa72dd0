package createReview

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdesk/internal/http-server/handlers/review/createReview/mocks"
	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	const userID = "2f1e7a54-0b5c-4b0e-9c1f-7d2a45e6b981"

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ReviewCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"eventId": "e1", "rating": 5, "comment": "great event"}`,
			mockSetup: func(m *mocks.ReviewCreator) {
				m.On("CreateReview", models.Review{
					EventID: "e1",
					UserID:  userID,
					Rating:  5,
					Comment: "great event",
				}).Return(&models.Review{
					ID:      "r1",
					EventID: "e1",
					UserID:  userID,
					Rating:  5,
					Comment: "great event",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var review models.Review
				require.NoError(t, json.Unmarshal([]byte(body), &review))
				assert.Equal(t, "r1", review.ID)
				assert.Equal(t, 5, review.Rating)
			},
		},
		{
			name:        "Comment is optional",
			requestBody: `{"eventId": "e1", "rating": 3}`,
			mockSetup: func(m *mocks.ReviewCreator) {
				m.On("CreateReview", models.Review{
					EventID: "e1",
					UserID:  userID,
					Rating:  3,
				}).Return(&models.Review{ID: "r2", Rating: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.ReviewCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"failed to decode request"}`,
		},
		{
			name:           "Rating above range",
			requestBody:    `{"eventId": "e1", "rating": 6}`,
			mockSetup:      func(m *mocks.ReviewCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Rating")
			},
		},
		{
			name:           "Rating missing",
			requestBody:    `{"eventId": "e1"}`,
			mockSetup:      func(m *mocks.ReviewCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Rating")
			},
		},
		{
			name:        "Event not found",
			requestBody: `{"eventId": "missing", "rating": 4}`,
			mockSetup: func(m *mocks.ReviewCreator) {
				m.On("CreateReview", models.Review{
					EventID: "missing",
					UserID:  userID,
					Rating:  4,
				}).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Event not found"}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"eventId": "e1", "rating": 4}`,
			mockSetup: func(m *mocks.ReviewCreator) {
				m.On("CreateReview", models.Review{
					EventID: "e1",
					UserID:  userID,
					Rating:  4,
				}).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"failed to create review"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewReviewCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(mwauth.WithIdentity(req.Context(), userID, models.RoleAttendee))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
