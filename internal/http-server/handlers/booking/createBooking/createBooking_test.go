package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventdesk/internal/http-server/handlers/booking/createBooking/mocks"
	"eventdesk/internal/http-server/middleware/mwauth"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	const (
		userID       = "2f1e7a54-0b5c-4b0e-9c1f-7d2a45e6b981"
		ticketTypeID = "c57a9ed2-6f1b-4b4e-8a6e-2d9745c3e1a0"
	)

	testCases := []struct {
		name           string
		requestBody    string
		authenticated  bool
		mockSetup      func(mock *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Success",
			requestBody:   `{"ticketTypeId": "` + ticketTypeID + `"}`,
			authenticated: true,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", ticketTypeID, userID).Return(&models.Booking{
					ID:           "b9a3e6c1-4d2f-4a8b-9e0c-1f5d7a2b3c4e",
					UserID:       userID,
					TicketTypeID: ticketTypeID,
					Status:       models.BookingConfirmed,
					BookingDate:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var booking models.Booking
				require.NoError(t, json.Unmarshal([]byte(body), &booking))
				assert.Equal(t, "b9a3e6c1-4d2f-4a8b-9e0c-1f5d7a2b3c4e", booking.ID)
				assert.Equal(t, models.BookingConfirmed, booking.Status)
				assert.Equal(t, ticketTypeID, booking.TicketTypeID)
			},
		},
		{
			name:           "Not authenticated",
			requestBody:    `{"ticketTypeId": "` + ticketTypeID + `"}`,
			authenticated:  false,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"No token provided"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			authenticated:  true,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"failed to decode request"}`,
		},
		{
			name:           "Missing ticketTypeId",
			requestBody:    `{}`,
			authenticated:  true,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "TicketTypeID")
				assert.Contains(t, body, "required")
			},
		},
		{
			name:          "Ticket type not found",
			requestBody:   `{"ticketTypeId": "nonexistent-id"}`,
			authenticated: true,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", "nonexistent-id", userID).Return(nil, storage.ErrTicketTypeNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Ticket type not found"}`,
		},
		{
			name:          "Sold out",
			requestBody:   `{"ticketTypeId": "` + ticketTypeID + `"}`,
			authenticated: true,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", ticketTypeID, userID).Return(nil, storage.ErrSoldOut)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Tickets sold out"}`,
		},
		{
			name:          "Transient conflict is retryable",
			requestBody:   `{"ticketTypeId": "` + ticketTypeID + `"}`,
			authenticated: true,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", ticketTypeID, userID).Return(nil, storage.ErrTransient)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"message":"Booking temporarily unavailable, please retry"}`,
		},
		{
			name:          "Internal server error",
			requestBody:   `{"ticketTypeId": "` + ticketTypeID + `"}`,
			authenticated: true,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", ticketTypeID, userID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(mwauth.WithIdentity(req.Context(), userID, models.RoleAttendee))
			}

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

// A validation failure must be rejected before the storage layer is
// ever consulted.
func TestCreateBookingValidationSkipsStorage(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewBookingCreator(t)
	handler := New(logger, mockCreator)

	req, err := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(`{"ticketTypeId": ""}`))
	require.NoError(t, err)
	req = req.WithContext(mwauth.WithIdentity(req.Context(), "user-1", models.RoleAttendee))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCreator.AssertNotCalled(t, "CreateBooking")
}
