package postgres

import (
	"testing"

	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	s := newTestStorage(t)

	organizer := seedUser(t, s, models.RoleAdmin)
	attendee := seedUser(t, s, models.RoleAttendee)
	event, _ := seedEvent(t, s, organizer.ID, 5)

	review, err := s.CreateReview(models.Review{
		EventID: event.ID,
		UserID:  attendee.ID,
		Rating:  4,
		Comment: "solid lineup",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.False(t, review.CreatedAt.IsZero())

	list, err := s.ReviewsByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Rating)
	require.NotNil(t, list[0].User)
	assert.Equal(t, attendee.Username, list[0].User.Username)
}

func TestCreateReviewUnknownEvent(t *testing.T) {
	s := newTestStorage(t)

	attendee := seedUser(t, s, models.RoleAttendee)

	_, err := s.CreateReview(models.Review{
		EventID: uuid.New().String(),
		UserID:  attendee.ID,
		Rating:  3,
	})
	assert.ErrorIs(t, err, storage.ErrEventNotFound)

	_, err = s.CreateReview(models.Review{
		EventID: "not-a-uuid",
		UserID:  attendee.ID,
		Rating:  3,
	})
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestReviewsByEventEmpty(t *testing.T) {
	s := newTestStorage(t)

	organizer := seedUser(t, s, models.RoleAdmin)
	event, _ := seedEvent(t, s, organizer.ID, 5)

	list, err := s.ReviewsByEvent(event.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
