package postgres

import (
	"errors"
	"fmt"

	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (s *Storage) CreateReview(review models.Review) (*models.Review, error) {
	const op = "storage.postgres.CreateReview"

	review.ID = uuid.New().String()

	err := s.DB.QueryRow(
		`INSERT INTO reviews (id, event_id, user_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		review.ID, review.EventID, review.UserID, review.Rating, review.Comment,
	).Scan(&review.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidUUID(err) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &review, nil
}

// ReviewsByEvent returns reviews with the reviewer attached, newest
// first.
func (s *Storage) ReviewsByEvent(eventID string) ([]models.Review, error) {
	const op = "storage.postgres.ReviewsByEvent"

	rows, err := s.DB.Query(
		`SELECT r.id, r.event_id, r.user_id, r.rating, r.comment, r.created_at,
		        u.id, u.username, u.email, u.role, u.is_approved, u.created_at, u.updated_at
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.event_id = $1
		 ORDER BY r.created_at DESC`,
		eventID,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		var u models.User

		err = rows.Scan(
			&r.ID, &r.EventID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt,
			&u.ID, &u.Username, &u.Email, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan review: %w", op, err)
		}

		r.User = &u
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
