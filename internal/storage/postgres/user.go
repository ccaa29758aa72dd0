package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventdesk/internal/models"
	"eventdesk/internal/storage"

	"github.com/google/uuid"
)

func (s *Storage) CreateUser(user models.User) (*models.User, error) {
	const op = "storage.postgres.CreateUser"

	user.ID = uuid.New().String()

	err := s.DB.QueryRow(
		`INSERT INTO users (id, username, email, password, role, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		user.ID, user.Username, user.Email, user.Password, user.Role, user.IsApproved,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

// UserByEmail returns the full row including the password hash; callers
// must not serialise it back out.
func (s *Storage) UserByEmail(email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	var u models.User
	err := s.DB.QueryRow(
		`SELECT id, username, email, password, role, is_approved, created_at, updated_at
		 FROM users
		 WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

func (s *Storage) PendingOrganizers() ([]models.User, error) {
	const op = "storage.postgres.PendingOrganizers"

	rows, err := s.DB.Query(
		`SELECT id, username, email, role, is_approved, created_at, updated_at
		 FROM users
		 WHERE role = $1 AND is_approved = FALSE
		 ORDER BY created_at ASC`,
		models.RoleOrganizer,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		err = rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan user: %w", op, err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Storage) ApproveOrganizer(id string) (*models.User, error) {
	const op = "storage.postgres.ApproveOrganizer"

	var u models.User
	err := s.DB.QueryRow(
		`UPDATE users
		 SET is_approved = TRUE, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, username, email, role, is_approved, created_at, updated_at`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}
