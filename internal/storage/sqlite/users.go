package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
)

// CreateUser inserts a new user and assigns its ID.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, created_at) VALUES (?, ?)",
		user.Name, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM users WHERE id = ?",
		userID,
	).Scan(&user.ID, &user.Name, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ListUsers retrieves all users in creation order.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM users ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// GetUserGroups retrieves every group the user belongs to, owned groups
// included (the owner is always a member).
func (s *SQLiteStore) GetUserGroups(ctx context.Context, userID int64) ([]*models.StudyGroup, error) {
	// Missing user must surface as not-found, not as an empty list.
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.queryGroups(ctx, `
		SELECT g.id, g.name, g.subject, g.owner_id, g.created_at
		FROM group_members gm
		JOIN study_groups g ON g.id = gm.group_id
		WHERE gm.user_id = ?
		ORDER BY gm.rowid`,
		userID,
	)
}

// GetOwnedGroups retrieves the groups owned by the given user.
func (s *SQLiteStore) GetOwnedGroups(ctx context.Context, ownerID int64) ([]*models.StudyGroup, error) {
	return s.queryGroups(ctx, `
		SELECT id, name, subject, owner_id, created_at
		FROM study_groups
		WHERE owner_id = ?
		ORDER BY id`,
		ownerID,
	)
}
