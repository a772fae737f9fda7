package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
)

// CreateGroup inserts a new group and enrolls the owner as its first member
// in a single transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.StudyGroup) error {
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO study_groups (name, subject, owner_id, created_at) VALUES (?, ?, ?, ?)",
		group.Name, group.Subject, group.OwnerID, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new group id: %w", err)
	}
	group.ID = id

	_, err = tx.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id) VALUES (?, ?)",
		group.ID, group.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to enroll owner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID with its members.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID int64) (*models.StudyGroup, error) {
	group := &models.StudyGroup{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, subject, owner_id, created_at FROM study_groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.Subject, &group.OwnerID, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("study group %d: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.loadMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

// ListGroups retrieves all groups with their members, in insertion order.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.StudyGroup, error) {
	return s.queryGroups(ctx, `
		SELECT id, name, subject, owner_id, created_at
		FROM study_groups
		ORDER BY id`,
	)
}

// SearchGroups retrieves all groups studying the given subject.
func (s *SQLiteStore) SearchGroups(ctx context.Context, subject models.Subject) ([]*models.StudyGroup, error) {
	return s.queryGroups(ctx, `
		SELECT id, name, subject, owner_id, created_at
		FROM study_groups
		WHERE subject = ?
		ORDER BY id`,
		subject,
	)
}

// GetGroupMembers retrieves a group's members in insertion order.
func (s *SQLiteStore) GetGroupMembers(ctx context.Context, groupID int64) ([]*models.User, error) {
	// Missing group must surface as not-found, not as an empty list.
	var exists int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM study_groups WHERE id = ?", groupID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("study group %d: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return s.loadMembers(ctx, groupID)
}

// AddMember links a user to a group. The membership primary key makes the
// insert idempotent: joining twice leaves a single membership row.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO group_members (group_id, user_id) VALUES (?, ?)",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// RemoveMember unlinks a user from a group.
func (s *SQLiteStore) RemoveMember(ctx context.Context, groupID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// DeleteGroup removes all memberships of the group and the group itself in
// a single transaction. Destruction is terminal: AUTOINCREMENT guarantees the
// id is never reused.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = ?", groupID,
	); err != nil {
		return fmt.Errorf("failed to remove memberships: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM study_groups WHERE id = ?", groupID,
	); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
