// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/studyhall/studyhall/internal/models"
)

// ErrNotFound is returned when a referenced user or group does not exist.
// Implementations must convert their own "no rows" conditions into this
// error so callers never see a storage-specific lookup failure.
var ErrNotFound = errors.New("not found")

// Store defines the interface for user and study group storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Group membership is a symmetric relation: a user's groups and a group's
// members are two views of the same mapping, and implementations must keep
// both consistent. Every mutating method applies all of its writes in a
// single transaction.
type Store interface {
	// CreateUser persists a new user. The user.ID and user.CreatedAt
	// fields are populated by the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID. Returns ErrNotFound if missing.
	GetUser(ctx context.Context, userID int64) (*models.User, error)

	// ListUsers retrieves all users in creation order.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// GetUserGroups retrieves every group the user is a member of,
	// owned groups included. Returns ErrNotFound if the user is missing.
	GetUserGroups(ctx context.Context, userID int64) ([]*models.StudyGroup, error)

	// GetOwnedGroups retrieves the groups whose owner is the given user.
	GetOwnedGroups(ctx context.Context, ownerID int64) ([]*models.StudyGroup, error)

	// CreateGroup persists a new group and enrolls the owner as its first
	// member in the same transaction. group.ID and group.CreatedAt are
	// populated by the store (CreatedAt only when zero).
	CreateGroup(ctx context.Context, group *models.StudyGroup) error

	// GetGroup retrieves a group by ID, members included.
	// Returns ErrNotFound if missing.
	GetGroup(ctx context.Context, groupID int64) (*models.StudyGroup, error)

	// ListGroups retrieves all groups, members included, in natural
	// (insertion) order.
	ListGroups(ctx context.Context) ([]*models.StudyGroup, error)

	// SearchGroups retrieves all groups with the given subject.
	SearchGroups(ctx context.Context, subject models.Subject) ([]*models.StudyGroup, error)

	// GetGroupMembers retrieves a group's members in insertion order.
	// Returns ErrNotFound if the group is missing.
	GetGroupMembers(ctx context.Context, groupID int64) ([]*models.User, error)

	// AddMember links a user to a group. Adding an existing member is a
	// no-op, so the relation never holds duplicates.
	AddMember(ctx context.Context, groupID, userID int64) error

	// RemoveMember unlinks a user from a group. Removing a non-member is
	// a no-op.
	RemoveMember(ctx context.Context, groupID, userID int64) error

	// DeleteGroup removes every membership of the group and then the
	// group itself, in one transaction.
	DeleteGroup(ctx context.Context, groupID int64) error

	// Ping verifies the underlying storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
