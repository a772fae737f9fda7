package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
)

// UserService handles user creation and lookups. It is a thin pass-through
// to the store; the interesting rules live in GroupService.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// CreateUserRequest carries the fields for creating a user.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateUser persists a new user and returns its assigned ID.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (int64, error) {
	slog.Info("CreateUser request received", "name", req.Name)

	if err := checkRequest(req); err != nil {
		return 0, err
	}

	user := &models.User{Name: req.Name}
	if err := s.store.CreateUser(ctx, user); err != nil {
		slog.Error("CreateUser failed", "error", err)
		return 0, err
	}

	slog.Info("User created", "user_id", user.ID)
	return user.ID, nil
}

// ListUsers retrieves all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// GetUserGroups retrieves the groups the user is currently a member of,
// owned groups included.
func (s *UserService) GetUserGroups(ctx context.Context, userID int64) ([]*models.StudyGroup, error) {
	groups, err := s.store.GetUserGroups(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return groups, nil
}
