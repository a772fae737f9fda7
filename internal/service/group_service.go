// Package service implements the user and study group business rules on top
// of a storage.Store.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
)

// GroupService enforces the study group membership lifecycle: creation,
// join, leave, and the ownership-triggered destruction of a group.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateStudyGroupRequest carries the fields for creating a study group.
type CreateStudyGroupRequest struct {
	Name    string         `json:"name" validate:"required,min=5,max=30"`
	Subject models.Subject `json:"subject" validate:"required,oneof=Math Chemistry Physics"`
	OwnerID int64          `json:"ownerId"`
}

// CreateGroup creates a new study group owned by req.OwnerID and enrolls the
// owner as its first member. The checks run in a fixed order, all before any
// write: owner existence, field validation, then the per-subject ownership
// conflict.
func (s *GroupService) CreateGroup(ctx context.Context, req CreateStudyGroupRequest) (int64, error) {
	slog.Info("CreateGroup request received",
		"name", req.Name,
		"subject", req.Subject,
		"owner_id", req.OwnerID,
	)

	owner, err := s.store.GetUser(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if err := checkRequest(req); err != nil {
		return 0, err
	}

	// Computed at call time, not cached: the owner's set of owned groups
	// may have changed since any earlier read.
	owned, err := s.store.GetOwnedGroups(ctx, owner.ID)
	if err != nil {
		return 0, err
	}
	for _, g := range owned {
		if g.Subject == req.Subject {
			return 0, ErrSubjectOwned
		}
	}

	group := &models.StudyGroup{
		Name:    req.Name,
		Subject: req.Subject,
		OwnerID: owner.ID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return 0, err
	}

	slog.Info("Study group created", "group_id", group.ID, "subject", group.Subject)
	return group.ID, nil
}

// ListGroups retrieves all study groups, optionally reordered by creation
// timestamp.
func (s *GroupService) ListGroups(ctx context.Context, sortBy models.SortBy) ([]*models.StudyGroup, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	sortGroups(groups, sortBy)
	return groups, nil
}

// SearchGroups retrieves all study groups with the given subject, with the
// same optional ordering as ListGroups.
func (s *GroupService) SearchGroups(ctx context.Context, subject models.Subject, sortBy models.SortBy) ([]*models.StudyGroup, error) {
	if !subject.Valid() {
		return nil, newFieldError("subject", "must be one of Math, Chemistry, Physics")
	}

	groups, err := s.store.SearchGroups(ctx, subject)
	if err != nil {
		return nil, err
	}
	sortGroups(groups, sortBy)
	return groups, nil
}

// GetGroupMembers retrieves the members of a study group.
func (s *GroupService) GetGroupMembers(ctx context.Context, groupID int64) ([]*models.User, error) {
	members, err := s.store.GetGroupMembers(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return members, nil
}

// ModifyMembership applies a join or leave operation for a user on a group.
//
// Join is idempotent: joining a group twice leaves a single membership.
// Leave by a non-owner removes only that user's membership. Leave by the
// owner destroys the group: every member loses the membership and the group
// itself is deleted, all in one store transaction.
func (s *GroupService) ModifyMembership(ctx context.Context, groupID, userID int64, op models.GroupOperation) error {
	slog.Info("ModifyMembership request received",
		"group_id", groupID,
		"user_id", userID,
		"operation", op,
	)

	if !op.Valid() {
		return newFieldError("operation", "must be one of Join, Leave")
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrGroupNotFound
		}
		return err
	}

	switch op {
	case models.OperationJoin:
		if err := s.store.AddMember(ctx, group.ID, user.ID); err != nil {
			slog.Error("Join failed", "group_id", group.ID, "user_id", user.ID, "error", err)
			return err
		}
		slog.Info("User joined group", "group_id", group.ID, "user_id", user.ID)

	case models.OperationLeave:
		if user.ID == group.OwnerID {
			// The owner cannot leave without destroying the group.
			if err := s.store.DeleteGroup(ctx, group.ID); err != nil {
				slog.Error("Group destruction failed", "group_id", group.ID, "error", err)
				return err
			}
			slog.Info("Owner left, group destroyed", "group_id", group.ID, "owner_id", user.ID)
		} else {
			if err := s.store.RemoveMember(ctx, group.ID, user.ID); err != nil {
				slog.Error("Leave failed", "group_id", group.ID, "user_id", user.ID, "error", err)
				return err
			}
			slog.Info("User left group", "group_id", group.ID, "user_id", user.ID)
		}
	}

	return nil
}

// sortGroups reorders groups in memory by creation timestamp. SortByNone
// leaves the store's natural order untouched. The sort is stable so groups
// with equal timestamps keep their relative order.
func sortGroups(groups []*models.StudyGroup, sortBy models.SortBy) {
	switch sortBy {
	case models.SortByOldest:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].CreatedAt < groups[j].CreatedAt
		})
	case models.SortByNewest:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].CreatedAt > groups[j].CreatedAt
		})
	}
}
