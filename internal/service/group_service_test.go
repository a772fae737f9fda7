package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
	"github.com/studyhall/studyhall/internal/storage/sqlite"
)

func newTestServices(t *testing.T) (*UserService, *GroupService, storage.Store) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewUserService(store), NewGroupService(store), store
}

func createUser(t *testing.T, users *UserService, name string) int64 {
	t.Helper()
	id, err := users.CreateUser(context.Background(), CreateUserRequest{Name: name})
	require.NoError(t, err)
	return id
}

func TestCreateGroupNameLength(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")

	subjects := []models.Subject{models.SubjectMath, models.SubjectChemistry, models.SubjectPhysics}
	for i, length := range []int{5, 17, 30} {
		name := strings.Repeat("a", length)
		_, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
			Name:    name,
			Subject: subjects[i],
			OwnerID: ownerID,
		})
		assert.NoError(t, err, "length %d should be accepted", length)
	}

	for _, length := range []int{0, 1, 2, 3, 4, 31, 50} {
		name := strings.Repeat("a", length)
		_, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
			Name:    name,
			Subject: models.SubjectMath,
			OwnerID: ownerID,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "length %d should be rejected", length)
		assert.Equal(t, "name", verr.Fields[0].Field)
	}
}

func TestCreateGroupInvalidSubject(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")

	for _, subject := range []string{"", "Biology", "math"} {
		_, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
			Name:    "Study buddies",
			Subject: models.Subject(subject),
			OwnerID: ownerID,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "subject %q should be rejected", subject)
	}
}

func TestCreateGroupSubjectConflict(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")

	_, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)

	// Second group with the same subject for the same owner must conflict.
	_, err = groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Evening algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	assert.ErrorIs(t, err, ErrSubjectOwned)

	// A different subject is fine.
	_, err = groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Evening physics", Subject: models.SubjectPhysics, OwnerID: ownerID,
	})
	assert.NoError(t, err)

	// Another owner may reuse the subject.
	otherID := createUser(t, users, "Bob")
	_, err = groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Bob's algebra", Subject: models.SubjectMath, OwnerID: otherID,
	})
	assert.NoError(t, err)
}

func TestCreateGroupMissingOwner(t *testing.T) {
	_, groups, _ := newTestServices(t)
	ctx := context.Background()

	_, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Ghost group", Subject: models.SubjectMath, OwnerID: 42,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Nothing may have been persisted.
	all, err := groups.ListGroups(ctx, models.SortByNone)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateGroupOwnerIsSoleMember(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")

	groupID, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)

	members, err := groups.GetGroupMembers(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, ownerID, members[0].ID)
}

func TestJoinIsBidirectional(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")
	joinerID := createUser(t, users, "Bob")

	groupID, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)

	require.NoError(t, groups.ModifyMembership(ctx, groupID, joinerID, models.OperationJoin))

	members, err := groups.GetGroupMembers(ctx, groupID)
	require.NoError(t, err)
	memberIDs := make([]int64, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}
	assert.ElementsMatch(t, []int64{ownerID, joinerID}, memberIDs)

	joinerGroups, err := users.GetUserGroups(ctx, joinerID)
	require.NoError(t, err)
	require.Len(t, joinerGroups, 1)
	assert.Equal(t, groupID, joinerGroups[0].ID)
}

func TestDoubleJoinKeepsSingleMembership(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")
	joinerID := createUser(t, users, "Bob")

	groupID, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)

	require.NoError(t, groups.ModifyMembership(ctx, groupID, joinerID, models.OperationJoin))
	require.NoError(t, groups.ModifyMembership(ctx, groupID, joinerID, models.OperationJoin))

	members, err := groups.GetGroupMembers(ctx, groupID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestLeaveByNonOwner(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")
	joinerID := createUser(t, users, "Bob")

	groupID, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)
	require.NoError(t, groups.ModifyMembership(ctx, groupID, joinerID, models.OperationJoin))

	require.NoError(t, groups.ModifyMembership(ctx, groupID, joinerID, models.OperationLeave))

	// Group survives with the owner still in it.
	members, err := groups.GetGroupMembers(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, ownerID, members[0].ID)

	joinerGroups, err := users.GetUserGroups(ctx, joinerID)
	require.NoError(t, err)
	assert.Empty(t, joinerGroups)
}

func TestLeaveByOwnerDestroysGroup(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")
	joinerID := createUser(t, users, "Bob")

	groupID, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)
	require.NoError(t, groups.ModifyMembership(ctx, groupID, joinerID, models.OperationJoin))

	require.NoError(t, groups.ModifyMembership(ctx, groupID, ownerID, models.OperationLeave))

	all, err := groups.ListGroups(ctx, models.SortByNone)
	require.NoError(t, err)
	assert.Empty(t, all, "destroyed group must not be listed")

	// No former member lists the group anymore, ex-owner included.
	for _, userID := range []int64{ownerID, joinerID} {
		userGroups, err := users.GetUserGroups(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, userGroups)
	}

	_, err = groups.GetGroupMembers(ctx, groupID)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestModifyMembershipMissingIDs(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")

	groupID, err := groups.CreateGroup(ctx, CreateStudyGroupRequest{
		Name: "Morning algebra", Subject: models.SubjectMath, OwnerID: ownerID,
	})
	require.NoError(t, err)

	err = groups.ModifyMembership(ctx, groupID, 42, models.OperationJoin)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = groups.ModifyMembership(ctx, 42, ownerID, models.OperationJoin)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	var verr *ValidationError
	err = groups.ModifyMembership(ctx, groupID, ownerID, models.GroupOperation("Quit"))
	assert.ErrorAs(t, err, &verr)
}

func TestListGroupsSorting(t *testing.T) {
	users, groups, store := newTestServices(t)
	ctx := context.Background()
	ownerID := createUser(t, users, "Alice")

	// Seed with explicit timestamps so the order is deterministic.
	first := &models.StudyGroup{Name: "Oldest group", Subject: models.SubjectMath, OwnerID: ownerID, CreatedAt: 1000}
	second := &models.StudyGroup{Name: "Middle group", Subject: models.SubjectChemistry, OwnerID: ownerID, CreatedAt: 2000}
	third := &models.StudyGroup{Name: "Newest group", Subject: models.SubjectPhysics, OwnerID: ownerID, CreatedAt: 3000}
	for _, g := range []*models.StudyGroup{second, third, first} {
		require.NoError(t, store.CreateGroup(ctx, g))
	}

	newest, err := groups.ListGroups(ctx, models.SortByNewest)
	require.NoError(t, err)
	require.Len(t, newest, 3)
	assert.Equal(t, []int64{3000, 2000, 1000}, []int64{newest[0].CreatedAt, newest[1].CreatedAt, newest[2].CreatedAt})

	oldest, err := groups.ListGroups(ctx, models.SortByOldest)
	require.NoError(t, err)
	assert.Equal(t, []int64{1000, 2000, 3000}, []int64{oldest[0].CreatedAt, oldest[1].CreatedAt, oldest[2].CreatedAt})

	// None returns every group exactly once, order unspecified.
	none, err := groups.ListGroups(ctx, models.SortByNone)
	require.NoError(t, err)
	seen := map[int64]bool{}
	for _, g := range none {
		assert.False(t, seen[g.ID], "group %d listed twice", g.ID)
		seen[g.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestSearchGroups(t *testing.T) {
	users, groups, _ := newTestServices(t)
	ctx := context.Background()
	alice := createUser(t, users, "Alice")
	bob := createUser(t, users, "Bob")

	for _, req := range []CreateStudyGroupRequest{
		{Name: "Alice's algebra", Subject: models.SubjectMath, OwnerID: alice},
		{Name: "Alice's physics", Subject: models.SubjectPhysics, OwnerID: alice},
		{Name: "Bob's algebra", Subject: models.SubjectMath, OwnerID: bob},
	} {
		_, err := groups.CreateGroup(ctx, req)
		require.NoError(t, err)
	}

	math, err := groups.SearchGroups(ctx, models.SubjectMath, models.SortByNone)
	require.NoError(t, err)
	require.Len(t, math, 2)
	for _, g := range math {
		assert.Equal(t, models.SubjectMath, g.Subject)
	}

	chem, err := groups.SearchGroups(ctx, models.SubjectChemistry, models.SortByNone)
	require.NoError(t, err)
	assert.Empty(t, chem)

	var verr *ValidationError
	_, err = groups.SearchGroups(ctx, models.Subject("Biology"), models.SortByNone)
	assert.ErrorAs(t, err, &verr)
}
