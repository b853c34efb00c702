package database

import (
	"testing"
	"time"

	"contact-hub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWaitingList(name string) *models.WaitingList {
	now := time.Now().UTC()
	return &models.WaitingList{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "test waiting list",
		CreatedByID: "test-user",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func addWaitingMember(t *testing.T, repo *Repository, listID, contactID, status string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, repo.CreateWaitingListMember(&models.WaitingListMember{
		ID:            uuid.New().String(),
		WaitingListID: listID,
		ContactID:     contactID,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))
}

func TestWaitingListCRUD(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	list := newTestWaitingList("Beta Access")
	require.NoError(t, repo.CreateWaitingList(list))

	t.Run("Fetch and update", func(t *testing.T) {
		got, err := repo.GetWaitingList(list.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Beta Access", got.Name)

		list.Description = "Early access program"
		require.NoError(t, repo.UpdateWaitingList(list))

		got, err = repo.GetWaitingList(list.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Early access program", got.Description)
	})

	t.Run("Search by name", func(t *testing.T) {
		lists, err := repo.SearchWaitingLists(FilterSet{
			"name": {Operator: "like", Value: "%beta%"},
		})
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, list.ID, lists[0].ID)
	})

	t.Run("Soft delete hides the list", func(t *testing.T) {
		deleted, err := repo.SoftDeleteWaitingList(list.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.GetWaitingList(list.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestWaitingListMemberStatus(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	list := newTestWaitingList("Waitlist")
	require.NoError(t, repo.CreateWaitingList(list))

	ada := newTestContact("Ada", "Lovelace", "", "")
	grace := newTestContact("Grace", "Hopper", "", "")
	alan := newTestContact("Alan", "Turing", "", "")
	for _, c := range []*models.Contact{ada, grace, alan} {
		require.NoError(t, repo.CreateContact(c))
	}

	addWaitingMember(t, repo, list.ID, ada.ID, models.MemberStatusPending)
	addWaitingMember(t, repo, list.ID, grace.ID, models.MemberStatusPending)
	addWaitingMember(t, repo, list.ID, alan.ID, models.MemberStatusApproved)

	t.Run("Members by status", func(t *testing.T) {
		pending, err := repo.GetWaitingListMembersByStatus(list.ID, models.MemberStatusPending)
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		count, err := repo.CountWaitingListMembersByStatus(list.ID, models.MemberStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Update one member's status", func(t *testing.T) {
		updated, err := repo.UpdateWaitingListMemberStatus(list.ID, ada.ID, models.MemberStatusNotified)
		require.NoError(t, err)
		assert.True(t, updated)

		m, err := repo.GetWaitingListMember(list.ID, ada.ID)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, models.MemberStatusNotified, m.Status)

		updated, err = repo.UpdateWaitingListMemberStatus(list.ID, uuid.New().String(), models.MemberStatusNotified)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("Bulk status update only touches named members", func(t *testing.T) {
		updated, err := repo.UpdateWaitingListMembersStatusBulk(list.ID, []string{grace.ID, alan.ID}, models.MemberStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, 2, updated)

		m, err := repo.GetWaitingListMember(list.ID, ada.ID)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, models.MemberStatusNotified, m.Status)

		count, err := repo.CountWaitingListMembersByStatus(list.ID, models.MemberStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Duplicate live membership rejected by index", func(t *testing.T) {
		now := time.Now().UTC()
		err := repo.CreateWaitingListMember(&models.WaitingListMember{
			ID:            uuid.New().String(),
			WaitingListID: list.ID,
			ContactID:     ada.ID,
			Status:        models.MemberStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		assert.Error(t, err)
	})

	t.Run("Waiting lists for contact", func(t *testing.T) {
		lists, err := repo.GetWaitingListsForContact(ada.ID)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, list.ID, lists[0].ID)
	})

	t.Run("Remove and clear", func(t *testing.T) {
		removed, err := repo.RemoveWaitingListMember(list.ID, ada.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		count, err := repo.CountWaitingListMembers(list.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		cleared, err := repo.ClearWaitingListMembers(list.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, cleared)

		count, err = repo.CountWaitingListMembers(list.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
