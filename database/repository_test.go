package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"contact-hub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "contact-hub-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := New(dbPath)
	require.NoError(t, err)

	err = db.Migrate()
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func newTestContact(firstName, lastName, email, phone string) *models.Contact {
	now := time.Now().UTC()
	return &models.Contact{
		ID:          uuid.New().String(),
		FirstName:   firstName,
		LastName:    lastName,
		ContactType: "personal",
		PhoneType:   "mobile",
		Email:       email,
		Phone:       phone,
		IsActive:    true,
		CreatedByID: "test-user",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestContactCRUD(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	t.Run("Create and fetch", func(t *testing.T) {
		contact := newTestContact("Ada", "Lovelace", "ada@example.com", "+1111111")
		contact.Company = "Analytical Engines"
		require.NoError(t, repo.CreateContact(contact))

		got, err := repo.GetContact(contact.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "Lovelace", got.LastName)
		assert.Equal(t, "Analytical Engines", got.Company)
		assert.True(t, got.IsActive)
		assert.Nil(t, got.DeletedAt)
	})

	t.Run("Fetch by email and phone", func(t *testing.T) {
		contact := newTestContact("Grace", "Hopper", "grace@example.com", "+2222222")
		require.NoError(t, repo.CreateContact(contact))

		byEmail, err := repo.GetContactByEmail("grace@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, contact.ID, byEmail.ID)

		byPhone, err := repo.GetContactByPhone("+2222222")
		require.NoError(t, err)
		require.NotNil(t, byPhone)
		assert.Equal(t, contact.ID, byPhone.ID)
	})

	t.Run("Missing contact returns nil without error", func(t *testing.T) {
		got, err := repo.GetContact(uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Duplicate live email rejected by index", func(t *testing.T) {
		first := newTestContact("Alan", "Turing", "alan@example.com", "")
		require.NoError(t, repo.CreateContact(first))

		dup := newTestContact("Other", "Alan", "alan@example.com", "")
		assert.Error(t, repo.CreateContact(dup))
	})

	t.Run("Empty emails do not collide", func(t *testing.T) {
		a := newTestContact("NoEmail", "One", "", "")
		b := newTestContact("NoEmail", "Two", "", "")
		require.NoError(t, repo.CreateContact(a))
		require.NoError(t, repo.CreateContact(b))
	})

	t.Run("Update rewrites the row", func(t *testing.T) {
		contact := newTestContact("Edsger", "Dijkstra", "edsger@example.com", "+3333333")
		require.NoError(t, repo.CreateContact(contact))

		contact.Company = "THE"
		contact.City = "Eindhoven"
		contact.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.UpdateContact(contact))

		got, err := repo.GetContact(contact.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "THE", got.Company)
		assert.Equal(t, "Eindhoven", got.City)
	})
}

func TestContactSoftDelete(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	contact := newTestContact("Barbara", "Liskov", "barbara@example.com", "+4444444")
	require.NoError(t, repo.CreateContact(contact))

	t.Run("Soft delete hides the contact", func(t *testing.T) {
		deleted, err := repo.SoftDeleteContact(contact.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.GetContact(contact.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Deleted contact shows up in deleted listing", func(t *testing.T) {
		deleted, total, err := repo.ListDeletedContacts(10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, deleted, 1)
		assert.Equal(t, contact.ID, deleted[0].ID)
		assert.NotNil(t, deleted[0].DeletedAt)
	})

	t.Run("Deleted email can be reused", func(t *testing.T) {
		reuse := newTestContact("New", "Barbara", "barbara@example.com", "")
		require.NoError(t, repo.CreateContact(reuse))
	})

	t.Run("Restore brings the contact back", func(t *testing.T) {
		restored, err := repo.RestoreContact(contact.ID)
		require.NoError(t, err)
		assert.True(t, restored)

		got, err := repo.GetContact(contact.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.DeletedAt)
	})

	t.Run("Soft delete of missing contact reports false", func(t *testing.T) {
		deleted, err := repo.SoftDeleteContact(uuid.New().String())
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestListContactsPagination(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		c := newTestContact("Contact", string(rune('A'+i)), "", "")
		c.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		c.UpdatedAt = c.CreatedAt
		require.NoError(t, repo.CreateContact(c))
	}

	contacts, total, err := repo.ListContacts(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, contacts, 2)

	// Newest first
	assert.Equal(t, "E", contacts[0].LastName)
	assert.Equal(t, "D", contacts[1].LastName)

	contacts, total, err = repo.ListContacts(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, contacts, 1)
	assert.Equal(t, "A", contacts[0].LastName)
}

func TestSearchContactsText(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ada := newTestContact("Ada", "Lovelace", "ada@engines.io", "")
	ada.Company = "Analytical Engines"
	require.NoError(t, repo.CreateContact(ada))

	grace := newTestContact("Grace", "Hopper", "grace@navy.mil", "")
	grace.Notes = "Compiler pioneer"
	require.NoError(t, repo.CreateContact(grace))

	t.Run("Matches across fields case-insensitively", func(t *testing.T) {
		results, total, err := repo.SearchContactsText("ANALYTICAL", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, results, 1)
		assert.Equal(t, ada.ID, results[0].ID)
	})

	t.Run("All terms must match", func(t *testing.T) {
		results, total, err := repo.SearchContactsText("grace compiler", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, results, 1)
		assert.Equal(t, grace.ID, results[0].ID)

		_, total, err = repo.SearchContactsText("grace engines", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("LIKE wildcards in the query match literally", func(t *testing.T) {
		underscored := newTestContact("John", "Doe", "john_doe@corp.io", "")
		require.NoError(t, repo.CreateContact(underscored))

		lookalike, _, err := repo.SearchContactsText("johnxdoe", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, lookalike)

		results, total, err := repo.SearchContactsText("john_doe", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, results, 1)
		assert.Equal(t, underscored.ID, results[0].ID)

		percent, _, err := repo.SearchContactsText("%", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, percent)
	})

	t.Run("Soft-deleted contacts are excluded", func(t *testing.T) {
		_, err := repo.SoftDeleteContact(ada.ID)
		require.NoError(t, err)

		_, total, err := repo.SearchContactsText("analytical", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestSearchContactsFilters(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	a := newTestContact("Ken", "Thompson", "ken@bell.com", "")
	a.Company = "Bell Labs"
	require.NoError(t, repo.CreateContact(a))

	b := newTestContact("Dennis", "Ritchie", "dmr@bell.com", "")
	b.Company = "Bell Labs"
	b.IsActive = false
	require.NoError(t, repo.CreateContact(b))

	t.Run("Equality filter", func(t *testing.T) {
		results, err := repo.SearchContacts(FilterSet{
			"last_name": {Operator: "eq", Value: "Thompson"},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, a.ID, results[0].ID)
	})

	t.Run("Like filter", func(t *testing.T) {
		results, err := repo.SearchContacts(FilterSet{
			"company": {Operator: "like", Value: "%bell%"},
		})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Boolean filter", func(t *testing.T) {
		results, err := repo.SearchContacts(FilterSet{
			"is_active": {Operator: "eq", Value: false},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, b.ID, results[0].ID)
	})

	t.Run("In filter", func(t *testing.T) {
		results, err := repo.SearchContacts(FilterSet{
			"last_name": {Operator: "in", Value: []any{"Thompson", "Ritchie"}},
		})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Unknown field is rejected", func(t *testing.T) {
		_, err := repo.SearchContacts(FilterSet{
			"password": {Operator: "eq", Value: "x"},
		})
		require.Error(t, err)
		var ferr *FilterError
		assert.ErrorAs(t, err, &ferr)
	})
}

func TestImportRoundTrip(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	t.Run("Create and fetch", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		imp := &models.Import{
			ID:                uuid.New().String(),
			Settings:          map[string]string{"file_name": "import.csv"},
			ProcessedContacts: 5,
			FailedContacts:    2,
			UserID:            "test-user",
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		require.NoError(t, repo.CreateImport(imp))

		got, err := repo.GetImport(imp.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 5, got.ProcessedContacts)
		assert.Equal(t, 2, got.FailedContacts)
		assert.Equal(t, "import.csv", got.Settings["file_name"])
		assert.Equal(t, "test-user", got.UserID)
	})

	t.Run("Missing import returns nil", func(t *testing.T) {
		got, err := repo.GetImport(uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
