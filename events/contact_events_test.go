package events

import (
	"testing"

	"contact-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactDeleted(t *testing.T) {
	contact := &models.Contact{
		ID:        "c1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}

	ev := BuildContactDeleted("contact-hub", contact, "user-1")

	assert.Equal(t, ContactDeleted, ev.Type)
	assert.Equal(t, "contact-hub/contacts/c1", ev.Source)
	assert.Equal(t, "/contact/c1", ev.Subject)
	assert.Equal(t, "user-1", ev.UserID)
	assert.Equal(t, map[string]string{"contact_id": "c1"}, ev.Labels)

	// Deleted events carry the last full snapshot of the contact so
	// consumers do not have to fetch a row that is already gone.
	got, ok := ev.Data["contact"].(*models.Contact)
	require.True(t, ok)
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "Ada Lovelace", ev.Data["contact_name"])
}

func TestBuildContactCreated(t *testing.T) {
	contact := &models.Contact{ID: "c2", FirstName: "Grace", CreatedByID: "user-2"}

	ev := BuildContactCreated("contact-hub", contact)

	assert.Equal(t, ContactCreated, ev.Type)
	assert.Equal(t, "user-2", ev.UserID)
	assert.Equal(t, "contact-hub/contacts/c2", ev.Source)
	assert.Equal(t, contact, ev.Data["contact"])
	assert.Contains(t, ev.Tags, "contact_id:c2")
}
