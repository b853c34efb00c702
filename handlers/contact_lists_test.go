package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contact-hub/app"
	"contact-hub/handlers"
	"contact-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContact(t *testing.T, application *app.App, firstName, email string) *models.Contact {
	t.Helper()
	contact, err := application.Contacts.Create(models.CreateContactRequest{
		FirstName:   firstName,
		ContactType: "personal",
		PhoneType:   "mobile",
		Email:       email,
	}, "test-user-id")
	require.NoError(t, err)
	return contact
}

func TestContactListLifecycle(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Post("/api/contact-lists", handlers.CreateContactList(application))
	fiberApp.Get("/api/contact-lists/public", handlers.ListPublicContactLists(application))
	fiberApp.Get("/api/contact-lists/:id", handlers.GetContactList(application))
	fiberApp.Put("/api/contact-lists/:id", handlers.UpdateContactList(application))
	fiberApp.Delete("/api/contact-lists/:id", handlers.DeleteContactList(application))

	var listID string

	t.Run("Create requires a name", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/contact-lists", map[string]interface{}{
			"description": "no name",
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Create private list", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/contact-lists", map[string]interface{}{
			"name":        "Newsletter",
			"description": "Monthly newsletter recipients",
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		listID = body["id"].(string)
		assert.Equal(t, "Newsletter", body["name"])
		assert.Equal(t, false, body["is_public"])
	})

	t.Run("Private list absent from public listing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/contact-lists/public", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(0), body["total"])
	})

	t.Run("Update flips visibility", func(t *testing.T) {
		req := jsonRequest(http.MethodPut, "/api/contact-lists/"+listID, map[string]interface{}{
			"is_public": true,
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["is_public"])
		assert.Equal(t, "Newsletter", body["name"])
	})

	t.Run("Delete then fetch returns not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/contact-lists/"+listID, nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/api/contact-lists/"+listID, nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestContactListMembership(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Post("/api/contact-lists/:id/members", handlers.AddContactListMembers(application))
	fiberApp.Get("/api/contact-lists/:id/members", handlers.GetContactListMembers(application))
	fiberApp.Get("/api/contact-lists/:id/members/count", handlers.CountContactListMembers(application))
	fiberApp.Get("/api/contact-lists/:id/members/:contactID/is-member", handlers.IsContactListMember(application))
	fiberApp.Delete("/api/contact-lists/:id/members/:contactID", handlers.RemoveContactListMember(application))
	fiberApp.Delete("/api/contact-lists/:id/members", handlers.ClearContactListMembers(application))
	fiberApp.Get("/api/contact-lists/for-contact/:contactID", handlers.GetContactListsForContact(application))

	list, err := application.ContactLists.Create(models.CreateContactListRequest{
		Name: "VIPs",
	}, "test-user-id")
	require.NoError(t, err)

	alice := seedContact(t, application, "Alice", "alice@example.com")
	bob := seedContact(t, application, "Bob", "bob@example.com")

	t.Run("Add members skips duplicates silently", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/contact-lists/"+list.ID+"/members", map[string]interface{}{
			"contact_ids": []string{alice.ID, bob.ID, alice.ID},
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(2), body["added"])
	})

	t.Run("Unknown list returns not found", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/contact-lists/no-such-list/members", map[string]interface{}{
			"contact_ids": []string{alice.ID},
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Members and count", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/contact-lists/"+list.ID+"/members", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		members := body["members"].([]interface{})
		assert.Len(t, members, 2)
		assert.Equal(t, float64(2), body["count"])

		req = httptest.NewRequest(http.MethodGet, "/api/contact-lists/"+list.ID+"/members/count", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body = decodeBody(t, resp)
		assert.Equal(t, float64(2), body["count"])
	})

	t.Run("Membership check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/contact-lists/"+list.ID+"/members/"+alice.ID+"/is-member", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["is_member"])
	})

	t.Run("Lists for contact", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/contact-lists/for-contact/"+alice.ID, nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		lists := body["contact_lists"].([]interface{})
		require.Len(t, lists, 1)
		assert.Equal(t, list.ID, lists[0].(map[string]interface{})["id"])
	})

	t.Run("Remove member", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/contact-lists/"+list.ID+"/members/"+bob.ID, nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// removing again is a 404
		req = httptest.NewRequest(http.MethodDelete, "/api/contact-lists/"+list.ID+"/members/"+bob.ID, nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Clear members", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/contact-lists/"+list.ID+"/members", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(1), body["removed"])
	})
}

func TestWaitingListMembershipFlow(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Post("/api/waiting-lists", handlers.CreateWaitingList(application))
	fiberApp.Post("/api/waiting-lists/:id/members", handlers.AddWaitingListMembers(application))
	fiberApp.Get("/api/waiting-lists/:id/members/by-status/:status", handlers.GetWaitingListMembersByStatus(application))
	fiberApp.Put("/api/waiting-lists/:id/members/:contactID/status", handlers.UpdateWaitingListMemberStatus(application))
	fiberApp.Get("/api/waiting-lists/:id/members/:contactID/status", handlers.GetWaitingListMemberStatus(application))

	carol := seedContact(t, application, "Carol", "carol@example.com")

	req := jsonRequest(http.MethodPost, "/api/waiting-lists", map[string]interface{}{
		"name": "Beta access",
	})
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	listID := decodeBody(t, resp)["id"].(string)

	t.Run("Members default to pending", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/waiting-lists/"+listID+"/members", map[string]interface{}{
			"contact_ids": []string{carol.ID},
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/api/waiting-lists/"+listID+"/members/"+carol.ID+"/status", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, models.MemberStatusPending, body["status"])
	})

	t.Run("Invalid status rejected", func(t *testing.T) {
		req := jsonRequest(http.MethodPut, "/api/waiting-lists/"+listID+"/members/"+carol.ID+"/status", map[string]interface{}{
			"status": "teleported",
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Status update visible in by-status listing", func(t *testing.T) {
		req := jsonRequest(http.MethodPut, "/api/waiting-lists/"+listID+"/members/"+carol.ID+"/status", map[string]interface{}{
			"status": models.MemberStatusApproved,
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/api/waiting-lists/"+listID+"/members/by-status/"+models.MemberStatusApproved, nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		members := body["members"].([]interface{})
		require.Len(t, members, 1)
		assert.Equal(t, carol.ID, members[0].(map[string]interface{})["contact_id"])
	})
}
