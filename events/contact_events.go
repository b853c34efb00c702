package events

import "contact-hub/models"

// BuildContactCreated builds the event published after a contact is created
func BuildContactCreated(source string, contact *models.Contact) Event {
	ev := newEvent(
		source+"/contacts/"+contact.ID,
		ContactCreated,
		"/contact/"+contact.ID,
		contact.CreatedByID,
		map[string]any{"contact": contact},
	)
	ev.Labels = map[string]string{"contact_id": contact.ID}
	ev.Tags = []string{"contact_id:" + contact.ID}
	return ev
}

// BuildContactUpdated builds the event published after a contact is updated
func BuildContactUpdated(source string, contact *models.Contact, userID string) Event {
	ev := newEvent(
		source+"/contacts/"+contact.ID,
		ContactUpdated,
		"/contact/"+contact.ID,
		userID,
		map[string]any{"contact": contact},
	)
	ev.Labels = map[string]string{"contact_id": contact.ID}
	ev.Tags = []string{"contact_id:" + contact.ID}
	return ev
}

// BuildContactDeleted builds the event published after a contact is soft-deleted
func BuildContactDeleted(source string, contact *models.Contact, userID string) Event {
	ev := newEvent(
		source+"/contacts/"+contact.ID,
		ContactDeleted,
		"/contact/"+contact.ID,
		userID,
		map[string]any{
			"contact":      contact,
			"contact_name": contact.FullName(),
		},
	)
	ev.Labels = map[string]string{"contact_id": contact.ID}
	ev.Tags = []string{"contact_id:" + contact.ID}
	return ev
}

// BuildContactSubscribed builds the event published after a contact joins a list
func BuildContactSubscribed(source string, list *models.ContactList, contact *models.Contact, member *models.ContactListMember) Event {
	ev := newEvent(
		source+"/contact_lists/"+list.ID,
		ContactSubscribed,
		"/contact_list/"+list.ID+"/contact/"+contact.ID,
		contact.CreatedByID,
		map[string]any{
			"contact_list": list,
			"contact":      contact,
			"member":       member,
		},
	)
	ev.Labels = map[string]string{
		"contact_list_id": list.ID,
		"contact_id":      contact.ID,
		"member_id":       member.ID,
	}
	ev.Tags = []string{
		"contact_list_id:" + list.ID,
		"contact_id:" + contact.ID,
		"member_id:" + member.ID,
	}
	return ev
}

// BuildContactUnsubscribed builds the event published after a contact leaves a list
func BuildContactUnsubscribed(source string, list *models.ContactList, contact *models.Contact) Event {
	ev := newEvent(
		source+"/contact_lists/"+list.ID,
		ContactUnsubscribed,
		"/contact_list/"+list.ID+"/contact/"+contact.ID,
		contact.CreatedByID,
		map[string]any{
			"contact_list": list,
			"contact":      contact,
		},
	)
	ev.Labels = map[string]string{
		"contact_list_id": list.ID,
		"contact_id":      contact.ID,
	}
	ev.Tags = []string{
		"contact_list_id:" + list.ID,
		"contact_id:" + contact.ID,
	}
	return ev
}
