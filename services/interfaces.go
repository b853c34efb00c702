package services

import (
	"contact-hub/database"
	"contact-hub/events"
	"contact-hub/models"
	"time"
)

// EventSink receives domain events for asynchronous publishing
type EventSink interface {
	Enqueue(event events.Event)
}

// ContactRepository defines the data access needed by ContactService
type ContactRepository interface {
	CreateContact(c *models.Contact) error
	GetContact(id string) (*models.Contact, error)
	GetContactByEmail(email string) (*models.Contact, error)
	GetContactByPhone(phone string) (*models.Contact, error)
	ListContacts(limit, offset int) ([]models.Contact, int, error)
	ListDeletedContacts(limit, offset int) ([]models.Contact, int, error)
	SearchContactsText(q string, limit, offset int) ([]models.Contact, int, error)
	SearchContacts(filters database.FilterSet) ([]models.Contact, error)
	UpdateContact(c *models.Contact) error
	SoftDeleteContact(id string) (bool, error)
	RestoreContact(id string) (bool, error)
	CreateImport(imp *models.Import) error
	GetImport(id string) (*models.Import, error)
}

// ContactListRepository defines the data access needed by ContactListService
type ContactListRepository interface {
	CreateContactList(l *models.ContactList) error
	GetContactList(id string) (*models.ContactList, error)
	ListContactLists(publicOnly bool, limit, offset int) ([]models.ContactList, int, error)
	SearchContactLists(filters database.FilterSet) ([]models.ContactList, error)
	UpdateContactList(l *models.ContactList) error
	SoftDeleteContactList(id string) (bool, error)
	GetContactListMember(listID, contactID string) (*models.ContactListMember, error)
	CreateContactListMember(m *models.ContactListMember) error
	RemoveContactListMember(listID, contactID string) (bool, error)
	GetContactListMembers(listID string) ([]models.Contact, error)
	CountContactListMembers(listID string) (int, error)
	ClearContactListMembers(listID string) (int, error)
	GetContactListsForContact(contactID string) ([]models.ContactList, error)
	GetContact(id string) (*models.Contact, error)
}

// WaitingListRepository defines the data access needed by WaitingListService
type WaitingListRepository interface {
	CreateWaitingList(l *models.WaitingList) error
	GetWaitingList(id string) (*models.WaitingList, error)
	ListWaitingLists(limit, offset int) ([]models.WaitingList, int, error)
	SearchWaitingLists(filters database.FilterSet) ([]models.WaitingList, error)
	UpdateWaitingList(l *models.WaitingList) error
	SoftDeleteWaitingList(id string) (bool, error)
	GetWaitingListMember(listID, contactID string) (*models.WaitingListMember, error)
	CreateWaitingListMember(m *models.WaitingListMember) error
	RemoveWaitingListMember(listID, contactID string) (bool, error)
	GetWaitingListMembers(listID string) ([]models.WaitingListMember, error)
	GetWaitingListMembersByStatus(listID, status string) ([]models.WaitingListMember, error)
	CountWaitingListMembers(listID string) (int, error)
	CountWaitingListMembersByStatus(listID, status string) (int, error)
	UpdateWaitingListMemberStatus(listID, contactID, status string) (bool, error)
	UpdateWaitingListMembersStatusBulk(listID string, contactIDs []string, status string) (int, error)
	ClearWaitingListMembers(listID string) (int, error)
	GetWaitingListsForContact(contactID string) ([]models.WaitingList, error)
	GetContact(id string) (*models.Contact, error)
}

// InteractionRepository defines the data access needed by InteractionService
type InteractionRepository interface {
	CreateInteraction(i *models.ContactInteraction) error
	GetInteraction(id string) (*models.ContactInteraction, error)
	ListInteractions(limit, offset int) ([]models.ContactInteraction, int, error)
	ListInteractionsByContact(contactID string, limit, offset int) ([]models.ContactInteraction, int, error)
	GetLastInteraction(contactID string) (*models.ContactInteraction, error)
	ListPendingActions(limit, offset int) ([]models.ContactInteraction, int, error)
	UpdateInteraction(i *models.ContactInteraction) error
	SoftDeleteInteraction(id string) (bool, error)
	GetContact(id string) (*models.Contact, error)
}

// StatsRepository defines the data access needed by StatsService
type StatsRepository interface {
	CountContacts() (int, error)
	CountContactLists() (int, error)
	CountPublicContactLists() (int, error)
	GetLastContacts(limit int) ([]models.Contact, error)
	ListUpcomingActions(window time.Duration) ([]models.InteractionWithContact, error)
}
