package services

import (
	"time"

	"contact-hub/database"
	"contact-hub/events"
	"contact-hub/models"

	"github.com/google/uuid"
)

// ContactListService handles business logic for contact lists and their members
type ContactListService struct {
	repo   ContactListRepository
	events EventSink
	source string
}

// NewContactListService creates a new contact list service
func NewContactListService(repo ContactListRepository, sink EventSink, source string) *ContactListService {
	return &ContactListService{
		repo:   repo,
		events: sink,
		source: source,
	}
}

func (s *ContactListService) Create(req models.CreateContactListRequest, userID string) (*models.ContactList, error) {
	now := time.Now().UTC()
	list := &models.ContactList{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedByID: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateContactList(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ContactListService) Get(id string) (*models.ContactList, error) {
	list, err := s.repo.GetContactList(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrContactListNotFound
	}
	return list, nil
}

func (s *ContactListService) List(publicOnly bool, limit, offset int) ([]models.ContactList, int, error) {
	return s.repo.ListContactLists(publicOnly, limit, offset)
}

func (s *ContactListService) Search(rawFilters map[string]any) ([]models.ContactList, error) {
	filters, err := database.ParseFilters(rawFilters)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchContactLists(filters)
}

func (s *ContactListService) Update(id string, req models.UpdateContactListRequest) (*models.ContactList, error) {
	list, err := s.repo.GetContactList(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrContactListNotFound
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Description != nil {
		list.Description = *req.Description
	}
	if req.IsPublic != nil {
		list.IsPublic = *req.IsPublic
	}

	if err := s.repo.UpdateContactList(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ContactListService) Delete(id string) error {
	deleted, err := s.repo.SoftDeleteContactList(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactListNotFound
	}
	return nil
}

// AddMembers subscribes contacts to a list. Unknown contacts and existing
// members are skipped. A contact_list.contact_subscribed event is published
// for every membership actually created.
func (s *ContactListService) AddMembers(listID string, contactIDs []string) (int, error) {
	list, err := s.repo.GetContactList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrContactListNotFound
	}

	added := 0
	for _, contactID := range contactIDs {
		contact, err := s.repo.GetContact(contactID)
		if err != nil {
			return added, err
		}
		if contact == nil {
			continue
		}

		existing, err := s.repo.GetContactListMember(listID, contactID)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}

		now := time.Now().UTC()
		member := &models.ContactListMember{
			ID:            uuid.New().String(),
			ContactListID: listID,
			ContactID:     contactID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.CreateContactListMember(member); err != nil {
			return added, err
		}
		added++

		s.events.Enqueue(events.BuildContactSubscribed(s.source, list, contact, member))
	}

	return added, nil
}

// RemoveMember soft-removes a contact from a list and publishes
// contact_list.contact_unsubscribed
func (s *ContactListService) RemoveMember(listID, contactID string) error {
	list, err := s.repo.GetContactList(listID)
	if err != nil {
		return err
	}
	if list == nil {
		return ErrContactListNotFound
	}

	contact, err := s.repo.GetContact(contactID)
	if err != nil {
		return err
	}

	removed, err := s.repo.RemoveContactListMember(listID, contactID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrMemberNotFound
	}

	if contact != nil {
		s.events.Enqueue(events.BuildContactUnsubscribed(s.source, list, contact))
	}
	return nil
}

func (s *ContactListService) Members(listID string) ([]models.Contact, error) {
	list, err := s.repo.GetContactList(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrContactListNotFound
	}
	return s.repo.GetContactListMembers(listID)
}

func (s *ContactListService) MemberCount(listID string) (int, error) {
	list, err := s.repo.GetContactList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrContactListNotFound
	}
	return s.repo.CountContactListMembers(listID)
}

func (s *ContactListService) IsMember(listID, contactID string) (bool, error) {
	member, err := s.repo.GetContactListMember(listID, contactID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

func (s *ContactListService) ClearMembers(listID string) (int, error) {
	list, err := s.repo.GetContactList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrContactListNotFound
	}
	return s.repo.ClearContactListMembers(listID)
}

func (s *ContactListService) ListsForContact(contactID string) ([]models.ContactList, error) {
	return s.repo.GetContactListsForContact(contactID)
}
