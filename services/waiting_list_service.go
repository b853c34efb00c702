package services

import (
	"time"

	"contact-hub/database"
	"contact-hub/models"

	"github.com/google/uuid"
)

// WaitingListService handles business logic for waiting lists and their
// status-carrying members
type WaitingListService struct {
	repo WaitingListRepository
}

// NewWaitingListService creates a new waiting list service
func NewWaitingListService(repo WaitingListRepository) *WaitingListService {
	return &WaitingListService{repo: repo}
}

func (s *WaitingListService) Create(req models.CreateWaitingListRequest, userID string) (*models.WaitingList, error) {
	now := time.Now().UTC()
	list := &models.WaitingList{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateWaitingList(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *WaitingListService) Get(id string) (*models.WaitingList, error) {
	list, err := s.repo.GetWaitingList(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrWaitingListNotFound
	}
	return list, nil
}

func (s *WaitingListService) List(limit, offset int) ([]models.WaitingList, int, error) {
	return s.repo.ListWaitingLists(limit, offset)
}

func (s *WaitingListService) Search(rawFilters map[string]any) ([]models.WaitingList, error) {
	filters, err := database.ParseFilters(rawFilters)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchWaitingLists(filters)
}

func (s *WaitingListService) Update(id string, req models.UpdateWaitingListRequest) (*models.WaitingList, error) {
	list, err := s.repo.GetWaitingList(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrWaitingListNotFound
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Description != nil {
		list.Description = *req.Description
	}

	if err := s.repo.UpdateWaitingList(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *WaitingListService) Delete(id string) error {
	deleted, err := s.repo.SoftDeleteWaitingList(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWaitingListNotFound
	}
	return nil
}

// AddMembers adds contacts to a waiting list with the given status
// (pending when empty). Unknown contacts and existing members are skipped.
func (s *WaitingListService) AddMembers(listID string, contactIDs []string, status string) (int, error) {
	if status == "" {
		status = models.MemberStatusPending
	}
	if !models.IsValidMemberStatus(status) {
		return 0, ErrInvalidMemberStatus
	}

	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrWaitingListNotFound
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

		existing, err := s.repo.GetWaitingListMember(listID, contactID)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}

		now := time.Now().UTC()
		member := &models.WaitingListMember{
			ID:            uuid.New().String(),
			WaitingListID: listID,
			ContactID:     contactID,
			Status:        status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.CreateWaitingListMember(member); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

func (s *WaitingListService) RemoveMember(listID, contactID string) error {
	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return err
	}
	if list == nil {
		return ErrWaitingListNotFound
	}

	removed, err := s.repo.RemoveWaitingListMember(listID, contactID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrMemberNotFound
	}
	return nil
}

func (s *WaitingListService) Members(listID string) ([]models.WaitingListMember, error) {
	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrWaitingListNotFound
	}
	return s.repo.GetWaitingListMembers(listID)
}

func (s *WaitingListService) MembersByStatus(listID, status string) ([]models.WaitingListMember, error) {
	if !models.IsValidMemberStatus(status) {
		return nil, ErrInvalidMemberStatus
	}

	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrWaitingListNotFound
	}
	return s.repo.GetWaitingListMembersByStatus(listID, status)
}

func (s *WaitingListService) MemberCount(listID string) (int, error) {
	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrWaitingListNotFound
	}
	return s.repo.CountWaitingListMembers(listID)
}

func (s *WaitingListService) MemberCountByStatus(listID, status string) (int, error) {
	if !models.IsValidMemberStatus(status) {
		return 0, ErrInvalidMemberStatus
	}

	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrWaitingListNotFound
	}
	return s.repo.CountWaitingListMembersByStatus(listID, status)
}

func (s *WaitingListService) IsMember(listID, contactID string) (bool, error) {
	member, err := s.repo.GetWaitingListMember(listID, contactID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

func (s *WaitingListService) MemberStatus(listID, contactID string) (string, error) {
	member, err := s.repo.GetWaitingListMember(listID, contactID)
	if err != nil {
		return "", err
	}
	if member == nil {
		return "", ErrMemberNotFound
	}
	return member.Status, nil
}

func (s *WaitingListService) UpdateMemberStatus(listID, contactID, status string) error {
	if !models.IsValidMemberStatus(status) {
		return ErrInvalidMemberStatus
	}

	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return err
	}
	if list == nil {
		return ErrWaitingListNotFound
	}

	updated, err := s.repo.UpdateWaitingListMemberStatus(listID, contactID, status)
	if err != nil {
		return err
	}
	if !updated {
		return ErrMemberNotFound
	}
	return nil
}

func (s *WaitingListService) UpdateMembersStatusBulk(listID string, contactIDs []string, status string) (int, error) {
	if !models.IsValidMemberStatus(status) {
		return 0, ErrInvalidMemberStatus
	}

	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrWaitingListNotFound
	}

	return s.repo.UpdateWaitingListMembersStatusBulk(listID, contactIDs, status)
}

func (s *WaitingListService) ClearMembers(listID string) (int, error) {
	list, err := s.repo.GetWaitingList(listID)
	if err != nil {
		return 0, err
	}
	if list == nil {
		return 0, ErrWaitingListNotFound
	}
	return s.repo.ClearWaitingListMembers(listID)
}

func (s *WaitingListService) ListsForContact(contactID string) ([]models.WaitingList, error) {
	return s.repo.GetWaitingListsForContact(contactID)
}
