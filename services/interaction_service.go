package services

import (
	"time"

	"contact-hub/models"

	"github.com/google/uuid"
)

// InteractionService handles business logic for contact interaction notes
type InteractionService struct {
	repo InteractionRepository
}

// NewInteractionService creates a new interaction service
func NewInteractionService(repo InteractionRepository) *InteractionService {
	return &InteractionService{repo: repo}
}

// Create records an interaction note against a contact. The interaction
// timestamp defaults to now; a custom action requires a description.
func (s *InteractionService) Create(contactID string, req models.CreateInteractionRequest, userID string) (*models.ContactInteraction, error) {
	contact, err := s.repo.GetContact(contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if req.Action == models.ActionCustom && req.CustomActionDescription == "" {
		return nil, ErrCustomActionRequired
	}

	now := time.Now().UTC()
	interactionTS := now
	if req.InteractionTimestamp != nil {
		interactionTS = req.InteractionTimestamp.UTC()
	}

	interaction := &models.ContactInteraction{
		ID:                      uuid.New().String(),
		ContactID:               contactID,
		Note:                    req.Note,
		InteractionTimestamp:    interactionTS,
		Action:                  req.Action,
		CustomActionDescription: req.CustomActionDescription,
		ActionTimestamp:         req.ActionTimestamp,
		CreatedByID:             userID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := s.repo.CreateInteraction(interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *InteractionService) Get(id string) (*models.ContactInteraction, error) {
	interaction, err := s.repo.GetInteraction(id)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, ErrInteractionNotFound
	}
	return interaction, nil
}

func (s *InteractionService) List(limit, offset int) ([]models.ContactInteraction, int, error) {
	return s.repo.ListInteractions(limit, offset)
}

func (s *InteractionService) ListByContact(contactID string, limit, offset int) ([]models.ContactInteraction, int, error) {
	contact, err := s.repo.GetContact(contactID)
	if err != nil {
		return nil, 0, err
	}
	if contact == nil {
		return nil, 0, ErrContactNotFound
	}
	return s.repo.ListInteractionsByContact(contactID, limit, offset)
}

func (s *InteractionService) Last(contactID string) (*models.ContactInteraction, error) {
	contact, err := s.repo.GetContact(contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	interaction, err := s.repo.GetLastInteraction(contactID)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, ErrInteractionNotFound
	}
	return interaction, nil
}

func (s *InteractionService) PendingActions(limit, offset int) ([]models.ContactInteraction, int, error) {
	return s.repo.ListPendingActions(limit, offset)
}

func (s *InteractionService) Update(id string, req models.UpdateInteractionRequest) (*models.ContactInteraction, error) {
	interaction, err := s.repo.GetInteraction(id)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, ErrInteractionNotFound
	}

	if req.Note != nil {
		interaction.Note = *req.Note
	}
	if req.InteractionTimestamp != nil {
		interaction.InteractionTimestamp = req.InteractionTimestamp.UTC()
	}
	if req.Action != nil {
		interaction.Action = *req.Action
	}
	if req.CustomActionDescription != nil {
		interaction.CustomActionDescription = *req.CustomActionDescription
	}
	if req.ActionTimestamp != nil {
		interaction.ActionTimestamp = req.ActionTimestamp
	}

	if interaction.Action == models.ActionCustom && interaction.CustomActionDescription == "" {
		return nil, ErrCustomActionRequired
	}

	if err := s.repo.UpdateInteraction(interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *InteractionService) Delete(id string) error {
	deleted, err := s.repo.SoftDeleteInteraction(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInteractionNotFound
	}
	return nil
}
