package services

import (
	"fmt"
	"strings"
	"time"

	"contact-hub/database"
	"contact-hub/events"
	"contact-hub/models"

	"github.com/google/uuid"
)

// ContactService handles business logic for contacts
type ContactService struct {
	repo   ContactRepository
	events EventSink
	source string
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository, sink EventSink, source string) *ContactService {
	return &ContactService{
		repo:   repo,
		events: sink,
		source: source,
	}
}

// Create validates email/phone uniqueness and creates the contact,
// publishing a contact.created event
func (cs *ContactService) Create(req models.CreateContactRequest, userID string) (*models.Contact, error) {
	// Trim before the uniqueness check so a padded value cannot slip past
	// it and trip the unique index instead
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := cs.checkUnique(req.Email, req.Phone, ""); err != nil {
		return nil, err
	}

	contact := newContactFromRequest(req, userID)
	if err := cs.repo.CreateContact(contact); err != nil {
		return nil, err
	}

	cs.events.Enqueue(events.BuildContactCreated(cs.source, contact))
	return contact, nil
}

// BatchCreate validates the whole batch before creating anything, then
// creates the contacts and records an Import row with the outcome counts.
// Per-contact insert failures are counted, not fatal.
func (cs *ContactService) BatchCreate(reqs []models.CreateContactRequest, fileName, userID string) ([]models.Contact, *models.Import, error) {
	if len(reqs) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	for i := range reqs {
		reqs[i].Email = strings.TrimSpace(reqs[i].Email)
		reqs[i].Phone = strings.TrimSpace(reqs[i].Phone)
	}

	if err := cs.validateBatch(reqs); err != nil {
		return nil, nil, err
	}

	created := make([]models.Contact, 0, len(reqs))
	failed := 0
	for _, req := range reqs {
		contact := newContactFromRequest(req, userID)
		if err := cs.repo.CreateContact(contact); err != nil {
			failed++
			continue
		}
		created = append(created, *contact)
		cs.events.Enqueue(events.BuildContactCreated(cs.source, contact))
	}

	now := time.Now().UTC()
	imp := &models.Import{
		ID:                uuid.New().String(),
		Settings:          map[string]string{"file_name": fileName, "source": "api"},
		ProcessedContacts: len(created),
		FailedContacts:    failed,
		UserID:            userID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := cs.repo.CreateImport(imp); err != nil {
		return nil, nil, err
	}

	return created, imp, nil
}

// Get retrieves a live contact by ID
func (cs *ContactService) Get(id string) (*models.Contact, error) {
	contact, err := cs.repo.GetContact(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// GetImport retrieves the recorded outcome of a batch import
func (cs *ContactService) GetImport(id string) (*models.Import, error) {
	imp, err := cs.repo.GetImport(id)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		return nil, ErrImportNotFound
	}
	return imp, nil
}

// List retrieves contacts newest first
func (cs *ContactService) List(limit, offset int) ([]models.Contact, int, error) {
	return cs.repo.ListContacts(limit, offset)
}

// ListDeleted retrieves soft-deleted contacts
func (cs *ContactService) ListDeleted(limit, offset int) ([]models.Contact, int, error) {
	return cs.repo.ListDeletedContacts(limit, offset)
}

// SearchText runs full-text search over name, company, email, phone,
// notes and address fields
func (cs *ContactService) SearchText(q string, limit, offset int) ([]models.Contact, int, error) {
	return cs.repo.SearchContactsText(q, limit, offset)
}

// Search runs a dynamic filter search
func (cs *ContactService) Search(rawFilters map[string]any) ([]models.Contact, error) {
	filters, err := database.ParseFilters(rawFilters)
	if err != nil {
		return nil, err
	}
	return cs.repo.SearchContacts(filters)
}

// Update applies the set fields of the request, re-checking email/phone
// uniqueness against other live contacts, and publishes contact.updated
func (cs *ContactService) Update(id string, req models.UpdateContactRequest, userID string) (*models.Contact, error) {
	contact, err := cs.repo.GetContact(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
		if trimmed != "" {
			if err := cs.checkUnique(trimmed, "", id); err != nil {
				return nil, err
			}
		}
	}
	if req.Phone != nil {
		trimmed := strings.TrimSpace(*req.Phone)
		req.Phone = &trimmed
		if trimmed != "" {
			if err := cs.checkUnique("", trimmed, id); err != nil {
				return nil, err
			}
		}
	}

	applyContactUpdate(contact, req)

	if err := cs.repo.UpdateContact(contact); err != nil {
		return nil, err
	}

	cs.events.Enqueue(events.BuildContactUpdated(cs.source, contact, userID))
	return contact, nil
}

// Delete soft-deletes a contact and publishes contact.deleted
func (cs *ContactService) Delete(id, userID string) error {
	contact, err := cs.repo.GetContact(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}

	deleted, err := cs.repo.SoftDeleteContact(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}

	cs.events.Enqueue(events.BuildContactDeleted(cs.source, contact, userID))
	return nil
}

// Restore clears the soft-delete marker
func (cs *ContactService) Restore(id string) error {
	restored, err := cs.repo.RestoreContact(id)
	if err != nil {
		return err
	}
	if !restored {
		return ErrContactNotFound
	}
	return nil
}

// ToggleActive flips the is_active flag
func (cs *ContactService) ToggleActive(id, userID string) (*models.Contact, error) {
	contact, err := cs.repo.GetContact(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	contact.IsActive = !contact.IsActive
	if err := cs.repo.UpdateContact(contact); err != nil {
		return nil, err
	}

	cs.events.Enqueue(events.BuildContactUpdated(cs.source, contact, userID))
	return contact, nil
}

// checkUnique verifies no other live contact holds the email or phone.
// excludeID skips the contact being updated.
func (cs *ContactService) checkUnique(email, phone, excludeID string) error {
	if email != "" {
		existing, err := cs.repo.GetContactByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return ErrDuplicateEmail
		}
	}
	if phone != "" {
		existing, err := cs.repo.GetContactByPhone(phone)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return ErrDuplicatePhone
		}
	}
	return nil
}

// validateBatch rejects duplicates within the batch and against the database
// before any contact is created
func (cs *ContactService) validateBatch(reqs []models.CreateContactRequest) error {
	batchEmails := make(map[string]bool)
	batchPhones := make(map[string]bool)

	for idx, req := range reqs {
		pos := idx + 1
		if req.Email != "" {
			if batchEmails[req.Email] {
				return fmt.Errorf("%w: duplicate email %q in batch at position %d", ErrDuplicateEmail, req.Email, pos)
			}
			batchEmails[req.Email] = true

			existing, err := cs.repo.GetContactByEmail(req.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("%w: %q (position %d)", ErrDuplicateEmail, req.Email, pos)
			}
		}

		if req.Phone != "" {
			if batchPhones[req.Phone] {
				return fmt.Errorf("%w: duplicate phone %q in batch at position %d", ErrDuplicatePhone, req.Phone, pos)
			}
			batchPhones[req.Phone] = true

			existing, err := cs.repo.GetContactByPhone(req.Phone)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("%w: %q (position %d)", ErrDuplicatePhone, req.Phone, pos)
			}
		}
	}
	return nil
}

func newContactFromRequest(req models.CreateContactRequest, userID string) *models.Contact {
	now := time.Now().UTC()
	return &models.Contact{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(req.FirstName),
		MiddleName:   strings.TrimSpace(req.MiddleName),
		LastName:     strings.TrimSpace(req.LastName),
		Company:      strings.TrimSpace(req.Company),
		Job:          strings.TrimSpace(req.Job),
		ContactType:  req.ContactType,
		PhoneType:    req.PhoneType,
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Website:      strings.TrimSpace(req.Website),
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		Notes:        req.Notes,
		IsActive:     true,
		CreatedByID:  userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func applyContactUpdate(contact *models.Contact, req models.UpdateContactRequest) {
	if req.FirstName != nil {
		contact.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.MiddleName != nil {
		contact.MiddleName = strings.TrimSpace(*req.MiddleName)
	}
	if req.LastName != nil {
		contact.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Company != nil {
		contact.Company = strings.TrimSpace(*req.Company)
	}
	if req.Job != nil {
		contact.Job = strings.TrimSpace(*req.Job)
	}
	if req.ContactType != nil {
		contact.ContactType = *req.ContactType
	}
	if req.PhoneType != nil {
		contact.PhoneType = *req.PhoneType
	}
	if req.Phone != nil {
		contact.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		contact.Email = strings.TrimSpace(*req.Email)
	}
	if req.Website != nil {
		contact.Website = strings.TrimSpace(*req.Website)
	}
	if req.AddressLine1 != nil {
		contact.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		contact.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		contact.City = *req.City
	}
	if req.State != nil {
		contact.State = *req.State
	}
	if req.ZipCode != nil {
		contact.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		contact.Country = *req.Country
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}
	if req.IsActive != nil {
		contact.IsActive = *req.IsActive
	}
}
