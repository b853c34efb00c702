package handlers

import (
	"errors"
	"strings"

	"contact-hub/app"
	"contact-hub/database"
	"contact-hub/middleware"
	"contact-hub/models"
	"contact-hub/services"

	"github.com/gofiber/fiber/v2"
)

// CreateContact creates a single contact
func CreateContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		contact, err := a.Contacts.Create(req, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateEmail):
				return conflict(c, "A contact with this email already exists")
			case errors.Is(err, services.ErrDuplicatePhone):
				return conflict(c, "A contact with this phone already exists")
			}
			return serverErrorWithDetails(c, "Failed to create contact", err)
		}

		return created(c, contact)
	}
}

// BatchCreateContacts creates several contacts in one call and records the
// import outcome
func BatchCreateContacts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.BatchCreateContactsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		contacts, imp, err := a.Contacts.BatchCreate(req.Contacts, req.FileName, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyBatch):
				return badRequest(c, "Batch must contain at least one contact")
			case errors.Is(err, services.ErrDuplicateEmail), errors.Is(err, services.ErrDuplicatePhone):
				return conflict(c, err.Error())
			}
			return serverErrorWithDetails(c, "Failed to create contacts", err)
		}

		return created(c, fiber.Map{
			"contacts": contacts,
			"import":   imp,
		})
	}
}

// GetImport returns the recorded outcome of a past batch import
func GetImport(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		imp, err := a.Contacts.GetImport(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrImportNotFound) {
				return notFound(c, "Import not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch import", err)
		}

		return success(c, imp)
	}
}

// ListContacts returns a page of live contacts, newest first
func ListContacts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		contacts, total, err := a.Contacts.List(limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch contacts", err)
		}

		return success(c, models.NewPage(contacts, total, page, size))
	}
}

// ListDeletedContacts returns a page of soft-deleted contacts
func ListDeletedContacts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		contacts, total, err := a.Contacts.ListDeleted(limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch deleted contacts", err)
		}

		return success(c, models.NewPage(contacts, total, page, size))
	}
}

// SearchContactsText performs a full-text search over contact fields
func SearchContactsText(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return badRequest(c, "q parameter is required")
		}

		page, size, limit, offset := parsePageParams(c)

		contacts, total, err := a.Contacts.SearchText(q, limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Search failed", err)
		}

		return success(c, models.NewPage(contacts, total, page, size))
	}
}

// SearchContacts performs a dynamic filter search
func SearchContacts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SearchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		contacts, err := a.Contacts.Search(req.Filters)
		if err != nil {
			var ferr *database.FilterError
			if errors.As(err, &ferr) {
				return badRequest(c, ferr.Error())
			}
			return serverErrorWithDetails(c, "Search failed", err)
		}

		return success(c, fiber.Map{"contacts": contacts})
	}
}

// GetContact fetches a single live contact
func GetContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contact, err := a.Contacts.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch contact", err)
		}

		return success(c, contact)
	}
}

// UpdateContact applies a partial update to a contact
func UpdateContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		contact, err := a.Contacts.Update(c.Params("id"), req, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContactNotFound):
				return notFound(c, "Contact not found")
			case errors.Is(err, services.ErrDuplicateEmail):
				return conflict(c, "A contact with this email already exists")
			case errors.Is(err, services.ErrDuplicatePhone):
				return conflict(c, "A contact with this phone already exists")
			}
			return serverErrorWithDetails(c, "Failed to update contact", err)
		}

		return success(c, contact)
	}
}

// DeleteContact soft-deletes a contact
func DeleteContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		if err := a.Contacts.Delete(c.Params("id"), userID); err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to delete contact", err)
		}

		return success(c, fiber.Map{"message": "Contact deleted successfully"})
	}
}

// RestoreContact clears the soft-delete marker on a contact
func RestoreContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Contacts.Restore(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to restore contact", err)
		}

		return success(c, fiber.Map{"message": "Contact restored successfully"})
	}
}

// ToggleContactActive flips a contact's active flag
func ToggleContactActive(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		contact, err := a.Contacts.ToggleActive(c.Params("id"), userID)
		if err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to toggle contact", err)
		}

		return success(c, contact)
	}
}
