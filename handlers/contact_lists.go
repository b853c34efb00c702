package handlers

import (
	"errors"

	"contact-hub/app"
	"contact-hub/database"
	"contact-hub/middleware"
	"contact-hub/models"
	"contact-hub/services"

	"github.com/gofiber/fiber/v2"
)

// CreateContactList creates a new contact list
func CreateContactList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateContactListRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		list, err := a.ContactLists.Create(req, userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create contact list", err)
		}

		return created(c, list)
	}
}

// ListContactLists returns a page of contact lists
func ListContactLists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		lists, total, err := a.ContactLists.List(false, limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch contact lists", err)
		}

		return success(c, models.NewPage(lists, total, page, size))
	}
}

// ListPublicContactLists returns a page of public contact lists
func ListPublicContactLists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		lists, total, err := a.ContactLists.List(true, limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch contact lists", err)
		}

		return success(c, models.NewPage(lists, total, page, size))
	}
}

// SearchContactLists performs a dynamic filter search over contact lists
func SearchContactLists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SearchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		lists, err := a.ContactLists.Search(req.Filters)
		if err != nil {
			var ferr *database.FilterError
			if errors.As(err, &ferr) {
				return badRequest(c, ferr.Error())
			}
			return serverErrorWithDetails(c, "Search failed", err)
		}

		return success(c, fiber.Map{"contact_lists": lists})
	}
}

// GetContactList fetches a single contact list
func GetContactList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := a.ContactLists.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch contact list", err)
		}

		return success(c, list)
	}
}

// UpdateContactList applies a partial update to a contact list
func UpdateContactList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateContactListRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		list, err := a.ContactLists.Update(c.Params("id"), req)
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to update contact list", err)
		}

		return success(c, list)
	}
}

// DeleteContactList soft-deletes a contact list
func DeleteContactList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.ContactLists.Delete(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to delete contact list", err)
		}

		return success(c, fiber.Map{"message": "Contact list deleted successfully"})
	}
}

// AddContactListMembers subscribes contacts to a list
func AddContactListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddMembersRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		added, err := a.ContactLists.AddMembers(c.Params("id"), req.ContactIDs)
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to add members", err)
		}

		return created(c, fiber.Map{"added": added})
	}
}

// RemoveContactListMember unsubscribes a contact from a list
func RemoveContactListMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := a.ContactLists.RemoveMember(c.Params("id"), c.Params("contactID"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContactListNotFound):
				return notFound(c, "Contact list not found")
			case errors.Is(err, services.ErrMemberNotFound):
				return notFound(c, "Member not found")
			}
			return serverErrorWithDetails(c, "Failed to remove member", err)
		}

		return success(c, fiber.Map{"message": "Member removed successfully"})
	}
}

// GetContactListMembers returns the live member contacts of a list
func GetContactListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := a.ContactLists.Members(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch members", err)
		}

		return success(c, fiber.Map{
			"members": members,
			"count":   len(members),
		})
	}
}

// CountContactListMembers returns the live member count of a list
func CountContactListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.ContactLists.MemberCount(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to count members", err)
		}

		return success(c, fiber.Map{"count": count})
	}
}

// IsContactListMember reports whether a contact belongs to a list
func IsContactListMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		isMember, err := a.ContactLists.IsMember(c.Params("id"), c.Params("contactID"))
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to check membership", err)
		}

		return success(c, fiber.Map{"is_member": isMember})
	}
}

// ClearContactListMembers removes all members from a list
func ClearContactListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		removed, err := a.ContactLists.ClearMembers(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrContactListNotFound) {
				return notFound(c, "Contact list not found")
			}
			return serverErrorWithDetails(c, "Failed to clear members", err)
		}

		return success(c, fiber.Map{"removed": removed})
	}
}

// GetContactListsForContact returns the lists a contact belongs to
func GetContactListsForContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lists, err := a.ContactLists.ListsForContact(c.Params("contactID"))
		if err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch contact lists", err)
		}

		return success(c, fiber.Map{"contact_lists": lists})
	}
}
