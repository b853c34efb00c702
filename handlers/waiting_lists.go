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

// CreateWaitingList creates a new waiting list
func CreateWaitingList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateWaitingListRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		list, err := a.WaitingLists.Create(req, userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create waiting list", err)
		}

		return created(c, list)
	}
}

// ListWaitingLists returns a page of waiting lists
func ListWaitingLists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		lists, total, err := a.WaitingLists.List(limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch waiting lists", err)
		}

		return success(c, models.NewPage(lists, total, page, size))
	}
}

// SearchWaitingLists performs a dynamic filter search over waiting lists
func SearchWaitingLists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SearchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		lists, err := a.WaitingLists.Search(req.Filters)
		if err != nil {
			var ferr *database.FilterError
			if errors.As(err, &ferr) {
				return badRequest(c, ferr.Error())
			}
			return serverErrorWithDetails(c, "Search failed", err)
		}

		return success(c, fiber.Map{"waiting_lists": lists})
	}
}

// GetWaitingList fetches a single waiting list
func GetWaitingList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := a.WaitingLists.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch waiting list", err)
		}

		return success(c, list)
	}
}

// UpdateWaitingList applies a partial update to a waiting list
func UpdateWaitingList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateWaitingListRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		list, err := a.WaitingLists.Update(c.Params("id"), req)
		if err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to update waiting list", err)
		}

		return success(c, list)
	}
}

// DeleteWaitingList soft-deletes a waiting list
func DeleteWaitingList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.WaitingLists.Delete(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to delete waiting list", err)
		}

		return success(c, fiber.Map{"message": "Waiting list deleted successfully"})
	}
}

// AddWaitingListMembers adds contacts to a waiting list with an optional
// initial status
func AddWaitingListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddWaitingMembersRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		added, err := a.WaitingLists.AddMembers(c.Params("id"), req.ContactIDs, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrInvalidMemberStatus):
				return badRequest(c, "Invalid member status")
			}
			return serverErrorWithDetails(c, "Failed to add members", err)
		}

		return created(c, fiber.Map{"added": added})
	}
}

// RemoveWaitingListMember removes a contact from a waiting list
func RemoveWaitingListMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := a.WaitingLists.RemoveMember(c.Params("id"), c.Params("contactID"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrMemberNotFound):
				return notFound(c, "Member not found")
			}
			return serverErrorWithDetails(c, "Failed to remove member", err)
		}

		return success(c, fiber.Map{"message": "Member removed successfully"})
	}
}

// GetWaitingListMembers returns the live members of a waiting list
func GetWaitingListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := a.WaitingLists.Members(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch members", err)
		}

		return success(c, fiber.Map{
			"members": members,
			"count":   len(members),
		})
	}
}

// GetWaitingListMembersByStatus returns the members holding a given status
func GetWaitingListMembersByStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := a.WaitingLists.MembersByStatus(c.Params("id"), c.Params("status"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrInvalidMemberStatus):
				return badRequest(c, "Invalid member status")
			}
			return serverErrorWithDetails(c, "Failed to fetch members", err)
		}

		return success(c, fiber.Map{
			"members": members,
			"count":   len(members),
		})
	}
}

// CountWaitingListMembers returns the live member count of a waiting list
func CountWaitingListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.WaitingLists.MemberCount(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to count members", err)
		}

		return success(c, fiber.Map{"count": count})
	}
}

// CountWaitingListMembersByStatus counts the members holding a given status
func CountWaitingListMembersByStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.WaitingLists.MemberCountByStatus(c.Params("id"), c.Params("status"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrInvalidMemberStatus):
				return badRequest(c, "Invalid member status")
			}
			return serverErrorWithDetails(c, "Failed to count members", err)
		}

		return success(c, fiber.Map{"count": count})
	}
}

// IsWaitingListMember reports whether a contact is on a waiting list
func IsWaitingListMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		isMember, err := a.WaitingLists.IsMember(c.Params("id"), c.Params("contactID"))
		if err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to check membership", err)
		}

		return success(c, fiber.Map{"is_member": isMember})
	}
}

// GetWaitingListMemberStatus returns one member's status
func GetWaitingListMemberStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := a.WaitingLists.MemberStatus(c.Params("id"), c.Params("contactID"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrMemberNotFound):
				return notFound(c, "Member not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch member status", err)
		}

		return success(c, fiber.Map{"status": status})
	}
}

// UpdateWaitingListMemberStatus changes one member's status
func UpdateWaitingListMemberStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateMemberStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		err := a.WaitingLists.UpdateMemberStatus(c.Params("id"), c.Params("contactID"), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrMemberNotFound):
				return notFound(c, "Member not found")
			case errors.Is(err, services.ErrInvalidMemberStatus):
				return badRequest(c, "Invalid member status")
			}
			return serverErrorWithDetails(c, "Failed to update member status", err)
		}

		return success(c, fiber.Map{"message": "Member status updated successfully"})
	}
}

// BulkUpdateWaitingListMemberStatus changes the status of several members
// at once
func BulkUpdateWaitingListMemberStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.BulkMemberStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		updated, err := a.WaitingLists.UpdateMembersStatusBulk(c.Params("id"), req.ContactIDs, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWaitingListNotFound):
				return notFound(c, "Waiting list not found")
			case errors.Is(err, services.ErrInvalidMemberStatus):
				return badRequest(c, "Invalid member status")
			}
			return serverErrorWithDetails(c, "Failed to update member statuses", err)
		}

		return success(c, fiber.Map{"updated": updated})
	}
}

// ClearWaitingListMembers removes all members from a waiting list
func ClearWaitingListMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		removed, err := a.WaitingLists.ClearMembers(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrWaitingListNotFound) {
				return notFound(c, "Waiting list not found")
			}
			return serverErrorWithDetails(c, "Failed to clear members", err)
		}

		return success(c, fiber.Map{"removed": removed})
	}
}

// GetWaitingListsForContact returns the waiting lists a contact is on
func GetWaitingListsForContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lists, err := a.WaitingLists.ListsForContact(c.Params("contactID"))
		if err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch waiting lists", err)
		}

		return success(c, fiber.Map{"waiting_lists": lists})
	}
}
