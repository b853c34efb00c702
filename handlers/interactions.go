package handlers

import (
	"errors"

	"contact-hub/app"
	"contact-hub/middleware"
	"contact-hub/models"
	"contact-hub/services"

	"github.com/gofiber/fiber/v2"
)

// CreateInteraction records an interaction note for a contact
func CreateInteraction(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateInteractionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		interaction, err := a.Interactions.Create(c.Params("contactID"), req, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContactNotFound):
				return notFound(c, "Contact not found")
			case errors.Is(err, services.ErrCustomActionRequired):
				return badRequest(c, "Custom action requires a description")
			}
			return serverErrorWithDetails(c, "Failed to create interaction", err)
		}

		return created(c, interaction)
	}
}

// ListInteractions returns a page of interactions, newest first
func ListInteractions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		interactions, total, err := a.Interactions.List(limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch interactions", err)
		}

		return success(c, models.NewPage(interactions, total, page, size))
	}
}

// ListContactInteractions returns a page of one contact's interactions
func ListContactInteractions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		interactions, total, err := a.Interactions.ListByContact(c.Params("contactID"), limit, offset)
		if err != nil {
			if errors.Is(err, services.ErrContactNotFound) {
				return notFound(c, "Contact not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch interactions", err)
		}

		return success(c, models.NewPage(interactions, total, page, size))
	}
}

// GetLastInteraction returns a contact's most recent interaction
func GetLastInteraction(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		interaction, err := a.Interactions.Last(c.Params("contactID"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContactNotFound):
				return notFound(c, "Contact not found")
			case errors.Is(err, services.ErrInteractionNotFound):
				return notFound(c, "No interactions recorded for this contact")
			}
			return serverErrorWithDetails(c, "Failed to fetch interaction", err)
		}

		return success(c, interaction)
	}
}

// GetInteractionActions returns the catalog of known follow-up actions
func GetInteractionActions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"actions": models.ActionCatalog()})
	}
}

// ListPendingActions returns interactions whose action is still open
func ListPendingActions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size, limit, offset := parsePageParams(c)

		interactions, total, err := a.Interactions.PendingActions(limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch pending actions", err)
		}

		return success(c, models.NewPage(interactions, total, page, size))
	}
}

// GetInteraction fetches a single interaction
func GetInteraction(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		interaction, err := a.Interactions.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrInteractionNotFound) {
				return notFound(c, "Interaction not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch interaction", err)
		}

		return success(c, interaction)
	}
}

// UpdateInteraction applies a partial update to an interaction
func UpdateInteraction(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateInteractionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		interaction, err := a.Interactions.Update(c.Params("id"), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInteractionNotFound):
				return notFound(c, "Interaction not found")
			case errors.Is(err, services.ErrCustomActionRequired):
				return badRequest(c, "Custom action requires a description")
			}
			return serverErrorWithDetails(c, "Failed to update interaction", err)
		}

		return success(c, interaction)
	}
}

// DeleteInteraction soft-deletes an interaction
func DeleteInteraction(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Interactions.Delete(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrInteractionNotFound) {
				return notFound(c, "Interaction not found")
			}
			return serverErrorWithDetails(c, "Failed to delete interaction", err)
		}

		return success(c, fiber.Map{"message": "Interaction deleted successfully"})
	}
}
