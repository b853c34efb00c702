package app

import (
	"log/slog"

	"contact-hub/services"
	"contact-hub/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Contacts     *services.ContactService
	ContactLists *services.ContactListService
	WaitingLists *services.WaitingListService
	Interactions *services.InteractionService
	Stats        *services.StatsService
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies
func New(
	contacts *services.ContactService,
	contactLists *services.ContactListService,
	waitingLists *services.WaitingListService,
	interactions *services.InteractionService,
	stats *services.StatsService,
	logger *slog.Logger,
) *App {
	return &App{
		Contacts:     contacts,
		ContactLists: contactLists,
		WaitingLists: waitingLists,
		Interactions: interactions,
		Stats:        stats,
		Validator:    validator.New(),
		Logger:       logger,
	}
}
