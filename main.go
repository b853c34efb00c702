package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-hub/app"
	"contact-hub/config"
	"contact-hub/database"
	"contact-hub/events"
	"contact-hub/handlers"
	"contact-hub/middleware"
	"contact-hub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized", "path", config.AppConfig.DBPath)

	repo := database.NewRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	defer redisClient.Close()

	dispatcher := events.NewDispatcher(events.NewRedisPublisher(redisClient), logger)
	dispatcher.Start()
	logger.Info("event publishing enabled", "redis", config.AppConfig.RedisAddr)

	source := config.AppConfig.EventSource
	application := app.New(
		services.NewContactService(repo, dispatcher, source),
		services.NewContactListService(repo, dispatcher, source),
		services.NewWaitingListService(repo),
		services.NewInteractionService(repo),
		services.NewStatsService(repo),
		logger,
	)

	srv := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
		ReadBufferSize:        8192,
	})

	srv.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,X-User-ID",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	srv.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := srv.Group("/api", middleware.AuthRequired(), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("userID").(string); ok {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	registerRoutes(api, application)

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := srv.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	dispatcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// registerRoutes wires the API surface. Fixed segments are registered
// before parameterized ones so /search and friends do not get captured
// by /:id.
func registerRoutes(api fiber.Router, a *app.App) {
	contacts := api.Group("/contacts")
	contacts.Post("", handlers.CreateContact(a))
	contacts.Post("/batch", handlers.BatchCreateContacts(a))
	contacts.Get("", handlers.ListContacts(a))
	contacts.Get("/search", handlers.SearchContactsText(a))
	contacts.Post("/search", handlers.SearchContacts(a))
	contacts.Get("/deleted", handlers.ListDeletedContacts(a))
	contacts.Get("/:id", handlers.GetContact(a))
	contacts.Put("/:id", handlers.UpdateContact(a))
	contacts.Delete("/:id", handlers.DeleteContact(a))
	contacts.Post("/:id/restore", handlers.RestoreContact(a))
	contacts.Post("/:id/toggle-active", handlers.ToggleContactActive(a))
	contacts.Post("/:contactID/interactions", handlers.CreateInteraction(a))
	contacts.Get("/:contactID/interactions", handlers.ListContactInteractions(a))
	contacts.Get("/:contactID/interactions/last", handlers.GetLastInteraction(a))

	api.Get("/imports/:id", handlers.GetImport(a))

	lists := api.Group("/contact-lists")
	lists.Post("", handlers.CreateContactList(a))
	lists.Get("", handlers.ListContactLists(a))
	lists.Get("/public", handlers.ListPublicContactLists(a))
	lists.Post("/search", handlers.SearchContactLists(a))
	lists.Get("/for-contact/:contactID", handlers.GetContactListsForContact(a))
	lists.Get("/:id", handlers.GetContactList(a))
	lists.Put("/:id", handlers.UpdateContactList(a))
	lists.Delete("/:id", handlers.DeleteContactList(a))
	lists.Post("/:id/members", handlers.AddContactListMembers(a))
	lists.Get("/:id/members", handlers.GetContactListMembers(a))
	lists.Delete("/:id/members", handlers.ClearContactListMembers(a))
	lists.Get("/:id/members/count", handlers.CountContactListMembers(a))
	lists.Get("/:id/members/:contactID/is-member", handlers.IsContactListMember(a))
	lists.Delete("/:id/members/:contactID", handlers.RemoveContactListMember(a))

	waiting := api.Group("/waiting-lists")
	waiting.Post("", handlers.CreateWaitingList(a))
	waiting.Get("", handlers.ListWaitingLists(a))
	waiting.Post("/search", handlers.SearchWaitingLists(a))
	waiting.Get("/for-contact/:contactID", handlers.GetWaitingListsForContact(a))
	waiting.Get("/:id", handlers.GetWaitingList(a))
	waiting.Put("/:id", handlers.UpdateWaitingList(a))
	waiting.Delete("/:id", handlers.DeleteWaitingList(a))
	waiting.Post("/:id/members", handlers.AddWaitingListMembers(a))
	waiting.Get("/:id/members", handlers.GetWaitingListMembers(a))
	waiting.Delete("/:id/members", handlers.ClearWaitingListMembers(a))
	waiting.Get("/:id/members/count", handlers.CountWaitingListMembers(a))
	waiting.Post("/:id/members/bulk-status", handlers.BulkUpdateWaitingListMemberStatus(a))
	waiting.Get("/:id/members/by-status/:status", handlers.GetWaitingListMembersByStatus(a))
	waiting.Get("/:id/members/by-status/:status/count", handlers.CountWaitingListMembersByStatus(a))
	waiting.Get("/:id/members/:contactID/is-member", handlers.IsWaitingListMember(a))
	waiting.Get("/:id/members/:contactID/status", handlers.GetWaitingListMemberStatus(a))
	waiting.Put("/:id/members/:contactID/status", handlers.UpdateWaitingListMemberStatus(a))
	waiting.Delete("/:id/members/:contactID", handlers.RemoveWaitingListMember(a))

	interactions := api.Group("/contact-interactions")
	interactions.Get("", handlers.ListInteractions(a))
	interactions.Get("/actions", handlers.GetInteractionActions(a))
	interactions.Get("/pending-actions", handlers.ListPendingActions(a))
	interactions.Get("/:id", handlers.GetInteraction(a))
	interactions.Put("/:id", handlers.UpdateInteraction(a))
	interactions.Delete("/:id", handlers.DeleteInteraction(a))

	api.Get("/stats", handlers.GetStats(a))
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
