package server

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/kinetic/internal/config"
	"github.com/mansoorceksport/kinetic/internal/handler"
	"github.com/mansoorceksport/kinetic/internal/middleware"
	"github.com/mansoorceksport/kinetic/internal/service"
	"github.com/mansoorceksport/kinetic/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	Service     *service.WorkoutService
	RedisClient *redis.Client // optional; enables idempotent replays
	Logger      bool          // HTTP access log
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	workoutHandler := handler.NewWorkoutHandler(deps.Service)
	eventHandler := handler.NewEventHandler(deps.Service.Notifier())

	bodyLimit := int(deps.Config.Server.BodyLimitKB * 1024)
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		AppName:      "KINETIC API",
		BodyLimit:    bodyLimit,
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	if deps.Logger {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "kinetic",
			"exercises": deps.Service.Catalog().Len(),
		})
	})

	// API v1 routes
	v1 := app.Group("/v1",
		middleware.VerifyDeviceToken(deps.Config.JWT.Secret),
		middleware.IdempotencyMiddleware(deps.RedisClient, deps.Config.Server.IdempotencyTTL()),
	)

	v1.Get("/events", eventHandler.Stream)

	// Library
	v1.Get("/exercises", workoutHandler.ListExercises)
	v1.Get("/exercises/:id", workoutHandler.GetExercise)

	// Suggest
	v1.Post("/suggestions", workoutHandler.Suggest)
	v1.Post("/suggestions/builder", workoutHandler.SendSuggestionToBuilder)
	v1.Post("/suggestions/tracker", workoutHandler.LoadSuggestionToTracker)

	// Builder
	draft := v1.Group("/draft")
	draft.Get("/", workoutHandler.GetDraft)
	draft.Delete("/", workoutHandler.ClearDraft)
	draft.Post("/toggle", workoutHandler.ToggleExercise)
	draft.Patch("/items/:index", workoutHandler.UpdateItem)
	draft.Delete("/items/:index", workoutHandler.RemoveItem)
	draft.Post("/items/:index/move", workoutHandler.MoveItem)
	draft.Post("/save", workoutHandler.SaveDraft)
	draft.Post("/track", workoutHandler.TrackDraft)

	// Saved plans
	plans := v1.Group("/plans")
	plans.Get("/", workoutHandler.ListPlans)
	plans.Delete("/:id", workoutHandler.DeletePlan)
	plans.Post("/:id/edit", workoutHandler.EditPlan)
	plans.Post("/:id/track", workoutHandler.TrackPlan)

	// Tracker
	sess := v1.Group("/session")
	sess.Get("/", workoutHandler.GetSession)
	sess.Post("/select", workoutHandler.SelectExercise)
	sess.Post("/toggle", workoutHandler.ToggleTracking)
	sess.Post("/reps", workoutHandler.AddRep)
	sess.Post("/log", workoutHandler.LogSet)
	sess.Delete("/plan", workoutHandler.ClearActivePlan)

	// Set log
	v1.Get("/history", workoutHandler.ListHistory)
	v1.Delete("/history", workoutHandler.ClearHistory)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("Error: %v", err)
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
