package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/CoachAIBack/internal/config"
	"github.com/saeid-a/CoachAIBack/internal/handlers"
	"github.com/saeid-a/CoachAIBack/internal/repository"
	"github.com/saeid-a/CoachAIBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, store repository.ProfileStore, generator services.Generator) error {
	coachingService := services.NewCoachingService(store, generator)

	profileHandler := handlers.NewProfileHandler(coachingService)
	coachingHandler := handlers.NewCoachingHandler(coachingService)
	checkInHandler := handlers.NewCheckInHandler(coachingService)
	streamHandler := handlers.NewStreamHandler(coachingService)

	app.Get("/", handlers.Root)
	app.Get("/health", handlers.Health)

	app.Post("/save-user/", profileHandler.SaveUser)
	app.Get("/get-user/:id", profileHandler.GetUser)
	app.Get("/get-all-users/", profileHandler.GetAllUsers)

	app.Post("/run-optimization/", coachingHandler.RunOptimization)
	app.Post("/workout-plan/", coachingHandler.WorkoutPlan)
	app.Post("/nutrition-plan/", coachingHandler.NutritionPlan)
	app.Post("/first-report/", coachingHandler.FirstReport)

	app.Post("/checkIn_optimization/", checkInHandler.CheckIn)
	app.Post("/checkIn_adjustPlan/", checkInHandler.AdjustPlan)
	app.Post("/checkIn_optimization_entire/", checkInHandler.CheckInEntire)

	app.Use("/ws/run-optimization", streamHandler.RequireUpgrade)
	app.Get("/ws/run-optimization", websocket.New(streamHandler.HandleWebSocket))

	return registerDocsRoutes(app, cfg)
}
