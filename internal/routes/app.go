package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/saeid-a/CoachAIBack/internal/config"
	"github.com/saeid-a/CoachAIBack/internal/handlers"
	"github.com/saeid-a/CoachAIBack/internal/middleware"
)

// NewApp builds the fiber app with the shared middleware stack. Routes are
// added separately by RegisterRoutes.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "CoachAIBack",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
		// path params such as /get-user/:id arrive percent-decoded
		UnescapePath: true,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	// recover sits inside the logger so a panic still gets its access line
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg)))

	return app
}

func corsConfig(cfg *config.Config) cors.Config {
	conf := cors.Config{
		AllowOrigins:     strings.TrimSpace(cfg.CORSAllowOrigins),
		AllowMethods:     strings.TrimSpace(cfg.CORSAllowMethods),
		AllowHeaders:     strings.TrimSpace(cfg.CORSAllowHeaders),
		AllowCredentials: cfg.CORSAllowCredentials,
	}
	if conf.AllowOrigins == "" {
		conf.AllowOrigins = "*"
	}
	if conf.AllowMethods == "" {
		conf.AllowMethods = cors.ConfigDefault.AllowMethods
	}
	return conf
}
