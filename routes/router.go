package routes

import (
	"echotap.link/configs"
	cardhandlers "echotap.link/handlers/card"
	"echotap.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// SetupRoutes registers the middleware chain and every route.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(initializeSession())

	registerAPIRoutes(app)
	registerCardRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSession makes the session store reachable from handlers.
func initializeSession() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals(utils.SessionStoreKey, sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return cardhandlers.RenderNotFound(c, configs.GetAppConfig().Name)
	}
}
