package routes

import (
	apihandlers "echotap.link/handlers/api"
	cardhandlers "echotap.link/handlers/card"

	"github.com/gofiber/fiber/v2"
)

func registerCardRoutes(app *fiber.App) {
	registerCardRoutesWith(app, cardhandlers.NewCardHandler())
}

func registerCardRoutesWith(app *fiber.App, h *cardhandlers.CardHandler) {
	app.Get("/", h.Home)
	app.Get("/config", h.ShowCodeEntry)
	app.Post("/config", h.RedeemCode)
	app.Get("/setup", h.ShowSetup)
	app.Post("/setup", h.SubmitSetup)
	app.Get("/view", h.ViewCard)
	app.Get("/card/:code", h.Welcome)
}

func registerAPIRoutes(app *fiber.App) {
	registerAPIRoutesWith(app, apihandlers.NewCardAPIHandler())
}

func registerAPIRoutesWith(app *fiber.App, h *apihandlers.CardAPIHandler) {
	api := app.Group("/api")
	api.Get("/cards/:code", h.GetCard)
}
