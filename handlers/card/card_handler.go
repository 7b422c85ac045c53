package handlers

import (
	"errors"
	"net/http"

	"echotap.link/configs"
	"echotap.link/configs/configslog"
	"echotap.link/pkg/imagecompress"
	"echotap.link/pkg/renderer"
	"echotap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const mainLayout = "layouts/main"

// CardHandler serves the public card pages, the code entry and the setup form.
type CardHandler struct {
	service   services.ICardService
	brand     string
	imageOpts imagecompress.Options
}

// NewCardHandler builds a handler from the global app config.
func NewCardHandler() *CardHandler {
	cfg := configs.GetAppConfig()
	return NewCardHandlerWithService(services.NewCardService(), cfg.Name, imagecompress.Options{
		MaxWidth:  cfg.ImageMaxWidth,
		MaxHeight: cfg.ImageMaxHeight,
		MaxSizeKB: cfg.ImageMaxSizeKB,
		Quality:   cfg.ImageQuality,
	})
}

// NewCardHandlerWithService builds a handler over svc.
func NewCardHandlerWithService(svc services.ICardService, brand string, opts imagecompress.Options) *CardHandler {
	if brand == "" {
		brand = services.DefaultBrand
	}
	return &CardHandler{service: svc, brand: brand, imageOpts: opts}
}

// Home is the landing page pointing at the code entry.
func (h *CardHandler) Home(c *fiber.Ctx) error {
	data := fiber.Map{}
	renderer.SetPresentation(data, h.brand+" - Card setup", "")
	return renderer.Render(c, "home", mainLayout, data)
}

// ViewCard renders /view?code=: the profile of a configured card, the
// welcome screen of an unconfigured one, or the not-found page.
func (h *CardHandler) ViewCard(c *fiber.Ctx) error {
	res := h.service.ViewCard(c.UserContext(), c.Query("code"))
	switch res.State {
	case services.CardStateConfigured:
		data := fiber.Map{"Code": res.Code, "Config": res.Config}
		renderer.SetPresentation(data, res.Hints.PageTitle, res.Hints.ThemeColor)
		return renderer.Render(c, "card/profile", mainLayout, data)
	case services.CardStateUnconfigured:
		return h.renderWelcome(c, res)
	default:
		return h.renderNotFound(c, res)
	}
}

// Welcome renders /card/:code. Configured cards go straight to their profile.
func (h *CardHandler) Welcome(c *fiber.Ctx) error {
	res := h.service.Resolve(c.UserContext(), c.Params("code"))
	switch res.State {
	case services.CardStateConfigured:
		return c.Redirect(services.ViewPath(res.Code), fiber.StatusFound)
	case services.CardStateUnconfigured:
		return h.renderWelcome(c, res)
	default:
		return h.renderNotFound(c, res)
	}
}

func (h *CardHandler) renderWelcome(c *fiber.Ctx, res services.Resolution) error {
	data := fiber.Map{"Code": res.Code, "ConfigPath": "/config?code=" + res.Code}
	renderer.SetPresentation(data, res.Hints.PageTitle, res.Hints.ThemeColor)
	return renderer.Render(c, "card/welcome", mainLayout, data)
}

func (h *CardHandler) renderNotFound(c *fiber.Ctx, res services.Resolution) error {
	if res.Err != nil && errors.Is(res.Err, services.ErrCardStoreFailure) {
		configslog.Log.Warn("Card page served as not found after store failure", zap.String("code", res.Code), zap.Error(res.Err))
	}
	return RenderNotFound(c, h.brand)
}

// RenderNotFound renders the shared 404 page.
func RenderNotFound(c *fiber.Ctx, brand string) error {
	data := fiber.Map{}
	renderer.SetPresentation(data, "404 - Page not found | "+brand, "")
	return renderer.Render(c, "errors/404", mainLayout, data, http.StatusNotFound)
}
