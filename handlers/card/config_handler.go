package handlers

import (
	"errors"
	"strings"

	"echotap.link/configs/configslog"
	"echotap.link/models"
	"echotap.link/pkg/renderer"
	"echotap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Inline messages of the code entry form.
const (
	msgCodeEmpty    = "Enter the card code"
	msgCodeLength   = "The code must be 8 characters"
	msgCodeFormat   = "The code may only contain letters and digits"
	msgCodeNotFound = "Code not found"
	msgCodeRetry    = "Could not validate the code. Try again."
)

// ShowCodeEntry renders /config, pre-filling ?code= when given.
func (h *CardHandler) ShowCodeEntry(c *fiber.Ctx) error {
	return h.renderCodeEntry(c, strings.ToUpper(c.Query("code")), "", fiber.StatusOK)
}

// RedeemCode handles the code entry form. A known code moves on to the
// setup form; anything else re-renders the entry with an inline error.
func (h *CardHandler) RedeemCode(c *fiber.Ctx) error {
	code := strings.ToUpper(c.FormValue("code"))

	if strings.TrimSpace(code) == "" {
		return h.renderCodeEntry(c, code, msgCodeEmpty, fiber.StatusUnprocessableEntity)
	}
	if len(code) != models.CardCodeLength {
		return h.renderCodeEntry(c, code, msgCodeLength, fiber.StatusUnprocessableEntity)
	}

	cardID, err := h.service.RedeemCode(c.UserContext(), code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardCodeInvalid):
			return h.renderCodeEntry(c, code, msgCodeFormat, fiber.StatusUnprocessableEntity)
		case errors.Is(err, services.ErrCardNotFound):
			return h.renderCodeEntry(c, code, msgCodeNotFound, fiber.StatusNotFound)
		default:
			configslog.Log.Error("RedeemCode failed", zap.String("code", code), zap.Error(err))
			return h.renderCodeEntry(c, code, msgCodeRetry, fiber.StatusServiceUnavailable)
		}
	}
	return c.Redirect(services.SetupPath(cardID, code), fiber.StatusSeeOther)
}

func (h *CardHandler) renderCodeEntry(c *fiber.Ctx, code, errMsg string, status int) error {
	data := fiber.Map{
		"Code":       code,
		"CodeError":  errMsg,
		"CodeLength": models.CardCodeLength,
	}
	renderer.SetPresentation(data, h.brand+" - Enter card code", "")
	return renderer.Render(c, "card/config", mainLayout, data, status)
}
