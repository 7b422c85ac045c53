package handlers

import (
	"errors"
	"net/http"

	"echotap.link/models"
	"echotap.link/services"

	"github.com/gofiber/fiber/v2"
)

// CardAPIHandler exposes code resolution as JSON.
type CardAPIHandler struct {
	service services.ICardService
}

// NewCardAPIHandler uses the default card service.
func NewCardAPIHandler() *CardAPIHandler {
	return NewCardAPIHandlerWithService(services.NewCardService())
}

// NewCardAPIHandlerWithService builds the handler over svc.
func NewCardAPIHandlerWithService(svc services.ICardService) *CardAPIHandler {
	return &CardAPIHandler{service: svc}
}

// CardResponse is the body of GET /api/cards/:code.
type CardResponse struct {
	State  services.CardState         `json:"state"`
	Code   string                     `json:"code"`
	Config *models.CardConfig         `json:"config,omitempty"`
	Hints  services.PresentationHints `json:"hints"`
	Error  string                     `json:"error,omitempty"`
}

// GetCard resolves :code without recording a visit. Invalid and unknown
// codes answer 404.
func (h *CardAPIHandler) GetCard(c *fiber.Ctx) error {
	res := h.service.Resolve(c.UserContext(), c.Params("code"))
	body := CardResponse{State: res.State, Code: res.Code, Config: res.Config, Hints: res.Hints}
	if !res.Found() {
		switch {
		case errors.Is(res.Err, services.ErrCardStoreFailure):
			body.Error = services.ErrCardStoreFailure.Error()
		case res.Err != nil:
			body.Error = res.Err.Error()
		}
		return c.Status(http.StatusNotFound).JSON(body)
	}
	return c.Status(http.StatusOK).JSON(body)
}
