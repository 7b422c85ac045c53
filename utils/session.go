package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStoreKey is the Locals key holding the *session.Store.
const SessionStoreKey = "session_store"

var ErrSessionStoreMissing = errors.New("session store not initialized")

// SessionStart returns the session of the current request.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreKey).(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}
