// Package flashmessages stores one-shot notifications in the session so they
// survive a redirect.
package flashmessages

import (
	"echotap.link/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	FlashWarningKey = "flash_warning"
)

// FlashMessages are the messages pending for the current session.
type FlashMessages struct {
	Success string
	Error   string
	Warning string
}

// Empty reports whether no message is pending.
func (f FlashMessages) Empty() bool {
	return f.Success == "" && f.Error == "" && f.Warning == ""
}

// SetFlashMessage queues message under key for the next rendered page.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages returns and clears the pending messages.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var msgs FlashMessages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return msgs, err
	}

	pop := func(key string) string {
		v, _ := sess.Get(key).(string)
		if v != "" {
			sess.Delete(key)
		}
		return v
	}
	msgs.Success = pop(FlashSuccessKey)
	msgs.Error = pop(FlashErrorKey)
	msgs.Warning = pop(FlashWarningKey)

	if msgs.Empty() {
		return msgs, nil
	}
	return msgs, sess.Save()
}
