// Package renderer renders page templates with the values every layout
// expects: page title, theme color and flash messages.
package renderer

import (
	"echotap.link/configs/configslog"
	"echotap.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Keys read by the layouts.
const (
	PageTitleKey          = "PageTitle"
	ThemeColorKey         = "ThemeColor"
	FlashSuccessKeyView   = "FlashSuccess"
	FlashErrorKeyView     = "FlashError"
	FlashWarningKeyView   = "FlashWarning"
	defaultPageThemeColor = "#2563EB"
)

// DefaultPageTitle is used when a handler sets no title.
var DefaultPageTitle = "EchoTap"

// SetPresentation stores the page title and theme color in data.
func SetPresentation(data fiber.Map, pageTitle, themeColor string) {
	data[PageTitleKey] = pageTitle
	data[ThemeColorKey] = themeColor
}

// SetFlashMessages copies pending flash messages into data. Messages already
// present in data win.
func SetFlashMessages(data fiber.Map, msgs flashmessages.FlashMessages) {
	setIfEmpty(data, FlashSuccessKeyView, msgs.Success)
	setIfEmpty(data, FlashErrorKeyView, msgs.Error)
	setIfEmpty(data, FlashWarningKeyView, msgs.Warning)
}

// Render renders view inside layout. Pending flash messages are consumed,
// missing presentation values get defaults and status defaults to 200.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if msgs, err := flashmessages.GetFlashMessages(c); err == nil {
		SetFlashMessages(data, msgs)
	}
	setIfEmpty(data, PageTitleKey, DefaultPageTitle)
	setIfEmpty(data, ThemeColorKey, defaultPageThemeColor)

	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}

	var layouts []string
	if layout != "" {
		layouts = append(layouts, layout)
	}
	if err := c.Status(code).Render(view, data, layouts...); err != nil {
		configslog.Log.Error("Template render failed", zap.String("view", view), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	return nil
}

func setIfEmpty(data fiber.Map, key, value string) {
	if value == "" {
		return
	}
	if existing, ok := data[key].(string); ok && existing != "" {
		return
	}
	data[key] = value
}
