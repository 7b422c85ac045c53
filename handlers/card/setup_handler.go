package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"echotap.link/configs/configslog"
	"echotap.link/models"
	"echotap.link/pkg/flashmessages"
	"echotap.link/pkg/imagecompress"
	"echotap.link/pkg/renderer"
	"echotap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Setup form actions. Link actions carry the link id after a colon; any
// other action (upload_photo) only re-renders the form.
const (
	actionSubmit     = "submit"
	actionAddLink    = "add_link"
	actionRemoveLink = "remove_link"
	actionMoveUp     = "move_up"
	actionMoveDown   = "move_down"
)

const (
	msgRequiredFields = "Name and profile photo are required!"
	msgSaveFailed     = "Could not save the configuration. Try again."
	msgSaved          = "Configuration saved!"
)

// ShowSetup renders /setup?cardId=&code=. Cards that already have a config
// open in edit mode.
func (h *CardHandler) ShowSetup(c *fiber.Ctx) error {
	cardID, code := c.Query("cardId"), c.Query("code")
	card, err := h.service.LoadForSetup(c.UserContext(), cardID, code)
	if err != nil {
		return h.setupLoadFailed(c, code, err)
	}
	form := services.NewCardFormFromConfig(card.ID, card.Code, card.Config)
	return h.renderSetup(c, form, nil, fiber.StatusOK)
}

// SubmitSetup applies one form action. Every post carries the whole form;
// only the submit action stores anything.
func (h *CardHandler) SubmitSetup(c *fiber.Ctx) error {
	values := postedValues(c)
	cardID, code := first(values, "card_id"), first(values, "code")

	card, err := h.service.LoadForSetup(c.UserContext(), cardID, code)
	if err != nil {
		return h.setupLoadFailed(c, code, err)
	}

	form := formFromValues(card, values)
	fieldErrors := map[string]string{}

	if fh, err := c.FormFile("profile_photo"); err == nil && fh.Size > 0 {
		if msg := h.acceptPhoto(c, form, fh); msg != "" {
			fieldErrors["photo"] = msg
		}
	}

	status := fiber.StatusOK
	if len(fieldErrors) > 0 {
		status = fiber.StatusUnprocessableEntity
	}

	action, linkID := parseAction(first(values, "action"))
	switch action {
	case actionAddLink:
		form.AddLink()
	case actionRemoveLink:
		form.RemoveLink(linkID)
	case actionMoveUp:
		form.MoveLinkUp(linkID)
	case actionMoveDown:
		form.MoveLinkDown(linkID)
	case actionSubmit:
		if len(fieldErrors) == 0 {
			return h.submit(c, form)
		}
	}
	return h.renderSetup(c, form, fieldErrors, status)
}

func (h *CardHandler) submit(c *fiber.Ctx, form *services.CardForm) error {
	redirect, err := form.Submit(c.UserContext(), h.service)
	if err == nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, msgSaved)
		return c.Redirect(redirect, fiber.StatusSeeOther)
	}

	if fe, ok := services.AsFieldError(err); ok {
		data := map[string]string{fe.Field: fe.Message}
		return h.renderSetupWith(c, form, data, fiber.Map{renderer.FlashWarningKeyView: msgRequiredFields}, fiber.StatusUnprocessableEntity)
	}
	if errors.Is(err, services.ErrCardNotFound) {
		return RenderNotFound(c, h.brand)
	}
	configslog.Log.Error("SubmitSetup: save failed", zap.String("card_id", form.CardID), zap.Error(err))
	return h.renderSetupWith(c, form, nil, fiber.Map{renderer.FlashErrorKeyView: msgSaveFailed}, fiber.StatusServiceUnavailable)
}

// acceptPhoto validates and compresses an upload into form. On failure the
// previously accepted photo stays and the message is returned.
func (h *CardHandler) acceptPhoto(c *fiber.Ctx, form *services.CardForm, fh *multipart.FileHeader) string {
	if err := imagecompress.ValidateFile(fh); err != nil {
		return capitalize(err.Error())
	}
	raw, mediaType, err := imagecompress.ReadFile(fh)
	if err != nil {
		return capitalize(err.Error())
	}
	res, err := imagecompress.Compress(c.UserContext(), raw, mediaType, h.imageOpts)
	if err != nil {
		configslog.Log.Warn("Profile photo rejected", zap.String("file", fh.Filename), zap.Error(err))
		return "Could not process the image: " + err.Error()
	}
	configslog.SLog.Debugw("Profile photo compressed",
		"file", fh.Filename, "width", res.Width, "height", res.Height,
		"quality", res.Quality, "size_kb", res.SizeKB, "attempts", res.Attempts)
	form.SetPhoto(fh.Filename, res.DataURI)
	return ""
}

func (h *CardHandler) setupLoadFailed(c *fiber.Ctx, code string, err error) error {
	if errors.Is(err, services.ErrCardStoreFailure) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msgCodeRetry)
		return c.Redirect("/config?code="+strings.ToUpper(code), fiber.StatusSeeOther)
	}
	return RenderNotFound(c, h.brand)
}

func (h *CardHandler) renderSetup(c *fiber.Ctx, form *services.CardForm, fieldErrors map[string]string, status int) error {
	return h.renderSetupWith(c, form, fieldErrors, nil, status)
}

func (h *CardHandler) renderSetupWith(c *fiber.Ctx, form *services.CardForm, fieldErrors map[string]string, extra fiber.Map, status int) error {
	preview := form.ToConfig()
	data := fiber.Map{
		"Form":        form,
		"Preview":     preview,
		"Errors":      fieldErrors,
		"Icons":       models.IconCatalog,
		"Palette":     models.ThemePalette,
		"LinkCount":   len(form.Links),
		"BackPath":    "/config?code=" + form.Code,
		"MaxUploadMB": imagecompress.MaxUploadBytes >> 20,
	}
	for k, v := range extra {
		data[k] = v
	}
	renderer.SetPresentation(data, form.Title(h.brand), preview.Theme())
	return renderer.Render(c, "card/setup", mainLayout, data, status)
}

// formFromValues rebuilds the staging form from a post. Link rows arrive as
// parallel link_* lists in display order.
func formFromValues(card *models.Card, values map[string][]string) *services.CardForm {
	form := services.NewCardForm(card.ID, card.Code)
	form.EditMode = card.Config != nil
	form.SetField("name", first(values, "name"))
	form.SetField("bio", first(values, "bio"))
	if theme := first(values, "theme_color"); theme != "" {
		form.SetField("themeColor", theme)
	}

	if photo := first(values, "profile_photo_base64"); imagecompress.IsJPEGDataURI(photo) {
		form.SetPhoto(first(values, "profile_photo_name"), photo)
	}

	ids := values["link_id"]
	if len(ids) == 0 {
		return form
	}
	links := make([]services.FormLink, 0, len(ids))
	for i, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			continue
		}
		links = append(links, services.FormLink{
			ID:          id,
			Title:       at(values["link_title"], i),
			Description: at(values["link_description"], i),
			URL:         at(values["link_url"], i),
			Icon:        at(values["link_icon"], i),
		})
	}
	if len(links) > 0 {
		form.Links = links
	}
	return form
}

// postedValues collects the posted fields of a multipart or urlencoded body.
func postedValues(c *fiber.Ctx) map[string][]string {
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		return mf.Value
	}
	values := map[string][]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values[string(k)] = append(values[string(k)], string(v))
	})
	return values
}

func parseAction(raw string) (string, int) {
	name, arg, found := strings.Cut(raw, ":")
	if !found {
		if name == "" {
			return actionSubmit, 0
		}
		return name, 0
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return "", 0
	}
	return name, id
}

func first(values map[string][]string, key string) string {
	return at(values[key], 0)
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
