package services

import (
	"context"
	"net/url"
	"strings"

	"echotap.link/models"
)

// FormLink is a link row in the setup form. ID is a local handle that only
// lives as long as the form; stored links have no id.
type FormLink struct {
	ID          int
	Title       string
	Description string
	URL         string
	Icon        string
}

func (l FormLink) complete() bool {
	return strings.TrimSpace(l.Title) != "" && strings.TrimSpace(l.URL) != ""
}

// ConfigSaver persists a submitted config. CardService implements it.
type ConfigSaver interface {
	SaveConfig(ctx context.Context, cardID string, config models.CardConfig, photoBase64 string) error
}

// CardForm is the staging copy of one card's config while it is edited.
// Edits are applied in call order; nothing is stored until Submit.
type CardForm struct {
	CardID string
	Code   string

	Name       string
	Bio        string
	ThemeColor string

	PhotoFileName string
	PhotoBase64   string

	Links    []FormLink
	EditMode bool
}

// NewCardForm returns an empty form with a single blank link.
func NewCardForm(cardID, code string) *CardForm {
	return &CardForm{
		CardID:     cardID,
		Code:       code,
		ThemeColor: models.DefaultThemeColor,
		Links:      []FormLink{blankLink(1)},
	}
}

// NewCardFormFromConfig seeds a form from a stored config. Link ids are
// assigned 1..N by position. A nil config gives the same form as NewCardForm.
func NewCardFormFromConfig(cardID, code string, config *models.CardConfig) *CardForm {
	f := NewCardForm(cardID, code)
	if config == nil {
		return f
	}
	f.EditMode = true
	f.Name = config.Name
	f.Bio = config.Bio
	f.PhotoBase64 = config.ProfilePhoto
	if config.ThemeColor != "" {
		f.ThemeColor = config.ThemeColor
	}
	if len(config.Links) > 0 {
		f.Links = make([]FormLink, 0, len(config.Links))
		for i, l := range config.Links {
			f.Links = append(f.Links, FormLink{
				ID:          i + 1,
				Title:       l.Title,
				Description: l.Description,
				URL:         l.URL,
				Icon:        l.Icon,
			})
		}
	}
	return f
}

func blankLink(id int) FormLink {
	return FormLink{ID: id, Icon: models.IconWebsite}
}

// SetField overwrites one of the scalar fields: name, bio or themeColor.
// It reports whether name was recognized.
func (f *CardForm) SetField(name, value string) bool {
	switch name {
	case "name":
		f.Name = value
	case "bio":
		f.Bio = value
	case "themeColor":
		f.ThemeColor = value
	default:
		return false
	}
	return true
}

// SetPhoto replaces the accepted photo with an already compressed one.
func (f *CardForm) SetPhoto(fileName, base64 string) {
	f.PhotoFileName = fileName
	f.PhotoBase64 = base64
}

// AddLink appends a blank link and returns its id.
func (f *CardForm) AddLink() int {
	id := 1
	for _, l := range f.Links {
		if l.ID >= id {
			id = l.ID + 1
		}
	}
	f.Links = append(f.Links, blankLink(id))
	return id
}

// UpdateLink sets one field of the link with id. Unknown ids and fields
// are ignored.
func (f *CardForm) UpdateLink(id int, field, value string) bool {
	i := f.indexOf(id)
	if i < 0 {
		return false
	}
	l := &f.Links[i]
	switch field {
	case "title":
		l.Title = value
	case "description":
		l.Description = value
	case "url":
		l.URL = value
	case "icon":
		l.Icon = value
	default:
		return false
	}
	return true
}

// RemoveLink drops the link with id unless it is the only one left.
func (f *CardForm) RemoveLink(id int) bool {
	if len(f.Links) <= 1 {
		return false
	}
	i := f.indexOf(id)
	if i < 0 {
		return false
	}
	f.Links = append(f.Links[:i], f.Links[i+1:]...)
	return true
}

// MoveLinkUp swaps the link with its predecessor. No-op on the first link.
func (f *CardForm) MoveLinkUp(id int) bool {
	i := f.indexOf(id)
	if i <= 0 {
		return false
	}
	f.Links[i-1], f.Links[i] = f.Links[i], f.Links[i-1]
	return true
}

// MoveLinkDown swaps the link with its successor. No-op on the last link.
func (f *CardForm) MoveLinkDown(id int) bool {
	i := f.indexOf(id)
	if i < 0 || i >= len(f.Links)-1 {
		return false
	}
	f.Links[i], f.Links[i+1] = f.Links[i+1], f.Links[i]
	return true
}

func (f *CardForm) indexOf(id int) int {
	for i, l := range f.Links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Validate checks the fields required before saving.
func (f *CardForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &FieldError{Field: "name", Message: "Name is required"}
	}
	if f.PhotoBase64 == "" {
		return &FieldError{Field: "photo", Message: "Profile photo is required"}
	}
	return nil
}

// ToConfig builds the config that would be stored. Incomplete links are
// dropped and an unusable theme color falls back to the default.
func (f *CardForm) ToConfig() models.CardConfig {
	links := make([]models.ProfileLink, 0, len(f.Links))
	for _, l := range f.Links {
		if !l.complete() {
			continue
		}
		icon := l.Icon
		if icon == "" {
			icon = models.IconWebsite
		}
		links = append(links, models.ProfileLink{
			Title:       strings.TrimSpace(l.Title),
			Description: strings.TrimSpace(l.Description),
			URL:         strings.TrimSpace(l.URL),
			Icon:        icon,
		})
	}
	theme := f.ThemeColor
	if !models.IsHexColor(theme) {
		theme = models.DefaultThemeColor
	}
	return models.CardConfig{
		Name:         strings.TrimSpace(f.Name),
		Bio:          strings.TrimSpace(f.Bio),
		ProfilePhoto: f.PhotoBase64,
		ThemeColor:   theme,
		Links:        links,
	}
}

// Submit validates the form and saves it through saver. On success it
// returns the public view path for the card.
func (f *CardForm) Submit(ctx context.Context, saver ConfigSaver) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	if f.CardID == "" {
		return "", ErrCardNotFound
	}
	if err := saver.SaveConfig(ctx, f.CardID, f.ToConfig(), f.PhotoBase64); err != nil {
		return "", err
	}
	return ViewPath(f.Code), nil
}

// Title is the setup page title.
func (f *CardForm) Title(brand string) string {
	if !f.EditMode {
		return "Configure card - " + brand
	}
	label := f.Name
	if label == "" {
		label = f.Code
	}
	return "Edit card (" + label + ") - " + brand
}

// ViewPath is the public view route for code.
func ViewPath(code string) string {
	return "/view?code=" + url.QueryEscape(code)
}

// SetupPath is the setup form route for a redeemed card.
func SetupPath(cardID, code string) string {
	q := url.Values{}
	q.Set("cardId", cardID)
	q.Set("code", code)
	return "/setup?" + q.Encode()
}
