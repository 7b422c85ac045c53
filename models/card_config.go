package models

import (
	"database/sql/driver"
	"encoding/json"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DefaultThemeColor is used whenever a config has no usable theme color.
const DefaultThemeColor = "#2563EB"

// DefaultOwner is stored as owner when a config is saved without a name.
const DefaultOwner = "User"

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CardConfig is the public profile of a configured card. It is stored as a
// single JSON document and always replaced wholesale.
//
// Bio is optional and omitted from storage when empty. ThemeColor falls back
// to DefaultThemeColor and link icons fall back to IconWebsite; absence of the
// whole config is expressed by a nil *CardConfig, never by an empty struct.
type CardConfig struct {
	Name         string        `json:"name"`
	Bio          string        `json:"bio,omitempty"`
	ProfilePhoto string        `json:"profilePhoto"` // data:image/jpeg;base64,...
	ThemeColor   string        `json:"themeColor"`
	Links        []ProfileLink `json:"links"`
}

// ProfileLink is one outbound link on a card. Stored links carry no id;
// their identity is their position in CardConfig.Links.
type ProfileLink struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
}

// Theme returns the configured theme color or the default.
func (c *CardConfig) Theme() string {
	if c == nil || !IsHexColor(c.ThemeColor) {
		return DefaultThemeColor
	}
	return c.ThemeColor
}

// OwnerName is the denormalized owner value stored next to the config.
func (c *CardConfig) OwnerName() string {
	if c == nil || c.Name == "" {
		return DefaultOwner
	}
	return c.Name
}

// IconGlyph resolves the link's icon tag to a glyph name.
func (l ProfileLink) IconGlyph() string {
	return IconGlyph(l.Icon)
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// Value lets a *CardConfig be passed directly in map based updates.
func (c CardConfig) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// GormDBDataType picks jsonb on postgres and a plain JSON column elsewhere.
func (CardConfig) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "JSON"
}

// PlaceholderConfig is shown when a card claims to be configured but has no
// stored config. It should not happen in practice.
func PlaceholderConfig() *CardConfig {
	return &CardConfig{
		Name:       "Profile unavailable",
		Bio:        "This card has not finished its setup yet.",
		ThemeColor: DefaultThemeColor,
		Links:      []ProfileLink{},
	}
}
