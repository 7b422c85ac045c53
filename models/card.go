package models

import (
	"regexp"
	"strings"
	"time"
)

// CardCodeLength is the fixed length of a card code.
const CardCodeLength = 8

var cardCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// Card is one physical NFC card and its public configuration.
type Card struct {
	BaseModel
	Code       string      `gorm:"type:varchar(8);uniqueIndex;not null" json:"code"` // Immutable
	Configured bool        `gorm:"not null;default:false;index" json:"configured"`
	Config     *CardConfig `gorm:"serializer:json" json:"config,omitempty"` // Only set when Configured
	LastUsed   *time.Time  `json:"lastUsed,omitempty"`
	Owner      string      `gorm:"type:varchar(150)" json:"owner,omitempty"` // Copy of Config.Name
}

// NormalizeCardCode uppercases raw and reports whether the result is a
// well-formed code. The length check runs on the raw bytes so that
// non-ASCII letters which uppercase into ASCII cannot slip through.
func NormalizeCardCode(raw string) (string, bool) {
	if len(raw) != CardCodeLength {
		return strings.ToUpper(raw), false
	}
	code := strings.ToUpper(raw)
	return code, cardCodePattern.MatchString(code)
}
