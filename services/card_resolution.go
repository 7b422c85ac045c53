package services

import "echotap.link/models"

// CardState is the terminal state a submitted code resolves to.
type CardState string

const (
	CardStateInvalid      CardState = "invalid"
	CardStateNotFound     CardState = "not_found"
	CardStateUnconfigured CardState = "unconfigured"
	CardStateConfigured   CardState = "configured"
)

// PresentationHints are page-level values derived from a resolution. They
// are applied by the renderer; resolving a code never touches page state.
type PresentationHints struct {
	PageTitle  string `json:"pageTitle"`
	ThemeColor string `json:"themeColor"`
}

// Resolution is the outcome of resolving a code.
//
// Err is set for the invalid and not-found states: ErrCardCodeInvalid,
// ErrCardNotFound, or a wrapped ErrCardStoreFailure when the lookup itself
// failed. Config is only set for configured cards and is never nil there.
type Resolution struct {
	State  CardState
	Code   string
	CardID string
	Config *models.CardConfig
	Hints  PresentationHints
	Err    error
}

// Found reports whether the code matched a card.
func (r Resolution) Found() bool {
	return r.State == CardStateConfigured || r.State == CardStateUnconfigured
}
