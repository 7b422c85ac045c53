// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"echotap.link/configs"
	"echotap.link/configs/configslog"
	"echotap.link/models"
	"echotap.link/repositories"

	"go.uber.org/zap"
)

// DefaultBrand is used in page titles when no app name is configured.
const DefaultBrand = "EchoTap"

// ICardService is the card use-case layer shared by the public view, the
// code entry and the setup form.
type ICardService interface {
	Resolve(ctx context.Context, rawCode string) Resolution
	ViewCard(ctx context.Context, rawCode string) Resolution
	RedeemCode(ctx context.Context, rawCode string) (string, error)
	LoadForSetup(ctx context.Context, cardID, rawCode string) (*models.Card, error)
	SaveConfig(ctx context.Context, cardID string, config models.CardConfig, photoBase64 string) error
	TouchLastUsed(ctx context.Context, cardID string) error
	NotFoundHints() PresentationHints
}

// CardService implements ICardService.
type CardService struct {
	repo  repositories.ICardRepository
	brand string
	now   func() time.Time
}

// NewCardService wires the service to the global database and app name.
func NewCardService() ICardService {
	return NewCardServiceWithRepo(repositories.NewCardRepository(), configs.GetAppConfig().Name)
}

// NewCardServiceWithRepo builds a service over repo. An empty brand falls
// back to DefaultBrand.
func NewCardServiceWithRepo(repo repositories.ICardRepository, brand string) *CardService {
	if brand == "" {
		brand = DefaultBrand
	}
	return &CardService{repo: repo, brand: brand, now: time.Now}
}

// Resolve classifies rawCode into one of the four card states. Malformed
// codes never reach the store. Resolve has no side effects.
func (s *CardService) Resolve(ctx context.Context, rawCode string) Resolution {
	code, ok := models.NormalizeCardCode(rawCode)
	if !ok {
		return Resolution{State: CardStateInvalid, Code: code, Hints: s.NotFoundHints(), Err: ErrCardCodeInvalid}
	}

	card, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		res := Resolution{State: CardStateNotFound, Code: code, Hints: s.NotFoundHints(), Err: ErrCardNotFound}
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("CardService.Resolve: lookup failed", zap.String("code", code), zap.Error(err))
			res.Err = fmt.Errorf("%w: %v", ErrCardStoreFailure, err)
		}
		return res
	}

	if !card.Configured {
		return Resolution{
			State:  CardStateUnconfigured,
			Code:   code,
			CardID: card.ID,
			Hints:  PresentationHints{PageTitle: "Card " + code + " - " + s.brand, ThemeColor: models.DefaultThemeColor},
		}
	}

	config := card.Config
	if config == nil {
		configslog.Log.Warn("CardService.Resolve: configured card without config", zap.String("code", code), zap.String("card_id", card.ID))
		config = models.PlaceholderConfig()
	}
	return Resolution{
		State:  CardStateConfigured,
		Code:   code,
		CardID: card.ID,
		Config: config,
		Hints:  PresentationHints{PageTitle: s.profileTitle(config), ThemeColor: config.Theme()},
	}
}

func (s *CardService) profileTitle(config *models.CardConfig) string {
	if config.Name == "" {
		return s.brand + " card"
	}
	return config.Name + " - " + s.brand
}

// ViewCard resolves rawCode for the public view and records the visit on
// configured cards. A failed touch is logged and does not change the result.
func (s *CardService) ViewCard(ctx context.Context, rawCode string) Resolution {
	res := s.Resolve(ctx, rawCode)
	if res.State != CardStateConfigured {
		return res
	}
	if err := s.TouchLastUsed(ctx, res.CardID); err != nil {
		configslog.Log.Warn("CardService.ViewCard: last used not recorded", zap.String("card_id", res.CardID), zap.Error(err))
	}
	return res
}

// RedeemCode exchanges a code for the id of its card, for the setup flow.
// It applies the same rules as Resolve.
func (s *CardService) RedeemCode(ctx context.Context, rawCode string) (string, error) {
	res := s.Resolve(ctx, rawCode)
	if !res.Found() {
		return "", res.Err
	}
	return res.CardID, nil
}

// LoadForSetup returns the card with cardID, provided rawCode is its code.
// Any mismatch is reported as ErrCardNotFound.
func (s *CardService) LoadForSetup(ctx context.Context, cardID, rawCode string) (*models.Card, error) {
	code, ok := models.NormalizeCardCode(rawCode)
	if !ok {
		return nil, ErrCardCodeInvalid
	}
	if cardID == "" {
		return nil, ErrCardNotFound
	}
	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("CardService.LoadForSetup: lookup failed", zap.String("card_id", cardID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCardStoreFailure, err)
	}
	if card.Code != code {
		configslog.Log.Warn("CardService.LoadForSetup: code does not match card", zap.String("code", code), zap.String("card_id", cardID))
		return nil, ErrCardNotFound
	}
	return card, nil
}

// SaveConfig replaces the card's config wholesale, marks it configured and
// stamps last used. A non-empty photoBase64 overrides config.ProfilePhoto.
func (s *CardService) SaveConfig(ctx context.Context, cardID string, config models.CardConfig, photoBase64 string) error {
	if cardID == "" {
		return ErrCardNotFound
	}
	if photoBase64 != "" {
		config.ProfilePhoto = photoBase64
	}
	if config.Links == nil {
		config.Links = []models.ProfileLink{}
	}

	data := map[string]interface{}{
		"config":     &config,
		"configured": true,
		"last_used":  s.now(),
		"owner":      config.OwnerName(),
	}
	if err := s.repo.UpdateFields(ctx, cardID, data); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		configslog.Log.Error("CardService.SaveConfig: update failed", zap.String("card_id", cardID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCardStoreFailure, err)
	}
	configslog.SLog.Infow("Card config saved", "card_id", cardID, "links", len(config.Links))
	return nil
}

// TouchLastUsed records that the card was just viewed.
func (s *CardService) TouchLastUsed(ctx context.Context, cardID string) error {
	if cardID == "" {
		return ErrCardNotFound
	}
	if err := s.repo.UpdateFields(ctx, cardID, map[string]interface{}{"last_used": s.now()}); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("%w: %v", ErrCardStoreFailure, err)
	}
	return nil
}

// NotFoundHints are the hints for the not-found page.
func (s *CardService) NotFoundHints() PresentationHints {
	return PresentationHints{PageTitle: "404 - Page not found | " + s.brand, ThemeColor: models.DefaultThemeColor}
}

var _ ICardService = (*CardService)(nil)
