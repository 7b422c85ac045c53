package seeders

import (
	"context"
	"errors"
	"fmt"

	"echotap.link/configs/configslog"
	"echotap.link/models"
	"echotap.link/repositories"
	"echotap.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxCodeAttempts = 10

// CardSeedOptions selects which blank cards to provision. Codes are created
// as given (after normalization); Count more get generated codes.
type CardSeedOptions struct {
	Count int
	Codes []string
}

// SeedCards provisions unconfigured cards and returns the codes it created.
// Codes that already exist are skipped.
func SeedCards(db *gorm.DB, opts CardSeedOptions) ([]string, error) {
	ctx := context.Background()
	repo := repositories.NewCardRepositoryWithDB(db)
	var created []string

	for _, raw := range opts.Codes {
		code, ok := models.NormalizeCardCode(raw)
		if !ok {
			return created, fmt.Errorf("invalid card code %q", raw)
		}
		exists, err := repo.CodeExists(ctx, code)
		if err != nil {
			return created, err
		}
		if exists {
			configslog.SLog.Infof("Card %s already exists, skipping.", code)
			continue
		}
		if err := repo.Create(ctx, &models.Card{Code: code}); err != nil {
			configslog.Log.Error("Failed to create card", zap.String("code", code), zap.Error(err))
			return created, err
		}
		created = append(created, code)
	}

	for i := 0; i < opts.Count; i++ {
		code, err := uniqueCode(ctx, repo)
		if err != nil {
			return created, err
		}
		if err := repo.Create(ctx, &models.Card{Code: code}); err != nil {
			configslog.Log.Error("Failed to create card", zap.String("code", code), zap.Error(err))
			return created, err
		}
		created = append(created, code)
	}

	if len(created) > 0 {
		total, err := repo.Count(ctx)
		if err != nil {
			return created, err
		}
		configslog.SLog.Infof("%d card(s) provisioned, %d in total.", len(created), total)
	}
	return created, nil
}

func uniqueCode(ctx context.Context, repo repositories.ICardRepository) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := utils.GenerateCardCode(models.CardCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		configslog.Log.Warn("Card code collision, retrying", zap.String("code", code))
	}
	return "", errors.New("could not generate a unique card code")
}
