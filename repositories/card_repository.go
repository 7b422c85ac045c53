// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"echotap.link/configs"
	"echotap.link/configs/configslog"
	"echotap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository is the card store: exact-match lookup by field, fetch by id
// and partial updates by column name.
type ICardRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Card, error)
	FindByID(ctx context.Context, id string) (*models.Card, error)
	UpdateFields(ctx context.Context, id string, data map[string]interface{}) error
	Create(ctx context.Context, card *models.Card) error
	CodeExists(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CardRepository implements ICardRepository on top of gorm.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository uses the global connection.
func NewCardRepository() ICardRepository {
	return &CardRepository{db: configs.GetDB()}
}

// NewCardRepositoryWithDB binds the repository to db (a transaction or a test database).
func NewCardRepositoryWithDB(db *gorm.DB) ICardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindByCode returns the card whose code equals code exactly. Codes are
// unique, but if the store ever holds duplicates the oldest row wins.
func (r *CardRepository) FindByCode(ctx context.Context, code string) (*models.Card, error) {
	if code == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.getDB(ctx).Where("code = ?", code).Order("created_at").First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByCode: DB error", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindByID returns the card with the given primary key.
func (r *CardRepository) FindByID(ctx context.Context, id string) (*models.Card, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.getDB(ctx).Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByID: DB error", zap.String("card_id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// UpdateFields sets only the given columns on the card with id.
func (r *CardRepository) UpdateFields(ctx context.Context, id string, data map[string]interface{}) error {
	if id == "" {
		return ErrNotFound
	}
	if len(data) == 0 {
		return errors.New("no fields to update")
	}
	db := r.getDB(ctx)
	result := db.Model(&models.Card{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		countErr := db.Model(&models.Card{}).Where("id = ?", id).Count(&exists).Error
		if countErr == nil && exists == 0 {
			return ErrNotFound
		}
		configslog.SLog.Debugw("CardRepository.UpdateFields: no rows affected", "card_id", id)
	}
	return nil
}

// Create inserts a new card. The ID is assigned by BaseModel.BeforeCreate.
func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("card must not be nil")
	}
	return r.getDB(ctx).Create(card).Error
}

// CodeExists reports whether a card with code is already stored.
func (r *CardRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Card{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		configslog.Log.Error("CardRepository.CodeExists: DB error", zap.String("code", code), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of stored cards.
func (r *CardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Card{}).Count(&count).Error
	return count, err
}

var _ ICardRepository = (*CardRepository)(nil)
