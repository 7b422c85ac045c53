package services

import (
	"context"

	"echotap.link/models"
	"echotap.link/repositories"
)

type fakeCardRepo struct {
	cards map[string]*models.Card // by id

	findErr   error
	updateErr error

	findCalls   int
	idCalls     int
	updateCalls int
	lastID      string
	lastUpdate  map[string]interface{}
}

func newFakeCardRepo(cards ...*models.Card) *fakeCardRepo {
	r := &fakeCardRepo{cards: map[string]*models.Card{}}
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return r
}

func (r *fakeCardRepo) FindByCode(_ context.Context, code string) (*models.Card, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, c := range r.cards {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCardRepo) FindByID(_ context.Context, id string) (*models.Card, error) {
	r.idCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	if c, ok := r.cards[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCardRepo) UpdateFields(_ context.Context, id string, data map[string]interface{}) error {
	r.updateCalls++
	r.lastID = id
	r.lastUpdate = data
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.cards[id]; !ok {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *fakeCardRepo) Create(_ context.Context, card *models.Card) error {
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, c := range r.cards {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCardRepo) Count(context.Context) (int64, error) {
	return int64(len(r.cards)), nil
}

var _ repositories.ICardRepository = (*fakeCardRepo)(nil)

func unconfiguredCard(id, code string) *models.Card {
	c := &models.Card{Code: code}
	c.ID = id
	return c
}

func configuredCard(id, code string, config *models.CardConfig) *models.Card {
	c := &models.Card{Code: code, Configured: true, Config: config}
	c.ID = id
	return c
}
