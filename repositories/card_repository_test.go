package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"echotap.link/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (ICardRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1) // one connection keeps the in-memory database alive
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.Card{}); err != nil {
		t.Fatalf("AutoMigrate() error: %v", err)
	}
	return NewCardRepositoryWithDB(db), db
}

func TestCardRepository_CreateAndFindByCode(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	card := &models.Card{Code: "AB12CD34"}
	if err := repo.Create(ctx, card); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if card.ID == "" {
		t.Fatal("Create() did not assign an ID")
	}

	got, err := repo.FindByCode(ctx, "AB12CD34")
	if err != nil {
		t.Fatalf("FindByCode() error: %v", err)
	}
	if got.ID != card.ID {
		t.Errorf("ID = %q, want %q", got.ID, card.ID)
	}
	if got.Configured {
		t.Error("Configured = true, want false for a fresh card")
	}
	if got.Config != nil {
		t.Errorf("Config = %+v, want nil for a fresh card", got.Config)
	}
	if got.LastUsed != nil {
		t.Errorf("LastUsed = %v, want nil", got.LastUsed)
	}
}

func TestCardRepository_FindByCodeNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindByCode(context.Background(), "ZZZZZZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByCode() error = %v, want ErrNotFound", err)
	}
	_, err = repo.FindByCode(context.Background(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByCode(\"\") error = %v, want ErrNotFound", err)
	}
}

func TestCardRepository_UpdateFieldsReplacesConfig(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	card := &models.Card{Code: "QWERTY12"}
	if err := repo.Create(ctx, card); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	cfg := &models.CardConfig{
		Name:         "Ana",
		Bio:          "hello",
		ProfilePhoto: "data:image/jpeg;base64,AAAA",
		ThemeColor:   "#059669",
		Links: []models.ProfileLink{
			{Title: "Site", URL: "https://ana.dev", Icon: "website"},
			{Title: "Mail", URL: "mailto:ana@ana.dev", Icon: "email"},
		},
	}
	err := repo.UpdateFields(ctx, card.ID, map[string]interface{}{
		"config":     cfg,
		"configured": true,
		"last_used":  now,
		"owner":      cfg.Name,
	})
	if err != nil {
		t.Fatalf("UpdateFields() error: %v", err)
	}

	got, err := repo.FindByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if !got.Configured {
		t.Error("Configured = false, want true")
	}
	if got.Owner != "Ana" {
		t.Errorf("Owner = %q, want %q", got.Owner, "Ana")
	}
	if got.LastUsed == nil {
		t.Fatal("LastUsed = nil, want a timestamp")
	}
	if got.Config == nil {
		t.Fatal("Config = nil after save")
	}
	if got.Config.Name != "Ana" || got.Config.ThemeColor != "#059669" {
		t.Errorf("Config = %+v, want name Ana and theme #059669", got.Config)
	}
	if len(got.Config.Links) != 2 || got.Config.Links[0].Title != "Site" || got.Config.Links[1].Title != "Mail" {
		t.Errorf("Links = %+v, want [Site Mail] in order", got.Config.Links)
	}
	if got.Code != "QWERTY12" {
		t.Errorf("Code = %q, want it unchanged", got.Code)
	}
}

func TestCardRepository_UpdateFieldsUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.UpdateFields(context.Background(), "missing", map[string]interface{}{"owner": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateFields() error = %v, want ErrNotFound", err)
	}
}

func TestCardRepository_CodeUniqueness(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Card{Code: "UNIQUE01"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := repo.Create(ctx, &models.Card{Code: "UNIQUE01"}); err == nil {
		t.Error("expected an error for a duplicate code")
	}

	exists, err := repo.CodeExists(ctx, "UNIQUE01")
	if err != nil {
		t.Fatalf("CodeExists() error: %v", err)
	}
	if !exists {
		t.Error("CodeExists(UNIQUE01) = false, want true")
	}
	exists, err = repo.CodeExists(ctx, "UNIQUE02")
	if err != nil {
		t.Fatalf("CodeExists() error: %v", err)
	}
	if exists {
		t.Error("CodeExists(UNIQUE02) = true, want false")
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}
