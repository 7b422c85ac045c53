package seeders

import (
	"testing"

	"echotap.link/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Card{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedCards(t *testing.T) {
	db := newTestDB(t)

	created, err := SeedCards(db, CardSeedOptions{Count: 3, Codes: []string{"ab12cd34"}})
	if err != nil {
		t.Fatalf("SeedCards: %v", err)
	}
	if len(created) != 4 || created[0] != "AB12CD34" {
		t.Fatalf("created = %v, want AB12CD34 plus 3 generated", created)
	}

	var cards []models.Card
	if err := db.Find(&cards).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("stored %d cards, want 4", len(cards))
	}
	for _, c := range cards {
		if c.Configured || c.Config != nil || c.ID == "" {
			t.Errorf("card %+v is not a blank card", c)
		}
		if _, ok := models.NormalizeCardCode(c.Code); !ok {
			t.Errorf("stored code %q is malformed", c.Code)
		}
	}

	again, err := SeedCards(db, CardSeedOptions{Codes: []string{"AB12CD34"}})
	if err != nil || len(again) != 0 {
		t.Errorf("reseed = %v, %v; want nothing created", again, err)
	}
}

func TestSeedCardsRejectsMalformedCode(t *testing.T) {
	db := newTestDB(t)
	if _, err := SeedCards(db, CardSeedOptions{Codes: []string{"AB-12"}}); err == nil {
		t.Error("SeedCards accepted a malformed code")
	}
}
