package models

import (
	"time"

	"github.com/segmentio/ksuid"
	"gorm.io/gorm"
)

// BaseModel carries the primary key and timestamps shared by every table.
// IDs are KSUIDs: opaque, sortable by creation time, assigned on insert.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(27);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh ID unless the caller already set one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = ksuid.New().String()
	}
	return nil
}
