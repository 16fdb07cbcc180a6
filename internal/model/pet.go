package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pet represents a boarding record for a single pet. Ownership is enforced
// per-operation in the service layer, not by the storage schema.
type Pet struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	OwnerName string    `json:"owner_name" gorm:"size:100;not null"`
	ImageURL  string    `json:"image_url" gorm:"size:512;not null"`
	Age       int       `json:"age" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
