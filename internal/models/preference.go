package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preference stores the persisted UI settings for a user. There is at
// most one Preference per user.
type Preference struct {
	DefaultModel
	User                 User      `json:"-"`
	UserID               uuid.UUID `gorm:"uniqueIndex"`
	DarkMode             bool
	NotificationsEnabled bool
}

func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Preference)
	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// Returns the user's preferences for export
func (Preference) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Preference{}, "user_id = ?", userID)
}
