package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactType describes the kind of counterparty.
type ContactType string

const (
	ContactPerson       ContactType = "person"
	ContactOrganization ContactType = "organization"
)

// Contact is a free-standing counterparty record referenced by loans.
type Contact struct {
	DefaultModel
	User    User      `json:"-"`
	UserID  uuid.UUID `gorm:"index"`
	Name    string
	Type    ContactType
	Phone   string
	Email   string
	Address string
}

// BeforeSave validates the contact type and trims whitespace.
func (c *Contact) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)

	switch c.Type {
	case ContactPerson, ContactOrganization:
		return nil
	}

	return ErrContactTypeInvalid
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Contact)
	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// Returns the user's contacts for export
func (Contact) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Contact{}, "user_id = ?", userID)
}
