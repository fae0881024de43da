package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of all other resources.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Name         string
}

// BeforeSave normalizes the email address and trims whitespace.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	return nil
}

// SetPassword hashes the cleartext password with bcrypt.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the
// stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserExport is the backup representation of a user. The password
// hash is part of the document so that logins survive a restore.
type UserExport struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Returns the user itself for export
func (User) Export(userID uuid.UUID) (json.RawMessage, error) {
	var users []User
	err := DB.Unscoped().Where("id = ?", userID).Find(&users).Error
	if err != nil {
		return nil, err
	}

	exports := make([]UserExport, 0, len(users))
	for _, user := range users {
		exports = append(exports, UserExport{User: user, PasswordHash: user.PasswordHash})
	}

	j, err := json.Marshal(&exports)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
