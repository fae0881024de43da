package v1

import (
	"strings"

	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
)

// RegisterEditable represents the data needed to create a user account.
type RegisterEditable struct {
	Email    string `json:"email" example:"morsheda@example.com" binding:"required"` // Email address, used for login
	Password string `json:"password" example:"correct horse battery staple" binding:"required,min=8"`
	Name     string `json:"name" example:"Morsheda Begum" default:""` // Display name
}

type LoginEditable struct {
	Email    string `json:"email" example:"morsheda@example.com" binding:"required"`
	Password string `json:"password" example:"correct horse battery staple" binding:"required"`
}

func (editable LoginEditable) normalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(editable.Email))
}

type PasswordResetEditable struct {
	Email           string `json:"email" example:"morsheda@example.com" binding:"required"`
	CurrentPassword string `json:"currentPassword" example:"correct horse battery staple" binding:"required"`
	NewPassword     string `json:"newPassword" example:"horse battery staple correct" binding:"required,min=8"`
}

func (editable PasswordResetEditable) normalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(editable.Email))
}

// AuthData is returned on successful registration or login.
type AuthData struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."` // Bearer token for the Authorization header
	User  User   `json:"user"`
}

// User is the API representation of a user account.
type User struct {
	models.DefaultModel
	Email string `json:"email" example:"morsheda@example.com"`
	Name  string `json:"name" example:"Morsheda Begum"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Name:         model.Name,
	}
}

func newAuthData(token string, model models.User) AuthData {
	return AuthData{
		Token: token,
		User:  newUser(model),
	}
}

type AuthResponse struct {
	Data  *AuthData `json:"data"`                                          // The token and user
	Error *string   `json:"error" example:"credentials are not correct"`   // The error, if any occurred
}
