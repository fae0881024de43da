package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/khademul4765/arther-hiseb-sub000/internal/controllers/v1"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/khademul4765/arther-hiseb-sub000/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    "Morsheda@Example.com",
		Password: "correct horse battery staple",
		Name:     "Morsheda Begum",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.Token)
	assert.Equal(suite.T(), "morsheda@example.com", response.Data.User.Email)

	// Registration seeds the default categories
	var categories []models.Category
	require.Nil(suite.T(), models.DB.Where("user_id = ?", response.Data.User.ID).Find(&categories).Error)
	assert.NotEmpty(suite.T(), categories)

	// Registration creates the preferences with notifications enabled
	var preference models.Preference
	require.Nil(suite.T(), models.DB.First(&preference, "user_id = ?", response.Data.User.ID).Error)
	assert.True(suite.T(), preference.NotificationsEnabled)
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"broken JSON", `{ "email": "`},
		{"missing email", v1.RegisterEditable{Password: "correct horse battery staple"}},
		{"short password", v1.RegisterEditable{Email: "short@example.com", Password: "hunter2"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := v1.RegisterEditable{Email: "taken@example.com", Password: "correct horse battery staple"}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrUserEmailNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestLogin() {
	_ = registerTestUserWithEmail(suite.T(), "munir@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    " MUNIR@example.com ",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.Token)
}

func (suite *TestSuiteStandard) TestLoginInvalidCredentials() {
	_ = registerTestUserWithEmail(suite.T(), "munir@example.com")

	tests := []struct {
		name  string
		login v1.LoginEditable
	}{
		{"wrong password", v1.LoginEditable{Email: "munir@example.com", Password: "not the password"}},
		{"unknown email", v1.LoginEditable{Email: "nobody@example.com", Password: "correct horse battery staple"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.login)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			// Both cases return the same error so that the existence of
			// an email address cannot be probed
			var response v1.AuthResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, models.ErrCredentialsInvalid.Error(), *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestPasswordReset() {
	_ = registerTestUserWithEmail(suite.T(), "munir@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/password-reset", v1.PasswordResetEditable{
		Email:           "munir@example.com",
		CurrentPassword: "correct horse battery staple",
		NewPassword:     "horse battery staple correct",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The old password no longer works
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    "munir@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// The new one does
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    "munir@example.com",
		Password: "horse battery staple correct",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestPasswordResetWrongPassword() {
	_ = registerTestUserWithEmail(suite.T(), "munir@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/password-reset", v1.PasswordResetEditable{
		Email:           "munir@example.com",
		CurrentPassword: "not the password",
		NewPassword:     "horse battery staple correct",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []string{
		"http://example.com/v1/accounts",
		"http://example.com/v1/categories",
		"http://example.com/v1/transactions",
		"http://example.com/v1/budgets",
		"http://example.com/v1/goals",
		"http://example.com/v1/loans",
		"http://example.com/v1/contacts",
		"http://example.com/v1/notifications",
		"http://example.com/v1/preferences",
		"http://example.com/v1/export",
	}

	for _, url := range tests {
		suite.T().Run(url, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, url, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestInvalidToken() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "", map[string]string{
		"Authorization": "Bearer not.a.token",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

// registerTestUserWithEmail registers a user with a fixed email and the
// default testing password.
func registerTestUserWithEmail(t *testing.T, email string) v1.AuthData {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    email,
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.AuthResponse
	test.DecodeResponse(t, &r, &response)

	return *response.Data
}
