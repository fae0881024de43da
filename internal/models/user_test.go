package models_test

import (
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{
		Email: "  Someone@Example.COM ",
		Name:  " মুনির ",
	})

	assert.Equal(suite.T(), "someone@example.com", user.Email)
	assert.Equal(suite.T(), "মুনির", user.Name)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "munir@example.com"})

	err := models.DB.Create(&models.User{Email: "munir@example.com"}).Error
	assert.Equal(suite.T(), models.ErrUserEmailNotUnique, err)

	// Normalization applies before the uniqueness check
	err = models.DB.Create(&models.User{Email: "MUNIR@example.com"}).Error
	assert.Equal(suite.T(), models.ErrUserEmailNotUnique, err)
}

func (suite *TestSuiteStandard) TestUserPassword() {
	var user models.User
	require.Nil(suite.T(), user.SetPassword("correct horse battery staple"))

	assert.NotEqual(suite.T(), "correct horse battery staple", user.PasswordHash)
	assert.True(suite.T(), user.CheckPassword("correct horse battery staple"))
	assert.False(suite.T(), user.CheckPassword("Tr0ub4dor&3"))
}
