package models_test

import (
	"errors"

	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAccountTypeInvalid() {
	user := suite.createTestUser(models.User{})

	account := models.Account{
		UserID: user.ID,
		Name:   "Checking",
		Type:   "piggy-bank",
	}

	err := models.DB.Create(&account).Error
	assert.Equal(suite.T(), models.ErrAccountTypeInvalid, err)
}

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	account := suite.createTestAccount(models.Account{
		UserID: user.ID,
		Name:   "  bKash \t",
		Type:   models.AccountMFS,
		Note:   " the mobile wallet ",
	})

	assert.Equal(suite.T(), "bKash", account.Name)
	assert.Equal(suite.T(), "the mobile wallet", account.Note)
}

func (suite *TestSuiteStandard) TestAccountNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	_ = suite.createTestAccount(models.Account{UserID: user.ID, Name: "Wallet"})

	err := models.DB.Create(&models.Account{UserID: user.ID, Name: "Wallet", Type: models.AccountCash}).Error
	assert.Equal(suite.T(), models.ErrAccountNameNotUnique, err)

	// The same name is fine for another user
	err = models.DB.Create(&models.Account{UserID: other.ID, Name: "Wallet", Type: models.AccountCash}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestAccountUnknownUser() {
	account := models.Account{
		Name: "Orphaned",
		Type: models.AccountBank,
	}

	err := models.DB.Create(&account).Error
	require.NotNil(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound))
}

func (suite *TestSuiteStandard) TestAccountDeleteWithTransactions() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Balance: decimal.NewFromFloat(100)})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:    user.ID,
		AccountID: account.ID,
		Type:      models.TransactionExpense,
		Amount:    decimal.NewFromFloat(10),
	})

	err := models.DB.Delete(&account).Error
	assert.Equal(suite.T(), models.ErrAccountHasTransactions, err)

	// After the transaction is gone, the deletion succeeds
	require.Nil(suite.T(), models.DeleteTransaction(models.DB, &transaction))
	assert.Nil(suite.T(), models.DB.Delete(&account).Error)
}

func (suite *TestSuiteStandard) TestAccountTransactions() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Balance: decimal.NewFromFloat(100)})
	destination := suite.createTestAccount(models.Account{UserID: user.ID})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:    user.ID,
		AccountID: account.ID,
		Type:      models.TransactionExpense,
		Amount:    decimal.NewFromFloat(10),
	})

	_, err := models.Transfer(models.DB, user.ID, account.ID, destination.ID, decimal.NewFromFloat(20), "")
	require.Nil(suite.T(), err)

	assert.Len(suite.T(), account.Transactions(models.DB), 2)

	// The transfer shows up for the destination account as well
	assert.Len(suite.T(), destination.Transactions(models.DB), 1)
}
