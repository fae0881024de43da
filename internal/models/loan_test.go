package models_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLoanValidation() {
	user := suite.createTestUser(models.User{})
	contact := suite.createTestContact(models.Contact{UserID: user.ID})

	tests := []struct {
		name string
		loan models.Loan
		err  error
	}{
		{"zero amount", models.Loan{UserID: user.ID, ContactID: contact.ID, Type: models.LoanBorrowed}, models.ErrAmountNotPositive},
		{"invalid type", models.Loan{UserID: user.ID, ContactID: contact.ID, Type: "mortgage", Amount: decimal.NewFromFloat(100)}, models.ErrLoanTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.loan).Error
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestLoanUnknownContact() {
	user := suite.createTestUser(models.User{})

	loan := models.Loan{
		UserID:          user.ID,
		ContactID:       uuid.New(),
		Type:            models.LoanLent,
		Amount:          decimal.NewFromFloat(100),
		RemainingAmount: decimal.NewFromFloat(100),
	}

	err := models.DB.Create(&loan).Error
	require.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestPayInstallment() {
	user := suite.createTestUser(models.User{})
	contact := suite.createTestContact(models.Contact{UserID: user.ID})
	loan := suite.createTestLoan(models.Loan{
		UserID:          user.ID,
		ContactID:       contact.ID,
		Amount:          decimal.NewFromFloat(500),
		RemainingAmount: decimal.NewFromFloat(500),
	})

	installment, err := models.PayInstallment(models.DB, &loan, nil, decimal.NewFromFloat(200), "first payment")
	require.Nil(suite.T(), err)

	assert.True(suite.T(), installment.Paid)
	assert.NotNil(suite.T(), installment.PaidDate)
	assert.True(suite.T(), loan.RemainingAmount.Equal(decimal.NewFromFloat(300)))
	assert.False(suite.T(), loan.Completed)

	installments, err := loan.Installments(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), installments, 1)
}

func (suite *TestSuiteStandard) TestPayInstallmentExisting() {
	user := suite.createTestUser(models.User{})
	contact := suite.createTestContact(models.Contact{UserID: user.ID})
	loan := suite.createTestLoan(models.Loan{
		UserID:          user.ID,
		ContactID:       contact.ID,
		Amount:          decimal.NewFromFloat(300),
		RemainingAmount: decimal.NewFromFloat(300),
	})

	planned := models.LoanInstallment{
		LoanID: loan.ID,
		Amount: decimal.NewFromFloat(100),
	}
	require.Nil(suite.T(), models.DB.Create(&planned).Error)

	installment, err := models.PayInstallment(models.DB, &loan, &planned.ID, decimal.NewFromFloat(100), "")
	require.Nil(suite.T(), err)

	// The planned installment is marked paid instead of appending a new one
	assert.Equal(suite.T(), planned.ID, installment.ID)
	assert.True(suite.T(), installment.Paid)

	installments, err := loan.Installments(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), installments, 1)
}

func (suite *TestSuiteStandard) TestPayInstallmentUnknownID() {
	user := suite.createTestUser(models.User{})
	contact := suite.createTestContact(models.Contact{UserID: user.ID})
	loan := suite.createTestLoan(models.Loan{
		UserID:          user.ID,
		ContactID:       contact.ID,
		Amount:          decimal.NewFromFloat(300),
		RemainingAmount: decimal.NewFromFloat(300),
	})

	id := uuid.New()
	_, err := models.PayInstallment(models.DB, &loan, &id, decimal.NewFromFloat(100), "")
	require.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestPayInstallmentOverpayment() {
	user := suite.createTestUser(models.User{})
	contact := suite.createTestContact(models.Contact{UserID: user.ID})
	loan := suite.createTestLoan(models.Loan{
		UserID:          user.ID,
		ContactID:       contact.ID,
		Type:            models.LoanLent,
		Amount:          decimal.NewFromFloat(500),
		RemainingAmount: decimal.NewFromFloat(100),
	})

	_, err := models.PayInstallment(models.DB, &loan, nil, decimal.NewFromFloat(150), "")
	require.Nil(suite.T(), err)

	// Overpayment floors the remaining amount at zero and completes the loan
	assert.True(suite.T(), loan.RemainingAmount.IsZero())
	assert.True(suite.T(), loan.Completed)

	var notifications []models.Notification
	err = models.DB.Where("user_id = ? AND type = ?", user.ID, models.NotificationLoan).Find(&notifications).Error
	require.Nil(suite.T(), err)
	require.Len(suite.T(), notifications, 1)
	assert.Equal(suite.T(), "Loan settled", notifications[0].Title)
}

func (suite *TestSuiteStandard) TestPayInstallmentValidation() {
	loan := models.Loan{}

	_, err := models.PayInstallment(models.DB, &loan, nil, decimal.Zero, "")
	assert.Equal(suite.T(), models.ErrAmountNotPositive, err)
}

func (suite *TestSuiteStandard) TestLoanForeignContact() {
	owner := suite.createTestUser(models.User{})
	contact := suite.createTestContact(models.Contact{UserID: owner.ID})

	other := suite.createTestUser(models.User{})
	loan := models.Loan{
		UserID:          other.ID,
		ContactID:       contact.ID,
		Type:            models.LoanLent,
		Amount:          decimal.NewFromFloat(100),
		RemainingAmount: decimal.NewFromFloat(100),
	}

	err := models.DB.Create(&loan).Error
	require.NotNil(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound), "wrong error: %v", err)
}
