package models_test

import (
	"testing"
	"time"

	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/khademul4765/arther-hiseb-sub000/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetValidation() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"zero amount", models.Budget{UserID: user.ID, Period: types.PeriodMonthly}, models.ErrAmountNotPositive},
		{"invalid period", models.Budget{UserID: user.ID, Amount: decimal.NewFromFloat(100), Period: "fortnightly"}, types.ErrPeriodInvalid},
		{
			"end before start",
			models.Budget{
				UserID:    user.ID,
				Amount:    decimal.NewFromFloat(100),
				Period:    types.PeriodCustom,
				StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			},
			models.ErrBudgetEndBeforeStart,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.budget).Error
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetPeriodEndDerived() {
	user := suite.createTestUser(models.User{})

	budget := suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Amount:    decimal.NewFromFloat(100),
		Period:    types.PeriodMonthly,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	// The end date is the last day the budget covers
	assert.Equal(suite.T(), time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), budget.EndDate)
}

func (suite *TestSuiteStandard) TestBudgetMatches() {
	budget := models.Budget{Categories: types.StringList{"খাবার", "Groceries*"}}

	assert.True(suite.T(), budget.Matches("খাবার"))
	assert.True(suite.T(), budget.Matches("Groceries: Market"))
	assert.False(suite.T(), budget.Matches("Transport"))
}

func (suite *TestSuiteStandard) TestBudgetStatus() {
	tests := []struct {
		spent  float64
		status models.BudgetStatus
	}{
		{0, models.BudgetSafe},
		{74.99, models.BudgetSafe},
		{75, models.BudgetWarning},
		{89.99, models.BudgetWarning},
		{90, models.BudgetDanger},
		{150, models.BudgetDanger},
	}

	for _, tt := range tests {
		budget := models.Budget{
			Amount: decimal.NewFromFloat(100),
			Spent:  decimal.NewFromFloat(tt.spent),
		}

		assert.Equal(suite.T(), tt.status, budget.Status(), "wrong status for spent of %v", tt.spent)
	}
}

func (suite *TestSuiteStandard) TestBudgetCalculateSpent() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Balance: decimal.NewFromFloat(10000)})

	budget := suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		Amount:     decimal.NewFromFloat(1000),
		Categories: types.StringList{"খাবার"},
		Period:     types.PeriodCustom,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	for _, transaction := range []models.Transaction{
		{Amount: decimal.NewFromFloat(500), Category: "খাবার", Date: time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(300), Category: "খাবার", Date: time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)},
		// Outside the window
		{Amount: decimal.NewFromFloat(1000), Category: "খাবার", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		// Other category
		{Amount: decimal.NewFromFloat(200), Category: "যাতায়াত", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
	} {
		transaction.UserID = user.ID
		transaction.AccountID = account.ID
		transaction.Type = models.TransactionExpense
		_ = suite.createTestTransaction(transaction)
	}

	spent, err := budget.CalculateSpent(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(800)), "spent calculation is wrong: should be 800, but is %s", spent)
}

func (suite *TestSuiteStandard) TestRecalculateSpent() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Balance: decimal.NewFromFloat(10000)})

	budget := suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		Amount:     decimal.NewFromFloat(1000),
		Categories: types.StringList{"খাবার"},
		Period:     types.PeriodMonthly,
		Active:     true,
	})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:    user.ID,
		AccountID: account.ID,
		Type:      models.TransactionExpense,
		Amount:    decimal.NewFromFloat(950),
		Category:  "খাবার",
	})

	// CreateTransaction recalculates the spent amount
	var reloaded models.Budget
	err := models.DB.First(&reloaded, "id = ?", budget.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.Spent.Equal(decimal.NewFromFloat(950)), "spent was not recalculated, it is %s", reloaded.Spent)
	assert.Equal(suite.T(), models.BudgetDanger, reloaded.Status())

	// Crossing into danger produces a notification, exactly once
	var notifications []models.Notification
	err = models.DB.Where("user_id = ? AND type = ?", user.ID, models.NotificationBudget).Find(&notifications).Error
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), notifications, 1)
}

func (suite *TestSuiteStandard) TestRecalculateSpentSkipsInactive() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Balance: decimal.NewFromFloat(10000)})

	budget := suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		Amount:     decimal.NewFromFloat(1000),
		Categories: types.StringList{"*"},
		Period:     types.PeriodMonthly,
		Active:     false,
	})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:    user.ID,
		AccountID: account.ID,
		Type:      models.TransactionExpense,
		Amount:    decimal.NewFromFloat(500),
	})

	var reloaded models.Budget
	err := models.DB.First(&reloaded, "id = ?", budget.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.Spent.IsZero(), "inactive budget was recalculated, spent is %s", reloaded.Spent)
}
