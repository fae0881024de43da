package models_test

import (
	"strings"

	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalValidation() {
	goal := models.Goal{}

	err := goal.BeforeSave(models.DB)
	assert.Equal(suite.T(), models.ErrAmountNotPositive, err)
}

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	name := "  Emergency fund \t"
	note := " Whitespace    "

	goal := suite.createTestGoal(models.Goal{
		UserID:       user.ID,
		TargetAmount: decimal.NewFromFloat(1000),
		Name:         name,
		Note:         note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
}

func (suite *TestSuiteStandard) TestAddDeposit() {
	user := suite.createTestUser(models.User{})
	goal := suite.createTestGoal(models.Goal{
		UserID:       user.ID,
		TargetAmount: decimal.NewFromFloat(1000),
	})

	deposit := models.GoalDeposit{Amount: decimal.NewFromFloat(800)}
	err := models.AddDeposit(models.DB, &goal, &deposit)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), goal.ID, deposit.GoalID)
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromFloat(800)))
	assert.False(suite.T(), goal.Completed)

	// 800 of 1000 crosses the 80% threshold
	var notifications []models.Notification
	err = models.DB.Where("user_id = ? AND type = ?", user.ID, models.NotificationGoal).Find(&notifications).Error
	require.Nil(suite.T(), err)
	require.Len(suite.T(), notifications, 1)
	assert.Equal(suite.T(), models.PriorityMedium, notifications[0].Priority)

	// The second deposit reaches the target and completes the goal
	err = models.AddDeposit(models.DB, &goal, &models.GoalDeposit{Amount: decimal.NewFromFloat(200)})
	require.Nil(suite.T(), err)

	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), goal.Completed)

	err = models.DB.Where("user_id = ? AND type = ?", user.ID, models.NotificationGoal).Find(&notifications).Error
	require.Nil(suite.T(), err)
	require.Len(suite.T(), notifications, 2)
	assert.Equal(suite.T(), "Goal achieved", notifications[1].Title)
}

func (suite *TestSuiteStandard) TestAddDepositOvershoot() {
	user := suite.createTestUser(models.User{})
	goal := suite.createTestGoal(models.Goal{
		UserID:       user.ID,
		TargetAmount: decimal.NewFromFloat(500),
	})

	err := models.AddDeposit(models.DB, &goal, &models.GoalDeposit{Amount: decimal.NewFromFloat(700)})
	require.Nil(suite.T(), err)

	// The current amount is not capped at the target
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromFloat(700)))
	assert.True(suite.T(), goal.Completed)
}

func (suite *TestSuiteStandard) TestAddDepositValidation() {
	user := suite.createTestUser(models.User{})
	goal := suite.createTestGoal(models.Goal{
		UserID:       user.ID,
		TargetAmount: decimal.NewFromFloat(500),
	})

	err := models.AddDeposit(models.DB, &goal, &models.GoalDeposit{Amount: decimal.NewFromFloat(-10)})
	assert.Equal(suite.T(), models.ErrAmountNotPositive, err)

	assert.True(suite.T(), goal.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGoalDeposits() {
	user := suite.createTestUser(models.User{})
	goal := suite.createTestGoal(models.Goal{
		UserID:       user.ID,
		TargetAmount: decimal.NewFromFloat(500),
	})

	deposits, err := goal.Deposits(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), deposits, 0)

	for range 3 {
		err = models.AddDeposit(models.DB, &goal, &models.GoalDeposit{Amount: decimal.NewFromFloat(10)})
		require.Nil(suite.T(), err)
	}

	deposits, err = goal.Deposits(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), deposits, 3)
}
