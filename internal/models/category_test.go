package models_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTypeInvalid() {
	user := suite.createTestUser(models.User{})

	category := models.Category{
		UserID: user.ID,
		Name:   "Vacation",
		Type:   "savings",
	}

	err := models.DB.Create(&category).Error
	assert.Equal(suite.T(), models.ErrCategoryTypeInvalid, err)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUserAndType() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Other", Type: models.CategoryExpense})

	err := models.DB.Create(&models.Category{UserID: user.ID, Name: "Other", Type: models.CategoryExpense}).Error
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique, err)

	// The same name with another type is a different category
	err = models.DB.Create(&models.Category{UserID: user.ID, Name: "Other", Type: models.CategoryIncome}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryNesting() {
	user := suite.createTestUser(models.User{})

	root := suite.createTestCategory(models.Category{UserID: user.ID})
	child := suite.createTestCategory(models.Category{UserID: user.ID, ParentID: &root.ID})

	// Nesting below a sub-category is rejected
	grandchild := models.Category{
		UserID:   user.ID,
		Name:     "too deep",
		Type:     models.CategoryExpense,
		ParentID: &child.ID,
	}

	err := models.DB.Create(&grandchild).Error
	assert.Equal(suite.T(), models.ErrCategoryNestingTooDeep, err)
}

func (suite *TestSuiteStandard) TestCreateDefaultCategories() {
	user := suite.createTestUser(models.User{})

	err := models.CreateDefaultCategories(models.DB, user.ID)
	require.Nil(suite.T(), err)

	var categories []models.Category
	err = models.DB.Where("user_id = ?", user.ID).Find(&categories).Error
	require.Nil(suite.T(), err)
	require.NotEmpty(suite.T(), categories)

	var names []string
	for _, category := range categories {
		assert.True(suite.T(), category.IsDefault)
		names = append(names, category.Name)
	}

	assert.Contains(suite.T(), names, "খাবার")
	assert.Contains(suite.T(), names, "বেতন")
}

func (suite *TestSuiteStandard) TestDefaultCategoryDelete() {
	user := suite.createTestUser(models.User{})
	require.Nil(suite.T(), models.CreateDefaultCategories(models.DB, user.ID))

	var category models.Category
	require.Nil(suite.T(), models.DB.First(&category, "user_id = ? AND name = ?", user.ID, "খাবার").Error)

	err := models.DB.Delete(&category).Error
	assert.Equal(suite.T(), models.ErrCategoryIsDefault, err)

	// User-created categories can be deleted
	custom := suite.createTestCategory(models.Category{UserID: user.ID})
	assert.Nil(suite.T(), models.DB.Delete(&custom).Error)
}

func (suite *TestSuiteStandard) TestCategoryForeignParent() {
	owner := suite.createTestUser(models.User{})
	parent := suite.createTestCategory(models.Category{UserID: owner.ID})

	other := suite.createTestUser(models.User{})
	child := models.Category{
		UserID:   other.ID,
		Name:     uuid.NewString(),
		Type:     models.CategoryExpense,
		ParentID: &parent.ID,
	}

	err := models.DB.Create(&child).Error
	require.NotNil(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound), "wrong error: %v", err)
}
