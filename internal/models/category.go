package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType describes whether a category applies to income or
// expense transactions.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category groups transactions. Categories can be nested one level deep
// via ParentID.
type Category struct {
	DefaultModel
	User      User         `json:"-"`
	UserID    uuid.UUID    `gorm:"uniqueIndex:category_name_user_id_type"`
	Name      string       `gorm:"uniqueIndex:category_name_user_id_type"`
	Type      CategoryType `gorm:"uniqueIndex:category_name_user_id_type"`
	Color     string
	Icon      string
	Parent    *Category `json:"-"`
	ParentID  *uuid.UUID
	IsDefault bool
}

// BeforeSave validates the category type and trims whitespace.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)

	switch c.Type {
	case CategoryIncome, CategoryExpense:
		return nil
	}

	return ErrCategoryTypeInvalid
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("ParentID") {
		toSave := tx.Statement.Dest.(Category)
		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the parent exists, belongs to the same
// user and is itself a root category. Only a single level of
// sub-categorization is supported.
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	if toSave.ParentID == nil {
		return nil
	}

	var parent Category
	err := tx.First(&parent, "id = ? AND user_id = ?", toSave.ParentID, toSave.UserID).Error
	if err != nil {
		return err
	}

	if parent.ParentID != nil {
		return ErrCategoryNestingTooDeep
	}

	return nil
}

// BeforeDelete protects the seeded default categories.
func (c *Category) BeforeDelete(_ *gorm.DB) error {
	if c.IsDefault {
		return ErrCategoryIsDefault
	}

	return nil
}

// defaultCategories are seeded for every new user.
var defaultCategories = []Category{
	{Name: "খাবার", Type: CategoryExpense, Color: "#e74c3c", Icon: "utensils"},
	{Name: "যাতায়াত", Type: CategoryExpense, Color: "#3498db", Icon: "bus"},
	{Name: "কেনাকাটা", Type: CategoryExpense, Color: "#9b59b6", Icon: "shopping-bag"},
	{Name: "বিল", Type: CategoryExpense, Color: "#f39c12", Icon: "file-invoice"},
	{Name: "চিকিৎসা", Type: CategoryExpense, Color: "#1abc9c", Icon: "heartbeat"},
	{Name: "বেতন", Type: CategoryIncome, Color: "#2ecc71", Icon: "money-bill"},
	{Name: "ব্যবসা", Type: CategoryIncome, Color: "#27ae60", Icon: "briefcase"},
	{Name: "অন্যান্য", Type: CategoryExpense, Color: "#95a5a6", Icon: "ellipsis-h"},
}

// CreateDefaultCategories seeds the protected default categories for a
// new user.
func CreateDefaultCategories(db *gorm.DB, userID uuid.UUID) error {
	for _, category := range defaultCategories {
		category.UserID = userID
		category.IsDefault = true

		err := db.Create(&category).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Returns the user's categories for export
func (Category) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Category{}, "user_id = ?", userID)
}
