package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	hiseb_uuid "github.com/khademul4765/arther-hiseb-sub000/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name     string              `json:"name" example:"খাবার" default:""`                                         // Name of the category
	Type     models.CategoryType `json:"type" example:"expense" default:"expense"`                                // Type of the category: income or expense
	Color    string              `json:"color" example:"#FF6B6B" default:""`                                      // Display color
	Icon     string              `json:"icon" example:"restaurant" default:""`                                    // Display icon name
	ParentID *uuid.UUID          `json:"parentId" example:"2af655d8-915f-4f87-a977-5adcba62e6f3" default:"null"` // ID of the parent category, at most one level deep
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID:   userID,
		Name:     editable.Name,
		Type:     editable.Type,
		Color:    editable.Color,
		Icon:     editable.Icon,
		ParentID: editable.ParentID,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=খাবার"`                                  // Transactions with this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	IsDefault bool          `json:"isDefault" example:"true"` // Was the category created automatically on registration?
	Links     CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			Type:     model.Type,
			Color:    model.Color,
			Icon:     model.Icon,
			ParentID: model.ParentID,
		},
		IsDefault: model.IsDefault,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.Name),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name     string          `form:"name" filterField:"false"`   // By name
	Type     string          `form:"type"`                       // By type
	ParentID hiseb_uuid.UUID `form:"parent"`                     // By parent category ID
	Search   string          `form:"search" filterField:"false"` // By string in the name
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	var parentID *uuid.UUID
	if f.ParentID != hiseb_uuid.Nil {
		parentID = &f.ParentID.UUID
	}

	return models.Category{
		Type:     models.CategoryType(f.Type),
		ParentID: parentID,
	}
}
