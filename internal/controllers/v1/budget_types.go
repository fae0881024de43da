package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/khademul4765/arther-hiseb-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name       string           `json:"name" example:"Groceries" default:""`                    // Name of the budget
	Note       string           `json:"note" example:"Monthly food budget" default:""`          // Notes about the budget
	Amount     decimal.Decimal  `json:"amount" example:"5000.00"`                               // The limit for the covered period
	Categories types.StringList `json:"categories" example:"খাবার,কেনাকাটা"`                    // Category name patterns the budget tracks, glob syntax
	Period     types.Period     `json:"period" example:"monthly" default:"monthly"`             // Covered period: weekly, monthly, yearly or custom
	StartDate  time.Time        `json:"startDate" example:"2024-03-01T00:00:00Z"`               // First day of the covered period
	EndDate    time.Time        `json:"endDate" example:"2024-03-31T00:00:00Z"`                 // Last day of the covered period. Derived from the period unless it is custom.
	Active     bool             `json:"active" example:"true" default:"true"`                   // Is the budget tracked?
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		Name:       editable.Name,
		Note:       editable.Note,
		Amount:     editable.Amount,
		Categories: editable.Categories,
		Period:     editable.Period,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
		Active:     editable.Active,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03455eb7636c"`                                         // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?type=expense&fromDate=2024-03-01T00:00:00Z"`                      // The expense transactions in the covered period
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	// These fields are computed
	Spent  decimal.Decimal     `json:"spent" example:"3200.00"`  // Sum of matching expenses in the covered period
	Status models.BudgetStatus `json:"status" example:"warning"` // safe, warning or danger depending on the spent share
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:       model.Name,
			Note:       model.Note,
			Amount:     model.Amount,
			Categories: model.Categories,
			Period:     model.Period,
			StartDate:  model.StartDate,
			EndDate:    model.EndDate,
			Active:     model.Active,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?type=expense&fromDate=%s&untilDate=%s", url, model.StartDate.Format(time.RFC3339), model.EndDate.Format(time.RFC3339)),
		},
		Spent:  model.Spent,
		Status: model.Status(),
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created Budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Period string `form:"period"`                     // By period
	Active bool   `form:"active"`                     // Is the budget tracked?
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Period: types.Period(f.Period),
		Active: f.Active,
	}
}
