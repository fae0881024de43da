package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name         string          `json:"name" example:"New laptop" default:""`       // Name of the goal
	Note         string          `json:"note" example:"Saving for a Thinkpad" default:""` // Notes about the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"85000.00"`            // The amount to save towards
	StartDate    time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`   // Day the saving starts
	Deadline     time.Time       `json:"deadline" example:"2024-12-31T00:00:00Z"`    // Day the goal should be reached
}

func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:       userID,
		Name:         editable.Name,
		Note:         editable.Note,
		TargetAmount: editable.TargetAmount,
		StartDate:    editable.StartDate,
		Deadline:     editable.Deadline,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/f81566d6-9d5d-4cb8-a3c2-625cfaab7b48"`              // The goal itself
	Deposits string `json:"deposits" example:"https://example.com/api/v1/goals/f81566d6-9d5d-4cb8-a3c2-625cfaab7b48/deposits"` // The deposit history of the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`

	// These fields are computed
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"32000.00"` // Sum of all deposits
	Completed     bool            `json:"completed" example:"false"`        // Has the target been reached?
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmount,
			StartDate:    model.StartDate,
			Deadline:     model.Deadline,
		},
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Deposits: fmt.Sprintf("%s/v1/goals/%s/deposits", url, model.ID),
		},
		CurrentAmount: model.CurrentAmount,
		Completed:     model.Completed,
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Data  []GoalResponse `json:"data"`                                                          // List of the created Goals or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the Goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	Name      string `form:"name" filterField:"false"`   // By name
	Note      string `form:"note" filterField:"false"`   // By note
	Completed bool   `form:"completed"`                  // Has the target been reached?
	Search    string `form:"search" filterField:"false"` // By string in name or note
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first Goal returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of Goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		Completed: f.Completed,
	}
}

// GoalDepositEditable represents all user configurable parameters of a deposit
type GoalDepositEditable struct {
	Amount decimal.Decimal `json:"amount" example:"2000.00" binding:"required"` // The amount to add to the goal
	Date   time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`         // Date of the deposit. Defaults to the current time.
	Note   string          `json:"note" example:"March salary" default:""`      // A note
}

func (editable GoalDepositEditable) model(goalID uuid.UUID) models.GoalDeposit {
	return models.GoalDeposit{
		GoalID: goalID,
		Amount: editable.Amount,
		Date:   editable.Date,
		Note:   editable.Note,
	}
}

// GoalDeposit is the API representation of a deposit towards a goal.
type GoalDeposit struct {
	models.DefaultModel
	GoalDepositEditable
	GoalID uuid.UUID `json:"goalId" example:"f81566d6-9d5d-4cb8-a3c2-625cfaab7b48"` // ID of the goal
}

func newGoalDeposit(model models.GoalDeposit) GoalDeposit {
	return GoalDeposit{
		DefaultModel: model.DefaultModel,
		GoalDepositEditable: GoalDepositEditable{
			Amount: model.Amount,
			Date:   model.Date,
			Note:   model.Note,
		},
		GoalID: model.GoalID,
	}
}

type GoalDepositListResponse struct {
	Data  []GoalDeposit `json:"data"`                                                          // List of deposits, newest first
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalDepositResponse struct {
	Data  *GoalDeposit `json:"data"`                                                          // Data for the deposit
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
