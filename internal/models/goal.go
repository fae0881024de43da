package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target that is accumulated via discrete deposits.
type Goal struct {
	DefaultModel
	User          User      `json:"-"`
	UserID        uuid.UUID `gorm:"index"`
	Name          string
	Note          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate     time.Time
	Deadline      time.Time
	Completed     bool
}

// BeforeSave validates the target amount and trims whitespace.
func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// GoalDeposit is a single deposit towards a goal.
type GoalDeposit struct {
	DefaultModel
	Goal   Goal `json:"-"`
	GoalID uuid.UUID
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date   time.Time
	Note   string
}

func (d *GoalDeposit) BeforeSave(_ *gorm.DB) error {
	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	d.Note = strings.TrimSpace(d.Note)

	if !d.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

func (d *GoalDeposit) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*GoalDeposit)
	return tx.First(&Goal{}, "id = ?", toSave.GoalID).Error
}

// Deposits returns the deposit history of the goal, newest first.
func (g Goal) Deposits(db *gorm.DB) ([]GoalDeposit, error) {
	var deposits []GoalDeposit
	err := db.Where(&GoalDeposit{GoalID: g.ID}).Order("datetime(date) DESC").Find(&deposits).Error
	return deposits, err
}

// AddDeposit records a deposit and accumulates it into the goal's
// current amount.
//
// The goal is marked completed once the current amount reaches the
// target, with a notification on the completion crossing. Passing 80%
// of the target for the first time produces a notification as well.
// The current amount may exceed the target.
func AddDeposit(db *gorm.DB, goal *Goal, deposit *GoalDeposit) error {
	return db.Transaction(func(tx *gorm.DB) error {
		deposit.GoalID = goal.ID

		err := tx.Create(deposit).Error
		if err != nil {
			return err
		}

		previous := goal.CurrentAmount
		current := previous.Add(deposit.Amount)
		threshold := goal.TargetAmount.Mul(decimal.NewFromFloat(0.8))

		completed := goal.Completed
		if current.GreaterThanOrEqual(goal.TargetAmount) {
			completed = true
		}

		if completed && !goal.Completed {
			err = notify(tx, goal.UserID, NotificationGoal, PriorityHigh,
				"Goal achieved",
				fmt.Sprintf("You have reached your goal %s.", goal.Name))
			if err != nil {
				return err
			}
		} else if previous.LessThan(threshold) && current.GreaterThanOrEqual(threshold) {
			err = notify(tx, goal.UserID, NotificationGoal, PriorityMedium,
				"Goal almost reached",
				fmt.Sprintf("You have saved 80%% of your goal %s.", goal.Name))
			if err != nil {
				return err
			}
		}

		goal.CurrentAmount = current
		goal.Completed = completed

		return tx.Model(goal).Select("CurrentAmount", "Completed").Updates(goal).Error
	})
}

// Returns the user's goals for export
func (Goal) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Goal{}, "user_id = ?", userID)
}

// Returns the deposits of the user's goals for export
func (GoalDeposit) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(GoalDeposit{}, "goal_id IN (?)", DB.Model(&Goal{}).Select("id").Where("user_id = ?", userID))
}
