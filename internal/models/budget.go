package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetStatus is derived from the ratio of spent to the budget amount.
type BudgetStatus string

const (
	BudgetSafe    BudgetStatus = "safe"    // below 75%
	BudgetWarning BudgetStatus = "warning" // 75% to below 90%
	BudgetDanger  BudgetStatus = "danger"  // 90% and above
)

// Budget is a spending cap over a set of categories and a date window.
//
// Spent is a cached aggregate maintained by RecalculateSpent, which the
// transaction mutation paths invoke.
type Budget struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Name       string
	Note       string
	Amount     decimal.Decimal  `gorm:"type:DECIMAL(20,8)"`
	Categories types.StringList `gorm:"type:TEXT"` // category names, glob patterns allowed
	Period     types.Period
	StartDate  time.Time
	EndDate    time.Time
	Spent      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Active     bool
}

// BeforeSave validates the period, derives the end date for non-custom
// periods and trims whitespace.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !b.Period.Valid() {
		return types.ErrPeriodInvalid
	}

	if b.StartDate.IsZero() {
		b.StartDate = time.Now().In(time.UTC)
	}
	b.StartDate = b.StartDate.In(time.UTC)

	if b.Period != types.PeriodCustom {
		b.EndDate = b.Period.End(b.StartDate)
	}

	b.EndDate = b.EndDate.In(time.UTC)
	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetEndBeforeStart
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// Matches reports whether the category name is covered by the budget.
// The category list supports glob patterns.
func (b Budget) Matches(category string) bool {
	for _, pattern := range b.Categories {
		if glob.Glob(pattern, category) {
			return true
		}
	}

	return false
}

// Status derives the display status from the ratio of spent to amount.
// It is a pure function, the database is never consulted.
func (b Budget) Status() BudgetStatus {
	return budgetStatus(b.Spent, b.Amount)
}

func budgetStatus(spent, amount decimal.Decimal) BudgetStatus {
	if !amount.IsPositive() {
		return BudgetSafe
	}

	ratio := spent.Div(amount)
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.9)):
		return BudgetDanger
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.75)):
		return BudgetWarning
	}

	return BudgetSafe
}

// CalculateSpent sums all expense transactions of the user whose
// category is covered by the budget and whose date falls within
// [StartDate, EndDate], both inclusive.
func (b Budget) CalculateSpent(db *gorm.DB) (decimal.Decimal, error) {
	var transactions []Transaction

	start := time.Date(b.StartDate.Year(), b.StartDate.Month(), b.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.EndDate.Year(), b.EndDate.Month(), b.EndDate.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	err := db.
		Where(&Transaction{UserID: b.UserID, Type: TransactionExpense}).
		Where("date >= ?", start).
		Where("date < ?", end).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	// Glob matching cannot be pushed into sqlite, so the category
	// filter runs here
	spent := decimal.Zero
	for _, transaction := range transactions {
		if b.Matches(transaction.Category) {
			spent = spent.Add(transaction.Amount)
		}
	}

	return spent, nil
}

// RecalculateSpent recomputes the cached spent amount for all active
// budgets of the user and writes it when it changed. Crossing 90% of
// the budget amount produces a danger notification.
func RecalculateSpent(db *gorm.DB, userID uuid.UUID) error {
	var budgets []Budget
	err := db.Where(&Budget{UserID: userID, Active: true}).Find(&budgets).Error
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		spent, err := budget.CalculateSpent(db)
		if err != nil {
			return err
		}

		if spent.Equal(budget.Spent) {
			continue
		}

		if budgetStatus(budget.Spent, budget.Amount) != BudgetDanger && budgetStatus(spent, budget.Amount) == BudgetDanger {
			err = notify(db, userID, NotificationBudget, PriorityHigh,
				"Budget almost used up",
				fmt.Sprintf("You have used %s of the %s budget for %s.", spent, budget.Amount, budget.Name))
			if err != nil {
				return err
			}
		}

		err = db.Model(&budget).Update("spent", spent).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Returns the user's budgets for export
func (Budget) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Budget{}, "user_id = ?", userID)
}
