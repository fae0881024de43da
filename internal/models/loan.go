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

// LoanType describes the direction of a loan.
type LoanType string

const (
	LoanBorrowed LoanType = "borrowed"
	LoanLent     LoanType = "lent"
)

// Loan is a borrowed or lent amount tracked towards zero via
// installment payments.
type Loan struct {
	DefaultModel
	User            User      `json:"-"`
	UserID          uuid.UUID `gorm:"index"`
	Type            LoanType
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RemainingAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Contact         Contact         `json:"-"`
	ContactID       uuid.UUID
	Date            time.Time
	DueDate         *time.Time
	Note            string
	Completed       bool
}

// BeforeSave validates the loan type and amount and trims whitespace.
func (l *Loan) BeforeSave(_ *gorm.DB) error {
	l.Note = strings.TrimSpace(l.Note)

	if l.Date.IsZero() {
		l.Date = time.Now().In(time.UTC)
	} else {
		l.Date = l.Date.In(time.UTC)
	}

	if !l.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch l.Type {
	case LoanBorrowed, LoanLent:
		return nil
	}

	return ErrLoanTypeInvalid
}

func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	_ = l.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Loan)

	err := tx.First(&User{}, "id = ?", toSave.UserID).Error
	if err != nil {
		return err
	}

	return tx.First(&Contact{}, "id = ? AND user_id = ?", toSave.ContactID, toSave.UserID).Error
}

// LoanInstallment is a single planned or paid installment of a loan.
type LoanInstallment struct {
	DefaultModel
	Loan     Loan `json:"-"`
	LoanID   uuid.UUID
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Paid     bool
	PaidDate *time.Time
	Note     string
}

func (i *LoanInstallment) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)

	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

func (i *LoanInstallment) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*LoanInstallment)
	return tx.First(&Loan{}, "id = ?", toSave.LoanID).Error
}

// Installments returns the installment list of the loan, oldest first.
func (l Loan) Installments(db *gorm.DB) ([]LoanInstallment, error) {
	var installments []LoanInstallment
	err := db.Where(&LoanInstallment{LoanID: l.ID}).Order("datetime(created_at) ASC").Find(&installments).Error
	return installments, err
}

// PayInstallment records an installment payment for the loan.
//
// When installmentID is non-nil, the existing installment is marked
// paid, otherwise a new paid installment is appended. The remaining
// amount is decremented by the payment, floored at zero: an overpayment
// caps silently instead of erroring. Reaching zero completes the loan
// and produces a notification.
func PayInstallment(db *gorm.DB, loan *Loan, installmentID *uuid.UUID, amount decimal.Decimal, note string) (LoanInstallment, error) {
	if !amount.IsPositive() {
		return LoanInstallment{}, ErrAmountNotPositive
	}

	var installment LoanInstallment

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().In(time.UTC)

		if installmentID != nil {
			err := tx.First(&installment, "id = ? AND loan_id = ?", installmentID, loan.ID).Error
			if err != nil {
				return err
			}

			installment.Paid = true
			installment.PaidDate = &now
			installment.Amount = amount
			installment.Note = note

			err = tx.Model(&installment).Select("Paid", "PaidDate", "Amount", "Note").Updates(installment).Error
			if err != nil {
				return err
			}
		} else {
			installment = LoanInstallment{
				LoanID:   loan.ID,
				Amount:   amount,
				Paid:     true,
				PaidDate: &now,
				Note:     note,
			}

			err := tx.Create(&installment).Error
			if err != nil {
				return err
			}
		}

		remaining := loan.RemainingAmount.Sub(amount)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		completed := loan.Completed
		if remaining.IsZero() {
			completed = true
		}

		if completed && !loan.Completed {
			err := notify(tx, loan.UserID, NotificationLoan, PriorityMedium,
				"Loan settled",
				fmt.Sprintf("The %s loan of %s is fully paid.", loan.Type, loan.Amount))
			if err != nil {
				return err
			}
		}

		loan.RemainingAmount = remaining
		loan.Completed = completed

		return tx.Model(loan).Select("RemainingAmount", "Completed").Updates(loan).Error
	})
	if err != nil {
		return LoanInstallment{}, err
	}

	return installment, nil
}

// Returns the user's loans for export
func (Loan) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Loan{}, "user_id = ?", userID)
}

// Returns the installments of the user's loans for export
func (LoanInstallment) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(LoanInstallment{}, "loan_id IN (?)", DB.Model(&Loan{}).Select("id").Where("user_id = ?", userID))
}
