package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType describes the effect a transaction has on the
// account balance.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction represents a single income, expense or transfer.
//
// For transfers, AccountID is the source and DestinationAccountID the
// target account.
type Transaction struct {
	DefaultModel
	User                 User      `json:"-"`
	UserID               uuid.UUID `gorm:"index"`
	Date                 time.Time
	Amount               decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type                 TransactionType
	Category             string
	Account              Account `json:"-"`
	AccountID            uuid.UUID
	DestinationAccount   *Account `json:"-"`
	DestinationAccountID *uuid.UUID
	Person               string
	Note                 string
	Tags                 types.StringList `gorm:"type:TEXT"`
}

// BeforeSave validates the transaction and sets the timezone for the
// date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Person = strings.TrimSpace(t.Person)
	t.Note = strings.TrimSpace(t.Note)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch t.Type {
	case TransactionIncome, TransactionExpense:
	case TransactionTransfer:
		if t.DestinationAccountID == nil {
			return ErrTransferDestinationMissing
		}

		if *t.DestinationAccountID == t.AccountID {
			return ErrTransferSameAccount
		}
	default:
		return ErrTransactionTypeInvalid
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the referenced accounts exist and
// belong to the transaction's user.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Account{}, "id = ? AND user_id = ?", toSave.AccountID, toSave.UserID).Error
	if err != nil {
		return err
	}

	if toSave.DestinationAccountID != nil {
		return tx.First(&Account{}, "id = ? AND user_id = ?", toSave.DestinationAccountID, toSave.UserID).Error
	}

	return nil
}

// delta returns the balance effect of the transaction on its source
// account.
func (t Transaction) delta() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}

	// Expenses and transfers leave via the source account
	return t.Amount.Neg()
}

// applyBalance adjusts the balances of all accounts the transaction
// affects. With invert set, the effect is reversed.
func (t Transaction) applyBalance(tx *gorm.DB, invert bool) error {
	delta := t.delta()
	if invert {
		delta = delta.Neg()
	}

	var account Account
	err := tx.First(&account, "id = ? AND user_id = ?", t.AccountID, t.UserID).Error
	if err != nil {
		return err
	}

	err = tx.Model(&account).Update("balance", account.Balance.Add(delta)).Error
	if err != nil {
		return err
	}

	// Expenses that drive the balance negative produce an insight
	if !invert && t.Type == TransactionExpense && account.Balance.Add(delta).IsNegative() {
		err = notify(tx, t.UserID, NotificationInsight, PriorityHigh,
			"Low balance",
			fmt.Sprintf("The balance of %s dropped below zero.", account.Name))
		if err != nil {
			return err
		}
	}

	if t.Type != TransactionTransfer || t.DestinationAccountID == nil {
		return nil
	}

	amount := t.Amount
	if invert {
		amount = amount.Neg()
	}

	var destination Account
	err = tx.First(&destination, "id = ? AND user_id = ?", t.DestinationAccountID, t.UserID).Error
	if err != nil {
		return err
	}

	return tx.Model(&destination).Update("balance", destination.Balance.Add(amount)).Error
}

// CreateTransaction writes the transaction and its compensating balance
// adjustment in a single database transaction, then recalculates the
// budget spent amounts for the user.
func CreateTransaction(db *gorm.DB, transaction *Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(transaction).Error
		if err != nil {
			return err
		}

		err = transaction.applyBalance(tx, false)
		if err != nil {
			return err
		}

		return RecalculateSpent(tx, transaction.UserID)
	})
}

// UpdateTransaction applies a partial update to a transaction.
//
// The old transaction's effect is reverted on its originating
// account(s), then the new amount/type/account combination is applied
// to the (possibly different) target account(s). When the account is
// unchanged, the revert and the reapply collapse into two writes on the
// same row inside one database transaction, which is equivalent to the
// single combined delta.
func UpdateTransaction(db *gorm.DB, transaction *Transaction, update Transaction, fields []any) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := transaction.applyBalance(tx, true)
		if err != nil {
			return err
		}

		err = tx.Model(transaction).Select("", fields...).Updates(update).Error
		if err != nil {
			return err
		}

		// Re-read so the reapply sees the updated values
		err = tx.First(transaction, "id = ?", transaction.ID).Error
		if err != nil {
			return err
		}

		err = transaction.applyBalance(tx, false)
		if err != nil {
			return err
		}

		return RecalculateSpent(tx, transaction.UserID)
	})
}

// DeleteTransaction reverses the transaction's balance effect and
// deletes the document atomically.
func DeleteTransaction(db *gorm.DB, transaction *Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := transaction.applyBalance(tx, true)
		if err != nil {
			return err
		}

		err = tx.Delete(transaction).Error
		if err != nil {
			return err
		}

		return RecalculateSpent(tx, transaction.UserID)
	})
}

// Transfer moves money between two accounts of the user and records a
// transfer transaction.
//
// An insufficient source balance rejects the transfer: no balances are
// changed, a low-priority notification is recorded and
// ErrInsufficientBalance is returned.
func Transfer(db *gorm.DB, userID, sourceID, destinationID uuid.UUID, amount decimal.Decimal, note string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrAmountNotPositive
	}

	if sourceID == destinationID {
		return Transaction{}, ErrTransferSameAccount
	}

	var source Account
	err := db.First(&source, "id = ? AND user_id = ?", sourceID, userID).Error
	if err != nil {
		return Transaction{}, err
	}

	if source.Balance.LessThan(amount) {
		err = notify(db, userID, NotificationInsight, PriorityLow,
			"Transfer rejected",
			fmt.Sprintf("The balance of %s is not sufficient to transfer %s.", source.Name, amount))
		if err != nil {
			return Transaction{}, err
		}

		return Transaction{}, ErrInsufficientBalance
	}

	transaction := Transaction{
		UserID:               userID,
		Type:                 TransactionTransfer,
		Amount:               amount,
		AccountID:            sourceID,
		DestinationAccountID: &destinationID,
		Note:                 note,
	}

	err = CreateTransaction(db, &transaction)
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// Returns the user's transactions for export
func (Transaction) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Transaction{}, "user_id = ?", userID)
}
