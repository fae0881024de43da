package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType describes the kind of account.
type AccountType string

const (
	AccountCash   AccountType = "cash"
	AccountBank   AccountType = "bank"
	AccountCredit AccountType = "credit"
	AccountMFS    AccountType = "mfs" // mobile financial service
)

// Account represents a balance-holding entity, e.g. a bank account or a
// cash wallet.
//
// The balance is maintained imperatively by the transaction mutation
// paths, it is not re-derived from the transaction history.
type Account struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"uniqueIndex:account_name_user_id"`
	Name     string    `gorm:"uniqueIndex:account_name_user_id"`
	Type     AccountType
	Note     string
	Balance  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived bool
}

// BeforeSave validates the account type and trims whitespace from all
// strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	switch a.Type {
	case AccountCash, AccountBank, AccountCredit, AccountMFS:
		return nil
	}

	return ErrAccountTypeInvalid
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// BeforeDelete rejects the deletion while transactions reference the
// account, either as source or as transfer destination.
func (a *Account) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Transaction{}).
		Where("account_id = ?", a.ID).
		Or("destination_account_id = ?", a.ID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrAccountHasTransactions
	}

	return nil
}

// Transactions returns all transactions for this account.
func (a Account) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	// Get all transactions where the account is either the source or
	// the transfer destination
	db.Where("account_id = ?", a.ID).Or("destination_account_id = ?", a.ID).Find(&transactions)
	return transactions
}

// Returns the user's accounts for export
func (Account) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Account{}, "user_id = ?", userID)
}
