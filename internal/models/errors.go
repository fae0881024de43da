package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Business rule errors. The API maps all of these to HTTP 400.
var (
	ErrAmountNotPositive = errors.New("amounts must be larger than zero")

	ErrUserEmailNotUnique = errors.New("a user with this email is already registered")
	ErrCredentialsInvalid = errors.New("the email or password is incorrect")

	ErrAccountNameNotUnique   = errors.New("the account name must be unique for the user")
	ErrAccountTypeInvalid     = errors.New("the account type must be one of: cash, bank, credit, mfs")
	ErrAccountHasTransactions = errors.New("the account cannot be deleted because transactions reference it")

	ErrCategoryNameNotUnique  = errors.New("the category name must be unique per user and type")
	ErrCategoryTypeInvalid    = errors.New("the category type must be one of: income, expense")
	ErrCategoryIsDefault      = errors.New("default categories cannot be deleted")
	ErrCategoryNestingTooDeep = errors.New("categories can only be nested one level deep")

	ErrTransactionTypeInvalid     = errors.New("the transaction type must be one of: income, expense, transfer")
	ErrTransferSameAccount        = errors.New("source and destination account for a transfer must be different")
	ErrTransferDestinationMissing = errors.New("a transfer needs a destination account")
	ErrInsufficientBalance        = errors.New("the source account balance is insufficient for this transfer")

	ErrBudgetEndBeforeStart = errors.New("the budget end date must not be before its start date")

	ErrLoanTypeInvalid    = errors.New("the loan type must be one of: borrowed, lent")
	ErrContactTypeInvalid = errors.New("the contact type must be one of: person, organization")

	ErrNotificationTypeInvalid     = errors.New("the notification type must be one of: budget, goal, loan, insight")
	ErrNotificationPriorityInvalid = errors.New("the notification priority must be one of: low, medium, high")
)
