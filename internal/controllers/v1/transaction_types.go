package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/khademul4765/arther-hiseb-sub000/internal/types"
	hiseb_uuid "github.com/khademul4765/arther-hiseb-sub000/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-01T18:43:00.271152Z"` // Date of the transaction. Defaults to the current time.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"250.00" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Type                 models.TransactionType `json:"type" example:"expense"`                                              // Type of the transaction: income, expense or transfer
	Category             string                 `json:"category" example:"খাবার" default:""`                                 // Category name of the transaction
	AccountID            uuid.UUID              `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`            // ID of the account the money moves on
	DestinationAccountID *uuid.UUID             `json:"destinationAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the destination account, set for transfers
	Person               string                 `json:"person" example:"Rahim" default:""`                                   // Person the transaction was with
	Note                 string                 `json:"note" example:"Lunch" default:""`                                     // A note
	Tags                 types.StringList       `json:"tags" example:"office,lunch"`                                         // Free-form tags
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:               userID,
		Date:                 editable.Date,
		Amount:               editable.Amount,
		Type:                 editable.Type,
		Category:             editable.Category,
		AccountID:            editable.AccountID,
		DestinationAccountID: editable.DestinationAccountID,
		Person:               editable.Person,
		Note:                 editable.Note,
		Tags:                 editable.Tags,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:                 model.Date,
			Amount:               model.Amount,
			Type:                 model.Type,
			Category:             model.Category,
			AccountID:            model.AccountID,
			DestinationAccountID: model.DestinationAccountID,
			Person:               model.Person,
			Note:                 model.Note,
			Tags:                 model.Tags,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date              time.Time       `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Type              string          `form:"type"`                                  // Type of the transaction
	Category          string          `form:"category"`                              // Category name
	AccountID         hiseb_uuid.UUID `form:"account" filterField:"false"`           // ID of the source or destination account
	Person            string          `form:"person" filterField:"false"`            // By person
	Note              string          `form:"note" filterField:"false"`              // By note
	Tag               string          `form:"tag" filterField:"false"`               // Transactions with this tag
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Amount:   f.Amount,
		Type:     models.TransactionType(f.Type),
		Category: f.Category,
	}
}

// TransferEditable represents the parameters of a transfer between two accounts.
type TransferEditable struct {
	SourceAccountID      uuid.UUID       `json:"sourceAccountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45" binding:"required"`      // Account the money leaves
	DestinationAccountID uuid.UUID       `json:"destinationAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc" binding:"required"` // Account the money arrives on
	Amount               decimal.Decimal `json:"amount" example:"500.00" binding:"required"`                                             // The amount to move
	Note                 string          `json:"note" example:"Cash to Bkash" default:""`                                                // A note
}
