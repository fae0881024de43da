package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	hiseb_uuid "github.com/khademul4765/arther-hiseb-sub000/internal/uuid"
	"github.com/shopspring/decimal"
)

// LoanEditable represents all user configurable parameters
type LoanEditable struct {
	Type      models.LoanType `json:"type" example:"lent"`                                              // Direction of the loan: borrowed or lent
	Amount    decimal.Decimal `json:"amount" example:"10000.00"`                                        // The full loan amount
	ContactID uuid.UUID       `json:"contactId" example:"6b40ffab-9e0c-4135-a3d6-ba6a31d0f1eb"`         // ID of the contact the loan is with
	Date      time.Time       `json:"date" example:"2024-02-10T00:00:00Z"`                              // Day the loan was taken or given
	DueDate   *time.Time      `json:"dueDate" example:"2024-08-10T00:00:00Z"`                           // Day the loan should be settled
	Note      string          `json:"note" example:"For shop inventory" default:""`                     // A note
}

func (editable LoanEditable) model(userID uuid.UUID) models.Loan {
	return models.Loan{
		UserID:          userID,
		Type:            editable.Type,
		Amount:          editable.Amount,
		RemainingAmount: editable.Amount,
		ContactID:       editable.ContactID,
		Date:            editable.Date,
		DueDate:         editable.DueDate,
		Note:            editable.Note,
	}
}

type LoanLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/loans/20a2ac3b-dc8f-4a34-b374-890faae311cc"`              // The loan itself
	Payments string `json:"payments" example:"https://example.com/api/v1/loans/20a2ac3b-dc8f-4a34-b374-890faae311cc/payments"` // The installments of the loan
	Contact  string `json:"contact" example:"https://example.com/api/v1/contacts/6b40ffab-9e0c-4135-a3d6-ba6a31d0f1eb"`        // The contact the loan is with
}

type Loan struct {
	models.DefaultModel
	LoanEditable
	Links LoanLinks `json:"links"`

	// These fields are computed
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"4000.00"` // Amount still open
	Completed       bool            `json:"completed" example:"false"`         // Is the loan settled?
}

func newLoan(c *gin.Context, model models.Loan) Loan {
	url := c.GetString(string(models.DBContextURL))

	return Loan{
		DefaultModel: model.DefaultModel,
		LoanEditable: LoanEditable{
			Type:      model.Type,
			Amount:    model.Amount,
			ContactID: model.ContactID,
			Date:      model.Date,
			DueDate:   model.DueDate,
			Note:      model.Note,
		},
		Links: LoanLinks{
			Self:     fmt.Sprintf("%s/v1/loans/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/loans/%s/payments", url, model.ID),
			Contact:  fmt.Sprintf("%s/v1/contacts/%s", url, model.ContactID),
		},
		RemainingAmount: model.RemainingAmount,
		Completed:       model.Completed,
	}
}

type LoanListResponse struct {
	Data       []Loan      `json:"data"`                                                          // List of loans
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type LoanCreateResponse struct {
	Data  []LoanResponse `json:"data"`                                                          // List of the created Loans or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (l *LoanCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	l.Data = append(l.Data, LoanResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type LoanResponse struct {
	Data  *Loan   `json:"data"`                                                          // Data for the Loan
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LoanQueryFilter struct {
	Type      string          `form:"type"`                       // By direction: borrowed or lent
	ContactID hiseb_uuid.UUID `form:"contact"`                    // By ID of the contact
	Completed bool            `form:"completed"`                  // Is the loan settled?
	Note      string          `form:"note" filterField:"false"`   // By note
	Offset    uint            `form:"offset" filterField:"false"` // The offset of the first Loan returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`  // Maximum number of Loans to return. Defaults to 50.
}

func (f LoanQueryFilter) model() models.Loan {
	return models.Loan{
		Type:      models.LoanType(f.Type),
		ContactID: f.ContactID.UUID,
		Completed: f.Completed,
	}
}

// LoanPaymentEditable represents an installment payment.
type LoanPaymentEditable struct {
	InstallmentID *uuid.UUID      `json:"installmentId" example:"d3c876eb-10a7-47b3-9893-ae4371841a41"` // ID of a planned installment to mark paid. A new installment is recorded when empty.
	Amount        decimal.Decimal `json:"amount" example:"2000.00" binding:"required"`                  // The amount paid
	Note          string          `json:"note" example:"Second installment" default:""`                 // A note
}

// LoanInstallment is the API representation of an installment.
type LoanInstallment struct {
	models.DefaultModel
	LoanID   uuid.UUID       `json:"loanId" example:"20a2ac3b-dc8f-4a34-b374-890faae311cc"` // ID of the loan
	Amount   decimal.Decimal `json:"amount" example:"2000.00"`                              // The installment amount
	Paid     bool            `json:"paid" example:"true"`                                   // Has the installment been paid?
	PaidDate *time.Time      `json:"paidDate" example:"2024-03-10T00:00:00Z"`               // Day the installment was paid
	Note     string          `json:"note" example:"Second installment" default:""`          // A note
}

func newLoanInstallment(model models.LoanInstallment) LoanInstallment {
	return LoanInstallment{
		DefaultModel: model.DefaultModel,
		LoanID:       model.LoanID,
		Amount:       model.Amount,
		Paid:         model.Paid,
		PaidDate:     model.PaidDate,
		Note:         model.Note,
	}
}

type LoanInstallmentListResponse struct {
	Data  []LoanInstallment `json:"data"`                                                          // List of installments, oldest first
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// LoanPaymentResponse returns the recorded installment together with
// the state of the loan after the payment.
type LoanPaymentResponse struct {
	Data  *LoanInstallment `json:"data"`                                                          // The recorded installment
	Loan  *Loan            `json:"loan"`                                                          // The loan after the payment
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
