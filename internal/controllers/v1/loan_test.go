package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/khademul4765/arther-hiseb-sub000/internal/controllers/v1"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/khademul4765/arther-hiseb-sub000/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLoansCreate() {
	auth := registerTestUser(suite.T())
	contact := createTestContact(suite.T(), auth, v1.ContactEditable{Name: "Karim"})

	loan := createTestLoan(suite.T(), auth, v1.LoanEditable{
		Type:      models.LoanLent,
		Amount:    decimal.NewFromFloat(10000),
		ContactID: contact.Data.ID,
	})

	require.NotNil(suite.T(), loan.Data)
	assert.Equal(suite.T(), models.LoanLent, loan.Data.Type)
	assert.True(suite.T(), loan.Data.RemainingAmount.Equal(decimal.NewFromFloat(10000)))
	assert.False(suite.T(), loan.Data.Completed)
	assert.Contains(suite.T(), loan.Data.Links.Contact, contact.Data.ID.String())
}

func (suite *TestSuiteStandard) TestLoansCreateInvalid() {
	auth := registerTestUser(suite.T())
	contact := createTestContact(suite.T(), auth, v1.ContactEditable{})

	tests := []struct {
		name     string
		editable v1.LoanEditable
	}{
		{"invalid type", v1.LoanEditable{Type: "mortgage", Amount: decimal.NewFromFloat(100), ContactID: contact.Data.ID}},
		{"zero amount", v1.LoanEditable{Type: models.LoanBorrowed, ContactID: contact.Data.ID}},
	}

	// The requests are built by hand since the helper replaces
	// missing values with valid defaults
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/loans", []v1.LoanEditable{tt.editable}, bearer(auth))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestLoanPayments() {
	auth := registerTestUser(suite.T())
	loan := createTestLoan(suite.T(), auth, v1.LoanEditable{Amount: decimal.NewFromFloat(500)})

	paymentsURL := fmt.Sprintf("http://example.com/v1/loans/%s/payments", loan.Data.ID)

	r := test.Request(suite.T(), http.MethodPost, paymentsURL, v1.LoanPaymentEditable{
		Amount: decimal.NewFromFloat(200),
		Note:   "First installment",
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var payment v1.LoanPaymentResponse
	test.DecodeResponse(suite.T(), &r, &payment)
	require.NotNil(suite.T(), payment.Data)
	assert.True(suite.T(), payment.Data.Paid)
	require.NotNil(suite.T(), payment.Loan)
	assert.True(suite.T(), payment.Loan.RemainingAmount.Equal(decimal.NewFromFloat(300)))

	// Overpaying the rest settles the loan
	r = test.Request(suite.T(), http.MethodPost, paymentsURL, v1.LoanPaymentEditable{
		Amount: decimal.NewFromFloat(400),
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	test.DecodeResponse(suite.T(), &r, &payment)
	require.NotNil(suite.T(), payment.Loan)
	assert.True(suite.T(), payment.Loan.RemainingAmount.IsZero())
	assert.True(suite.T(), payment.Loan.Completed)

	// The installment history has both payments
	l := test.Request(suite.T(), http.MethodGet, paymentsURL, "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &l, http.StatusOK)

	var list v1.LoanInstallmentListResponse
	test.DecodeResponse(suite.T(), &l, &list)
	assert.Len(suite.T(), list.Data, 2)
}

func (suite *TestSuiteStandard) TestLoansListFilter() {
	auth := registerTestUser(suite.T())
	contact := createTestContact(suite.T(), auth, v1.ContactEditable{})

	_ = createTestLoan(suite.T(), auth, v1.LoanEditable{Type: models.LoanBorrowed, ContactID: contact.Data.ID})
	_ = createTestLoan(suite.T(), auth, v1.LoanEditable{Type: models.LoanLent})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 2},
		{"by type", "type=lent", 1},
		{"by contact", fmt.Sprintf("contact=%s", contact.Data.ID), 1},
		{"by completed", "completed=false", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/loans?"+tt.query, "", bearer(auth))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.LoanListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestLoansUserScoped() {
	auth := registerTestUser(suite.T())
	other := registerTestUser(suite.T())

	loan := createTestLoan(suite.T(), auth, v1.LoanEditable{})

	r := test.Request(suite.T(), http.MethodGet, loan.Data.Links.Self, "", bearer(other))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
