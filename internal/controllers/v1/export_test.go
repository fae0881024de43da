package v1_test

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/khademul4765/arther-hiseb-sub000/internal/controllers/v1"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"github.com/khademul4765/arther-hiseb-sub000/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	auth := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "", bearer(auth))
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	auth := registerTestUser(suite.T())

	account := createTestAccount(suite.T(), auth, v1.AccountEditable{Balance: decimal.NewFromInt(1000)})
	_ = createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(50), AccountID: account.Data.ID})
	goal := createTestGoal(suite.T(), auth, v1.GoalEditable{TargetAmount: decimal.NewFromInt(500)})
	contact := createTestContact(suite.T(), auth, v1.ContactEditable{})
	_ = createTestLoan(suite.T(), auth, v1.LoanEditable{ContactID: contact.Data.ID, Amount: decimal.NewFromInt(300)})

	depositRecorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Deposits, map[string]any{
		"amount": "100",
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &depositRecorder, http.StatusCreated)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotEmpty(suite.T(), response.Version)
	assert.False(suite.T(), response.CreationTime.IsZero())

	// Every registered collection is part of the document
	for name := range models.Registry {
		assert.Contains(suite.T(), response.Data, name, "export does not contain %q", name)
	}

	var accounts []models.Account
	require.NoError(suite.T(), json.Unmarshal(response.Data["accounts"], &accounts))
	require.Len(suite.T(), accounts, 1)
	assert.Equal(suite.T(), account.Data.ID, accounts[0].ID)

	var deposits []models.GoalDeposit
	require.NoError(suite.T(), json.Unmarshal(response.Data["goalDeposits"], &deposits))
	assert.Len(suite.T(), deposits, 1)
}

func (suite *TestSuiteStandard) TestExportUserScoped() {
	auth := registerTestUser(suite.T())
	account := createTestAccount(suite.T(), auth, v1.AccountEditable{Name: "Mine"})

	other := registerTestUser(suite.T())
	_ = createTestAccount(suite.T(), other, v1.AccountEditable{Name: "Not mine"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	var accounts []models.Account
	require.NoError(suite.T(), json.Unmarshal(response.Data["accounts"], &accounts))
	require.Len(suite.T(), accounts, 1)
	assert.Equal(suite.T(), account.Data.ID, accounts[0].ID)

	// Only the requesting user is part of the document
	var users []models.UserExport
	require.NoError(suite.T(), json.Unmarshal(response.Data["users"], &users))
	require.Len(suite.T(), users, 1)
	assert.Equal(suite.T(), auth.User.ID, users[0].ID)
	assert.NotEmpty(suite.T(), users[0].PasswordHash)
}

func (suite *TestSuiteStandard) TestImportRoundTrip() {
	auth := registerTestUser(suite.T())

	account := createTestAccount(suite.T(), auth, v1.AccountEditable{Name: "bKash", Balance: decimal.NewFromInt(1000)})
	transaction := createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(50), AccountID: account.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var export v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &export)

	// Wipe the instance. The token is useless now since the user is gone, too.
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// A fresh user restores the backup
	restorer := registerTestUser(suite.T())

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", v1.ImportDocument{
		Version: export.Version,
		Data:    export.Data,
	}, bearer(restorer))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The original user can log in again since their password hash survived
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    auth.User.Email,
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var login v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &login)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "", bearer(*login.Data))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var accounts v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &accounts)
	require.Len(suite.T(), accounts.Data, 1)

	// Resources keep their IDs across the round trip
	assert.Equal(suite.T(), account.Data.ID, accounts.Data[0].ID)
	assert.Equal(suite.T(), "bKash", accounts.Data[0].Name)
	assert.True(suite.T(), accounts.Data[0].Balance.Equal(decimal.NewFromInt(950)))

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", bearer(*login.Data))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestImportUnknownCollection() {
	auth := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", map[string]any{
		"version": "1.0.0",
		"data": map[string]any{
			"gremlins": []any{},
		},
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Error, `unknown collection "gremlins"`)
}

func (suite *TestSuiteStandard) TestImportInvalidBody() {
	auth := registerTestUser(suite.T())

	tests := []string{
		`{ broken json`,
		`{"data": {"accounts": "not a list"}}`,
	}

	for _, body := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, bearer(auth))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestImportDuplicateData() {
	auth := registerTestUser(suite.T())
	_ = createTestAccount(suite.T(), auth, v1.AccountEditable{Name: uuid.NewString()})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var export v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &export)

	// Importing into a non-empty instance collides on the primary keys
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", v1.ImportDocument{
		Version: export.Version,
		Data:    export.Data,
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest, http.StatusInternalServerError)
}
