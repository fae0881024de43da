package v1_test

import (
	"net/http"

	v1 "github.com/khademul4765/arther-hiseb-sub000/internal/controllers/v1"
	"github.com/khademul4765/arther-hiseb-sub000/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejectTransfer produces an insight notification by requesting a
// transfer the source account cannot cover.
func (suite *TestSuiteStandard) rejectTransfer(auth v1.AuthData) {
	source := createTestAccount(suite.T(), auth, v1.AccountEditable{})
	destination := createTestAccount(suite.T(), auth, v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/transfer", v1.TransferEditable{
		SourceAccountID:      source.Data.ID,
		DestinationAccountID: destination.Data.ID,
		Amount:               decimal.NewFromFloat(100),
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestNotificationsList() {
	auth := registerTestUser(suite.T())
	suite.rejectTransfer(auth)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.False(suite.T(), response.Data[0].Read)
	assert.Equal(suite.T(), "Transfer rejected", response.Data[0].Title)
}

func (suite *TestSuiteStandard) TestNotificationsMarkRead() {
	auth := registerTestUser(suite.T())
	suite.rejectTransfer(auth)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications?read=false", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)

	p := test.Request(suite.T(), http.MethodPatch, response.Data[0].Links.Self, map[string]any{
		"read": true,
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &p, http.StatusOK)

	var updated v1.NotificationResponse
	test.DecodeResponse(suite.T(), &p, &updated)
	assert.True(suite.T(), updated.Data.Read)
}

func (suite *TestSuiteStandard) TestNotificationsDelete() {
	auth := registerTestUser(suite.T())
	suite.rejectTransfer(auth)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)

	d := test.Request(suite.T(), http.MethodDelete, response.Data[0].Links.Self, "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &d, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "", bearer(auth))
	var after v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &r, &after)
	assert.Len(suite.T(), after.Data, 0)
}
