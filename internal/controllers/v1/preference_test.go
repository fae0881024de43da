package v1_test

import (
	"net/http"

	v1 "github.com/khademul4765/arther-hiseb-sub000/internal/controllers/v1"
	"github.com/khademul4765/arther-hiseb-sub000/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPreferencesGet() {
	auth := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/preferences", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PreferenceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	// Defaults set at registration
	assert.False(suite.T(), response.Data.DarkMode)
	assert.True(suite.T(), response.Data.NotificationsEnabled)
}

func (suite *TestSuiteStandard) TestPreferencesUpdate() {
	auth := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/preferences", map[string]any{
		"darkMode": true,
	}, bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PreferenceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.DarkMode)

	// The notification setting is untouched by the partial update
	assert.True(suite.T(), response.Data.NotificationsEnabled)
}

func (suite *TestSuiteStandard) TestPreferencesOptions() {
	auth := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/preferences", "", bearer(auth))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", r.Header().Get("allow"))
}
