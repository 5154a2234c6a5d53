package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/lcsync/internal/api/shared"
	"github.com/phrazzld/lcsync/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler and
// closes it when the test ends.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// AssertErrorResponse checks that a response carries an error body with the
// expected status, message and a trace id.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", string(body))

	assert.Equal(t, expectedMessage, errResp.Error)
	assert.NotEmpty(t, errResp.TraceID, "Error response should include a trace ID")
}

// NewTestConfig returns a valid configuration pointing at the fakes served
// from leetcodeURL and notionURL.
func NewTestConfig(leetcodeURL, notionURL string) *config.Config {
	return &config.Config{
		LeetCode: config.LeetCodeConfig{
			Username:       "alice",
			GraphQLURL:     leetcodeURL + "/graphql/",
			ProblemBaseURL: "https://leetcode.com/problems",
			RecentLimit:    15,
		},
		Notion: config.NotionConfig{
			Token:      "secret_test",
			DatabaseID: "db-123",
			BaseURL:    notionURL + "/v1",
			Version:    "2022-02-22",
			PageSize:   20,
		},
		Sync: config.SyncConfig{
			SourceLabel: "Website",
			Timezone:    "UTC",
			Schedule:    "0 */6 * * *",
		},
		Server: config.ServerConfig{Port: 3333, LogLevel: "debug"},
		Auth:   config.AuthConfig{Username: "admin", Password: "hunter2"},
	}
}
