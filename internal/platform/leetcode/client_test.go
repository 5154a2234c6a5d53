package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/lcsync/internal/config"
	"github.com/phrazzld/lcsync/internal/domain"
	"github.com/phrazzld/lcsync/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a server answering every request with handler and
// returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	l, _ := logger.NewTestLogger(t)
	client, err := NewClient(config.LeetCodeConfig{
		Username:       "alice",
		GraphQLURL:     server.URL + "/graphql/",
		ProblemBaseURL: "https://leetcode.com/problems",
		RecentLimit:    15,
	}, l)
	require.NoError(t, err)
	return client
}

// decodeRequest reads the GraphQL request posted by the client.
func decodeRequest(t *testing.T, r *http.Request) graphqlRequest {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var req graphqlRequest
	require.NoError(t, json.Unmarshal(body, &req))
	return req
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()
	l, _ := logger.NewTestLogger(t)

	_, err := NewClient(config.LeetCodeConfig{ProblemBaseURL: "https://x"}, l)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient(config.LeetCodeConfig{GraphQLURL: "https://x"}, l)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient(config.LeetCodeConfig{GraphQLURL: "https://x", ProblemBaseURL: "https://y"}, nil)
	assert.Error(t, err)
}

func TestRecentAcceptedSubmissions(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/graphql/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		req := decodeRequest(t, r)
		assert.Equal(t, "recentAcSubmissions", req.OperationName)
		assert.Contains(t, req.Query, "recentAcSubmissionList(username: $username, limit: $limit)")
		assert.Equal(t, "alice", req.Variables["username"])
		assert.Equal(t, float64(15), req.Variables["limit"])

		_, _ = w.Write([]byte(`{"data":{"recentAcSubmissionList":[
			{"titleSlug":"valid-anagram","timestamp":"1700086400"},
			{"titleSlug":"two-sum","timestamp":"1700000000"}
		]}}`))
	})

	subs, err := client.RecentAcceptedSubmissions(context.Background(), "alice", 15)

	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "valid-anagram", subs[0].Slug)
	assert.Equal(t, time.Unix(1700086400, 0).UTC(), subs[0].SolvedAt)
	assert.Equal(t, "two-sum", subs[1].Slug)
}

func TestRecentAcceptedSubmissionsNullList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"recentAcSubmissionList":null}}`))
	})

	subs, err := client.RecentAcceptedSubmissions(context.Background(), "alice", 15)

	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestRecentAcceptedSubmissionsBadTimestamp(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"recentAcSubmissionList":[{"titleSlug":"two-sum","timestamp":"soon"}]}}`))
	})

	_, err := client.RecentAcceptedSubmissions(context.Background(), "alice", 15)

	assert.ErrorIs(t, err, domain.ErrInvalidSubmission)
}

func TestProblem(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "questionData", req.OperationName)
		assert.Equal(t, "two-sum", req.Variables["titleSlug"])

		_, _ = w.Write([]byte(`{"data":{"question":{
			"questionId":"1",
			"title":"Two Sum",
			"titleSlug":"two-sum",
			"difficulty":"Easy",
			"similarQuestions":"[{\"title\": \"3Sum\", \"titleSlug\": \"3sum\", \"difficulty\": \"Medium\", \"translatedTitle\": null}]",
			"topicTags":[{"name":"Array"},{"name":"Hash Table"}]
		}}}`))
	})

	problem, err := client.Problem(context.Background(), "two-sum")

	require.NoError(t, err)
	assert.Equal(t, "1", problem.ID)
	assert.Equal(t, "Two Sum", problem.Title)
	assert.Equal(t, "two-sum", problem.Slug)
	assert.Equal(t, "Easy", problem.Difficulty)
	assert.Equal(t, []string{"Array", "Hash Table"}, problem.Tags)
	require.Len(t, problem.Similar, 1)
	assert.Equal(t, domain.SimilarProblem{Title: "3Sum", Slug: "3sum", Difficulty: "Medium"}, problem.Similar[0])
	assert.Equal(t, "1. Two Sum", problem.DisplayName())
}

func TestProblemNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"question":null}}`))
	})

	_, err := client.Problem(context.Background(), "no-such-problem")

	assert.ErrorIs(t, err, domain.ErrProblemNotFound)
}

func TestProblemMissingFields(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"question":{"difficulty":"Easy"}}}`))
	})

	_, err := client.Problem(context.Background(), "two-sum")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	t.Run("non 2xx status", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		})

		_, err := client.RecentAcceptedSubmissions(context.Background(), "alice", 15)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "slow down")
	})

	t.Run("graphql errors", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"That user does not exist."}],"data":{"recentAcSubmissionList":null}}`))
		})

		_, err := client.RecentAcceptedSubmissions(context.Background(), "ghost", 15)

		var gqlErr *GraphQLError
		require.True(t, errors.As(err, &gqlErr))
		assert.Equal(t, "recentAcSubmissions", gqlErr.Operation)
		assert.Equal(t, []string{"That user does not exist."}, gqlErr.Messages)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := client.Problem(context.Background(), "two-sum")

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("missing data", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":null}`))
		})

		_, err := client.Problem(context.Background(), "two-sum")

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestProblemURL(t *testing.T) {
	t.Parallel()
	l, _ := logger.NewTestLogger(t)

	for _, base := range []string{"https://leetcode.com/problems", "https://leetcode.com/problems/"} {
		client, err := NewClient(config.LeetCodeConfig{GraphQLURL: "https://x", ProblemBaseURL: base}, l)
		require.NoError(t, err)
		assert.Equal(t, "https://leetcode.com/problems/two-sum/", client.ProblemURL("two-sum"))
	}
}
