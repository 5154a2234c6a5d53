package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/lcsync/internal/config"
	"github.com/phrazzld/lcsync/internal/domain"
)

// maxErrorBody bounds how much of an error response is kept in APIError.
const maxErrorBody = 512

// Client implements store.SubmissionSource using the LeetCode GraphQL API.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains the endpoint settings
	config config.LeetCodeConfig

	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the http.Client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// NewClient creates a new Client with the provided dependencies.
func NewClient(cfg config.LeetCodeConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GraphQLURL == "" {
		return nil, fmt.Errorf("%w: graphql url cannot be empty", ErrInvalidConfig)
	}
	if cfg.ProblemBaseURL == "" {
		return nil, fmt.Errorf("%w: problem base url cannot be empty", ErrInvalidConfig)
	}

	c := &Client{
		logger:     logger.With("component", "leetcode_client"),
		config:     cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RecentAcceptedSubmissions implements store.SubmissionSource.
func (c *Client) RecentAcceptedSubmissions(
	ctx context.Context,
	username string,
	limit int,
) ([]domain.Submission, error) {
	var data recentSubmissionsData
	err := c.do(ctx, "recentAcSubmissions", recentAcSubmissionsQuery, map[string]interface{}{
		"username": username,
		"limit":    limit,
	}, &data)
	if err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(data.RecentAcSubmissionList))
	for _, raw := range data.RecentAcSubmissionList {
		sub, err := domain.NewSubmission(raw.TitleSlug, raw.Timestamp)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}

	c.logger.DebugContext(ctx, "fetched recent accepted submissions",
		"username", username,
		"limit", limit,
		"count", len(submissions))

	return submissions, nil
}

// Problem implements store.SubmissionSource.
func (c *Client) Problem(ctx context.Context, slug string) (*domain.Problem, error) {
	var data questionData
	err := c.do(ctx, "questionData", questionDataQuery, map[string]interface{}{
		"titleSlug": slug,
	}, &data)
	if err != nil {
		return nil, err
	}

	if data.Question == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProblemNotFound, slug)
	}

	return toProblem(slug, data.Question)
}

// ProblemURL implements store.SubmissionSource.
func (c *Client) ProblemURL(slug string) string {
	return strings.TrimRight(c.config.ProblemBaseURL, "/") + "/" + slug + "/"
}

func toProblem(slug string, q *questionSchema) (*domain.Problem, error) {
	if q.QuestionID == "" || q.Title == "" {
		return nil, fmt.Errorf("%w: question %s lacks id or title", ErrInvalidResponse, slug)
	}

	problem := &domain.Problem{
		ID:         q.QuestionID,
		Title:      q.Title,
		Slug:       q.TitleSlug,
		Difficulty: q.Difficulty,
	}
	if problem.Slug == "" {
		problem.Slug = slug
	}

	for _, tag := range q.TopicTags {
		problem.Tags = append(problem.Tags, tag.Name)
	}

	if strings.TrimSpace(q.SimilarQuestions) != "" {
		if err := json.Unmarshal([]byte(q.SimilarQuestions), &problem.Similar); err != nil {
			return nil, fmt.Errorf("%w: similar questions of %s: %v", ErrInvalidResponse, slug, err)
		}
	}

	return problem, nil
}

// do posts one GraphQL operation and decodes its data member into out.
func (c *Client) do(
	ctx context.Context,
	operation string,
	query string,
	variables map[string]interface{},
	out interface{},
) error {
	body, err := json.Marshal(graphqlRequest{
		OperationName: operation,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.GraphQLURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: truncate(string(payload), maxErrorBody)}
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidResponse, operation, err)
	}

	if len(envelope.Errors) > 0 {
		gqlErr := &GraphQLError{Operation: operation}
		for _, e := range envelope.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		return gqlErr
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: %s: missing data", ErrInvalidResponse, operation)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidResponse, operation, err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
