package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/lcsync/internal/config"
	"github.com/phrazzld/lcsync/internal/domain"
)

// Client implements store.EntryStore on top of a Notion database.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains the token, database id and API settings
	config config.NotionConfig

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
func NewClient(cfg config.NotionConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: token cannot be empty", ErrInvalidConfig)
	}
	if cfg.DatabaseID == "" {
		return nil, fmt.Errorf("%w: database id cannot be empty", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base url cannot be empty", ErrInvalidConfig)
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("%w: api version cannot be empty", ErrInvalidConfig)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive", ErrInvalidConfig)
	}

	c := &Client{
		logger:     logger.With("component", "notion_client"),
		config:     cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FindBySlugs implements store.EntryStore.
func (c *Client) FindBySlugs(ctx context.Context, slugs []string) ([]domain.TrackedEntry, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	req := queryRequest{
		PageSize: c.config.PageSize,
		Filter:   slugFilter(slugs),
	}

	var resp queryResponse
	path := "/databases/" + url.PathEscape(c.config.DatabaseID) + "/query"
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to query database: %w", err)
	}

	if resp.HasMore {
		c.logger.WarnContext(ctx, "query matched more entries than one page, remainder ignored",
			"page_size", c.config.PageSize,
			"slug_count", len(slugs))
	}

	entries := make([]domain.TrackedEntry, 0, len(resp.Results))
	for _, p := range resp.Results {
		entry, err := entryFromPage(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	c.logger.DebugContext(ctx, "queried tracked entries",
		"slug_count", len(slugs),
		"match_count", len(entries))

	return entries, nil
}

// UpdateReview implements store.EntryStore.
func (c *Client) UpdateReview(ctx context.Context, pageID string, reviewDate string, stage domain.Stage) error {
	if pageID == "" {
		return fmt.Errorf("%w: empty page id", domain.ErrValidation)
	}

	req := updatePageRequest{Properties: reviewProperties(reviewDate, stage)}
	if err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(pageID), req, nil); err != nil {
		return fmt.Errorf("failed to update page %s: %w", pageID, err)
	}
	return nil
}

// Create implements store.EntryStore.
func (c *Client) Create(ctx context.Context, entry *domain.TrackedEntry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("%w: nil entry", domain.ErrValidation)
	}
	if err := entry.Validate(); err != nil {
		return "", err
	}

	req := createPageRequest{
		Parent:     parent{DatabaseID: c.config.DatabaseID},
		Properties: entryProperties(entry),
	}

	var created page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &created); err != nil {
		return "", fmt.Errorf("failed to create page for %s: %w", entry.Slug, err)
	}
	return created.ID, nil
}

// do sends one JSON request and decodes a 2xx response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.config.Version)
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func newAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body errorResponse
	if err := json.Unmarshal(payload, &body); err == nil && body.Object == "error" {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		return apiErr
	}

	msg := strings.TrimSpace(string(payload))
	if len(msg) > 512 {
		msg = msg[:512] + "..."
	}
	apiErr.Message = msg
	return apiErr
}
