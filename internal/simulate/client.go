package simulate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
)

// Outcome classifies one roster submission response.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeAccepted
	OutcomeDuplicate
	OutcomeRejected
)

// Client talks to the proctord HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// getJSON performs a GET and decodes a 200 response into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	var status map[string]string
	return c.getJSON(ctx, "/healthz", &status)
}

// Submit posts one submission to /roster.
func (c *Client) Submit(ctx context.Context, sub model.Submission) (Outcome, error) { //nolint:gocritic // hugeParam: serialized immediately
	resp, err := c.do(ctx, http.MethodPost, "/roster", sub)
	if err != nil {
		return OutcomeFailed, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusAccepted:
		return OutcomeAccepted, nil
	case http.StatusOK:
		return OutcomeDuplicate, nil
	case http.StatusTooManyRequests:
		return OutcomeRejected, nil
	default:
		return OutcomeFailed, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
}

// Stats fetches GET /stats.
func (c *Client) Stats(ctx context.Context) (types.Stats, error) {
	var st types.Stats
	err := c.getJSON(ctx, "/stats", &st)
	return st, err
}

// Leaderboard fetches the top n entries of a board.
func (c *Client) Leaderboard(ctx context.Context, board types.Board, n int) ([]types.Entry, error) {
	q := url.Values{"test": {string(board)}, "limit": {strconv.Itoa(n)}}
	var entries []types.Entry
	err := c.getJSON(ctx, "/leaderboard?"+q.Encode(), &entries)
	return entries, err
}

// Rank fetches one Marine's entry on a board.
func (c *Client) Rank(ctx context.Context, board types.Board, marineID string) (types.Entry, error) {
	var e types.Entry
	err := c.getJSON(ctx, "/rank/"+url.PathEscape(marineID)+"?test="+string(board), &e)
	return e, err
}
