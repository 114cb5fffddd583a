// Package history fetches the remote activity log exposed at /api/registros.
package history

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/nhath/registros/internal/logging"
)

const (
	// endpointPath is the history collection relative to the API base URL
	endpointPath = "/api/registros"

	// maxBodySize caps the decoded response body
	maxBodySize = 4 << 20
)

// TokenSource supplies the bearer token attached to each request
type TokenSource interface {
	Token() (string, error)
}

// Client loads the most recent history records
type Client struct {
	baseURL    string
	limit      int
	tokens     TokenSource
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLimit sets the number of records requested
func WithLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = &http.Client{Timeout: d} }
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      100,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Items []Record `json:"items"`
}

// Fetch requests the latest records. The returned slice is never nil on success.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	var token string
	if c.tokens != nil {
		// A missing or unreadable token still sends the request; the server decides
		t, err := c.tokens.Token()
		if err != nil {
			logging.From(ctx).Warn("token unavailable", "error", err)
		}
		token = t
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", endpoint))
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger := logging.From(ctx).With("request_id", requestID, "url", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("history request failed", "error", err)
		return nil, goerr.Wrap(err, "history request failed", goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	logger.Debug("history response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		logger.Error("history request rejected", "status", resp.StatusCode)
		return nil, goerr.Wrap(&StatusError{Code: resp.StatusCode}, "history request rejected",
			goerr.V("url", endpoint), goerr.V("status", resp.StatusCode))
	}

	var body listResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		logger.Error("history response undecodable", "error", err)
		return nil, goerr.Wrap(err, "failed to decode history response", goerr.V("url", endpoint))
	}

	if body.Items == nil {
		body.Items = []Record{}
	}
	logger.Info("history loaded", "count", len(body.Items))
	return body.Items, nil
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.baseURL + endpointPath)
	if err != nil {
		return "", goerr.Wrap(err, "invalid API URL", goerr.V("base_url", c.baseURL))
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
