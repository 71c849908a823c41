package topgg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driven"
	"github.com/custodia-labs/topgg-sampler/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.DirectoryClient = (*Client)(nil)

// maxErrorBody caps how much of a non-200 body is kept for the error detail.
const maxErrorBody = 4 << 10

// Config holds configuration for the top.gg client.
type Config struct {
	// Endpoint is the GraphQL URL (default: https://api.top.gg/graphql).
	Endpoint string

	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	// When set, Timeout is ignored.
	HTTPClient *http.Client
}

// Client fetches ranked listings from top.gg.
type Client struct {
	client   *http.Client
	endpoint string
}

// NewClient creates a new top.gg client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = domain.DefaultEndpoint
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// No cookie jar: requests never carry credentials.
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		client:   httpClient,
		endpoint: cfg.Endpoint,
	}
}

// Endpoint returns the GraphQL URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchCandidatePool requests the top size servers and returns them in rank order.
func (c *Client) FetchCandidatePool(ctx context.Context, size int) (domain.CandidatePool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: pool size must be positive, got %d", domain.ErrInvalidInput, size)
	}

	jsonBody, err := json.Marshal(newRequest(size))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("POST %s (limit=%d)", c.endpoint, size)
	done := logger.Timed("candidate pool request")
	resp, err := c.client.Do(req)
	done()
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchErrorTransport, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("Response status: %s", resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{
			Kind:       domain.FetchErrorStatus,
			StatusCode: resp.StatusCode,
			Detail:     readErrorBody(resp.Body),
		}
	}

	var gqlResp graphQLResponse
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&gqlResp); err != nil {
		return nil, &domain.FetchError{
			Kind:       domain.FetchErrorDecode,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	nodes, ok := gqlResp.nodes()
	if !ok {
		return nil, &domain.FetchError{
			Kind:   domain.FetchErrorMissingPath,
			Detail: gqlResp.errorMessage(),
		}
	}

	logger.Debug("Decoded %d entity nodes", len(nodes))
	return nodes, nil
}

// readErrorBody returns a trimmed prefix of body for error messages.
func readErrorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return "failed to read response"
	}
	return strings.TrimSpace(string(data))
}
