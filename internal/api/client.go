package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
)

const (
	// DefaultTimeout is the per-request timeout of the HTTP client
	DefaultTimeout = 10 * time.Second

	// UserAgent is the User-Agent header sent with requests
	UserAgent = "Snipper"

	// TokenHeader carries the private token on every request
	TokenHeader = "PRIVATE-TOKEN"
)

// ErrInvalidHeader is returned by NewClient when the token cannot be sent as a header value
var ErrInvalidHeader = errors.New("invalid header value")

// Client talks to the snippets endpoint of the service
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	timeout    time.Duration
	now        func() time.Time
	debug      io.Writer
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*Client)

// NewClient creates a client for the snippets endpoint at url, authenticated with token.
// No request is made.
func NewClient(url, token string, opts ...ClientOption) (*Client, error) {
	if !httpguts.ValidHeaderFieldValue(token) {
		return nil, fmt.Errorf("%w: %s contains characters not allowed in a header", ErrInvalidHeader, TokenHeader)
	}

	c := &Client{
		url:   url,
		token: token,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	// the timeout goes on a copy so a caller's client is never modified
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if c.httpClient != nil {
		shared := *c.httpClient
		httpClient = &shared
	}
	if c.timeout > 0 {
		httpClient.Timeout = c.timeout
	}
	c.httpClient = httpClient

	return c, nil
}

// WithHTTPClient sets a custom HTTP client. The client is copied, not modified.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithClock sets the time source used for generated snippet content
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// WithDebug writes a trace of every request and response status to w
func WithDebug(w io.Writer) ClientOption {
	return func(c *Client) {
		c.debug = w
	}
}

// URL returns the snippets endpoint the client was built for
func (c *Client) URL() string {
	return c.url
}

// APIError is returned when the service answers with a non-success status
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("HTTP %s error %d: %s", e.Method, e.StatusCode, msg)
}

// do sends body as JSON (when non-nil) and returns the raw response body of a 2xx answer
func (c *Client) do(ctx context.Context, method, reqURL string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	httpReq.Header.Set(TokenHeader, c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)

	c.traceRequest(httpReq)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if c.debug != nil {
		fmt.Fprintf(c.debug, "< %s\n", httpResp.Status)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &APIError{
			Method:     method,
			URL:        reqURL,
			StatusCode: httpResp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

func (c *Client) traceRequest(req *http.Request) {
	if c.debug == nil {
		return
	}

	fmt.Fprintf(c.debug, "> %s %s\n", req.Method, req.URL)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := req.Header.Get(name)
		if strings.EqualFold(name, TokenHeader) {
			value = "[redacted]"
		}
		fmt.Fprintf(c.debug, "> %s: %s\n", name, value)
	}
}

// parseResponse parses a JSON response body into the given type
func parseResponse[T any](body []byte) (T, error) {
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("could not parse response: %w", err)
	}
	return result, nil
}
