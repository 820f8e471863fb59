// Package httpclient is the thin HTTP layer probe closures use to reach the
// system under test. It wraps net/http with an option-configured client and
// measures wall-clock response time for every call.
package httpclient

import (
	"context"
	"net/http"
	"time"
)

// Client is an HTTP client with a fixed base URL and default headers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// Option configures a Client.
type Option func(*Client)

// NewClient creates a new HTTP client with the given options.
func NewClient(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL requests are resolved against.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// BaseURL returns the client's base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes the request and returns the response with its measured
// response time. The response body is fully read and buffered so callers
// can inspect it repeatedly without worrying about the connection.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.Build(ctx, c.baseURL)
	if err != nil {
		return nil, err
	}

	for key, value := range c.headers {
		if httpReq.Header.Get(key) == "" {
			httpReq.Header.Set(key, value)
		}
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	resp, err := newResponse(httpResp)
	if err != nil {
		return nil, err
	}
	resp.ResponseTime = time.Since(start)

	return resp, nil
}
