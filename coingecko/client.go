package coingecko

import (
	"io"
	"net"
	"net/http"
	"time"
)

// IHttpStatusHandler receives the outcome of each upstream request
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
}

// ClientOptions configures timeouts for upstream requests
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    200 * time.Second,
	}
}

// HTTPClient wraps an http.Client with timeouts, status reporting and
// translation of upstream failures into the gateway error taxonomy.
// Requests are issued exactly once; failures are never retried.
type HTTPClient struct {
	client        *http.Client
	opts          ClientOptions
	statusHandler IHttpStatusHandler
}

// NewHTTPClient creates a new upstream HTTP client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClient{
		client:        client,
		opts:          opts,
		statusHandler: handler,
	}
}

// ExecuteRequest executes a request and returns the response body along
// with the request duration. Failures come back as *Error:
// transport problems map to KindUnavailable, HTTP 429 to KindRateLimited
// and any other non-200 status to KindUpstream.
func (c *HTTPClient) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	requestStart := time.Now()

	resp, err := c.client.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		c.reportStatus("error")
		return nil, requestDuration, NewUnavailableError(err)
	}
	defer resp.Body.Close()

	body, err := c.processResponse(resp)
	if err != nil {
		if gatewayErr, ok := AsError(err); ok && gatewayErr.Kind == KindRateLimited {
			c.reportStatus("rate_limited")
		} else {
			c.reportStatus("error")
		}
		return nil, requestDuration, err
	}

	c.reportStatus("success")
	return body, requestDuration, nil
}

// processResponse reads the response body and maps non-200 statuses to errors
func (c *HTTPClient) processResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, NewRateLimitedError()
		}

		return nil, NewUpstreamError(resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewUnavailableError(err)
	}

	return body, nil
}

func (c *HTTPClient) reportStatus(status string) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(status)
	}
}
