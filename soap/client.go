package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeSOAPFault
	OutcomeHTTPError
	OutcomeTimeout
	OutcomeException
	OutcomeEmpty
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeSOAPFault:
		return "soap-fault"
	case OutcomeHTTPError:
		return "http-error"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeException:
		return "exception"
	case OutcomeEmpty:
		return "empty"
	}
	return "unknown"
}

// Result is one classified transport outcome. Exactly one classification
// applies; Body is set only on success, Fault only on a SOAP fault, Err only
// on timeout or exception.
type Result struct {
	Kind       OutcomeKind
	HTTPStatus int
	Body       []byte
	Fault      *Fault
	Err        error
	Duration   time.Duration
}

// Client performs a single SOAP 1.2 round trip. A fresh instance is meant to
// serve one operation call; it holds no shared connection state.
type Client struct {
	endpoint   string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

func New(endpoint, userAgent string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		userAgent:  userAgent,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Query posts the given operation body with the given SOAPAction and
// classifies the outcome. It never returns nil.
func (c *Client) Query(ctx context.Context, content []byte, soapAction string) *Result {
	started := time.Now()
	result := c.query(ctx, content, soapAction)
	result.Duration = time.Since(started)
	return result
}

func (c *Client) query(ctx context.Context, content []byte, soapAction string) *Result {
	document, err := Wrap(content)
	if err != nil {
		return &Result{Kind: OutcomeException, Err: fmt.Errorf("building envelope: %w", err)}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(document))
	if err != nil {
		return &Result{Kind: OutcomeException, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", fmt.Sprintf("application/soap+xml; charset=utf-8; action=%q", soapAction))
	req.Header.Set("SOAPAction", soapAction)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Result{Kind: OutcomeTimeout, Err: err}
		}
		return &Result{Kind: OutcomeException, Err: fmt.Errorf("sending request: %w", err)}
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusRequestTimeout {
		return &Result{Kind: OutcomeTimeout, HTTPStatus: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Result{Kind: OutcomeHTTPError, HTTPStatus: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return &Result{Kind: OutcomeTimeout, HTTPStatus: resp.StatusCode, Err: err}
		}
		return &Result{Kind: OutcomeException, HTTPStatus: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &Result{Kind: OutcomeEmpty, HTTPStatus: resp.StatusCode}
	}

	body, fault, err := Unwrap(data)
	if err != nil {
		return &Result{Kind: OutcomeException, HTTPStatus: resp.StatusCode, Err: fmt.Errorf("decoding envelope: %w", err)}
	}
	if fault != nil {
		return &Result{Kind: OutcomeSOAPFault, HTTPStatus: resp.StatusCode, Fault: fault}
	}
	return &Result{Kind: OutcomeSuccess, HTTPStatus: resp.StatusCode, Body: body}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return os.IsTimeout(err)
}
