// Package paystack is the outbound adapter for the Paystack payment API.
//
// The client talks plain JSON over HTTPS with bearer authorization. Every
// call is synchronous, bounded by the configured timeout and never retried;
// failures come back as *port.GatewayError carrying a donor-facing message.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"charity/internal/config/configs"
	"charity/internal/core/port"
)

// SignatureHeader carries the webhook body signature.
const SignatureHeader = "X-Paystack-Signature"

var errInvalidResponse = errors.New("invalid response body")

// Client implements port.PaymentGateway.
type Client struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	prefix        string
	probeTimeout  time.Duration

	http   *http.Client
	logger *slog.Logger
	now    func() time.Time
}

var _ port.PaymentGateway = (*Client)(nil)

// NewClient returns a client for the API at cfg.BaseURL.
func NewClient(cfg configs.Paystack, logger *slog.Logger) *Client {
	probe := cfg.ProbeTimeout
	if probe <= 0 {
		probe = 10 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:     cfg.SecretKey,
		webhookSecret: cfg.WebhookSecret,
		prefix:        cfg.ReferencePrefix,
		probeTimeout:  probe,
		http:          &http.Client{Timeout: cfg.Timeout},
		logger:        logger.With(slog.String("component", "paystack")),
		now:           time.Now,
	}
}

// apiResponse is the envelope every Paystack endpoint answers with.
type apiResponse[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// do sends in as JSON and decodes a 200 response into out. For any other
// status the body is discarded and only the status code is returned.
func (c *Client) do(ctx context.Context, method, path string, auth bool, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.secretKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 64<<10))
		return res.StatusCode, nil
	}
	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, fmt.Errorf("%w: %v", errInvalidResponse, err)
	}
	return res.StatusCode, nil
}

// transportError maps a failed round trip to a donor-facing error.
func transportError(err error, timeoutMsg, unavailableMsg string) *port.GatewayError {
	switch {
	case errors.Is(err, errInvalidResponse):
		return &port.GatewayError{Message: "Payment service returned an invalid response", Err: err}
	case isTimeout(err):
		return &port.GatewayError{Message: timeoutMsg, Err: err}
	default:
		return &port.GatewayError{Message: unavailableMsg, Err: err}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
