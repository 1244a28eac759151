package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"charity/internal/core/port"
)

// Ping lists banks as a connectivity probe and returns how many were
// listed. The endpoint needs no credentials.
func (c *Client) Ping(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	var resp apiResponse[[]json.RawMessage]
	status, err := c.do(ctx, http.MethodGet, "/bank", false, nil, &resp)
	if err != nil {
		return 0, transportError(err, "Paystack connection timeout", "Paystack connection failed")
	}
	if status != http.StatusOK {
		return 0, &port.GatewayError{
			Message: fmt.Sprintf("Paystack connection failed: HTTP %d", status),
			Err:     fmt.Errorf("bank list: unexpected status %d", status),
		}
	}
	if !resp.Status {
		return 0, &port.GatewayError{Message: "Paystack API returned error", Err: fmt.Errorf("bank list: %s", resp.Message)}
	}
	return len(resp.Data), nil
}
