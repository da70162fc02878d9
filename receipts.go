package pushover

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Receipt describes the delivery state of an emergency message.
type Receipt struct {
	// Acknowledged reports whether any user acknowledged the notification.
	Acknowledged bool

	// AcknowledgedAt is when the notification was first acknowledged.
	AcknowledgedAt time.Time

	// AcknowledgedBy is the user key of the first user to acknowledge.
	AcknowledgedBy string

	// AcknowledgedByDevice is the device name the acknowledgement came from.
	AcknowledgedByDevice string

	// LastDeliveredAt is when the notification was last retried.
	LastDeliveredAt time.Time

	// Expired reports whether the retry period has elapsed.
	Expired bool

	// ExpiresAt is when retrying stops.
	ExpiresAt time.Time

	// CalledBack reports whether the callback URL was invoked.
	CalledBack bool

	// CalledBackAt is when the callback URL was invoked.
	CalledBackAt time.Time
}

// receiptWire is the receipt as the API encodes it, with 1/0 flags and Unix
// timestamps.
type receiptWire struct {
	Acknowledged         NumericBool `json:"acknowledged"`
	AcknowledgedAt       int64       `json:"acknowledged_at"`
	AcknowledgedBy       string      `json:"acknowledged_by"`
	AcknowledgedByDevice string      `json:"acknowledged_by_device"`
	LastDeliveredAt      int64       `json:"last_delivered_at"`
	Expired              NumericBool `json:"expired"`
	ExpiresAt            int64       `json:"expires_at"`
	CalledBack           NumericBool `json:"called_back"`
	CalledBackAt         int64       `json:"called_back_at"`
}

func (r *Receipt) UnmarshalJSON(data []byte) error {
	var wire receiptWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = Receipt{
		Acknowledged:         bool(wire.Acknowledged),
		AcknowledgedAt:       unixTime(wire.AcknowledgedAt),
		AcknowledgedBy:       wire.AcknowledgedBy,
		AcknowledgedByDevice: wire.AcknowledgedByDevice,
		LastDeliveredAt:      unixTime(wire.LastDeliveredAt),
		Expired:              bool(wire.Expired),
		ExpiresAt:            unixTime(wire.ExpiresAt),
		CalledBack:           bool(wire.CalledBack),
		CalledBackAt:         unixTime(wire.CalledBackAt),
	}
	return nil
}

// unixTime converts a Unix timestamp to a time.Time, keeping the zero value
// for timestamps the API reports as 0.
func unixTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// GetReceipt returns the delivery state for an emergency message receipt, as
// returned by SendMessage for emergency priority.
func (c *Client) GetReceipt(ctx context.Context, token, receipt string) (*Receipt, error) {
	if receipt == "" {
		return nil, fmt.Errorf("receipt id is required")
	}

	body, err := c.getJSONBody(ctx, fmt.Sprintf("receipts/%s.json?token=%s", url.PathEscape(receipt), url.QueryEscape(token)))
	if err != nil {
		return nil, err
	}

	var result Receipt
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding receipt: %w", err)
	}
	return &result, nil
}

// CancelReceipt stops the retries for an emergency message before it is
// acknowledged or expires.
func (c *Client) CancelReceipt(ctx context.Context, token, receipt string) error {
	if receipt == "" {
		return fmt.Errorf("receipt id is required")
	}

	payload := map[string]string{"token": token}
	_, _, err := c.postJSON(ctx, fmt.Sprintf("receipts/%s/cancel.json", url.PathEscape(receipt)), payload)
	return err
}
