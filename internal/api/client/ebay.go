package client

import (
	"context"
	"time"
)

// EbayStatus reports whether the user's eBay account is connected, and
// the remaining daily API quota when the server tracks one.
type EbayStatus struct {
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Quota     *EbayQuota `json:"quota,omitempty"`
}

// EbayQuota is the remaining daily Sell API call budget.
type EbayQuota struct {
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// GetEbayStatus returns the eBay connection status for the client's user.
func (c *Client) GetEbayStatus(ctx context.Context) (*EbayStatus, error) {
	var status EbayStatus
	if err := c.get(ctx, "/api/v1/ebay/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
