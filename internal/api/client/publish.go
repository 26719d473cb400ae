package client

import (
	"context"
	"fmt"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Publish triggers publishing a listing to every connected marketplace
// and returns the per-platform outcomes.
func (c *Client) Publish(ctx context.Context, listingID string) (*domain.PublishResult, error) {
	var result domain.PublishResult
	if err := c.post(ctx, fmt.Sprintf("/api/v1/listings/%s/publish", listingID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
