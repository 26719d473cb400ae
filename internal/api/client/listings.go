package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	UserID string
	Limit  int
	Offset int
}

// ListListings returns a page of the user's listings.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.UserID != "" {
		q.Set("user_id", params.UserID)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%s", id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateListing creates a listing and returns it with server-assigned fields.
func (c *Client) CreateListing(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	var created domain.Listing
	if err := c.post(ctx, "/api/v1/listings", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteListing removes a listing by ID.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/listings/%s", id), nil)
}

// MarkSold records that a listing sold.
func (c *Client) MarkSold(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/listings/%s/sold", id), nil, nil)
}
