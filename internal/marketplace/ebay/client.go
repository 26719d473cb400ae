// Package ebay implements the eBay marketplace adapter on the Sell
// Inventory API, plus the user OAuth flow that mints the tokens the
// adapter publishes with.
package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Katos24/crosslist-pro/internal/marketplace"
	"github.com/Katos24/crosslist-pro/internal/metrics"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

const (
	defaultAPIBaseURL  = "https://api.ebay.com"
	defaultMarketplace = "EBAY_US"
	itemURLFormat      = "https://www.ebay.com/itm/%s"
)

// Policies holds the seller's pre-created eBay business policy ids,
// referenced by every offer.
type Policies struct {
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
	MerchantLocationKey string
}

// SellClient implements marketplace.Adapter using the eBay Sell
// Inventory API. Publishing is a fixed three-step protocol: register an
// inventory item under a fresh SKU, create a priced offer for that SKU,
// then publish the offer. A step failing aborts the sequence with no
// compensating rollback; the orphaned SKU is surfaced in the error.
type SellClient struct {
	baseURL     string
	marketplace string
	policies    Policies
	client      *http.Client
	rateLimiter *RateLimiter
	newSKU      func() string
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithBaseURL overrides the default Sell API host (e.g. the sandbox).
func WithBaseURL(u string) SellOption {
	return func(c *SellClient) {
		c.baseURL = u
	}
}

// WithMarketplace overrides the default marketplace id.
func WithMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and
// daily API call limits. When set, every API call goes through Wait()
// first.
func WithRateLimiter(r *RateLimiter) SellOption {
	return func(c *SellClient) {
		c.rateLimiter = r
	}
}

// WithSKUFunc overrides SKU generation for testing.
func WithSKUFunc(f func() string) SellOption {
	return func(c *SellClient) {
		c.newSKU = f
	}
}

// NewSellClient creates a new eBay Sell Inventory API client.
func NewSellClient(policies Policies, opts ...SellOption) *SellClient {
	c := &SellClient{
		baseURL:     defaultAPIBaseURL,
		marketplace: defaultMarketplace,
		policies:    policies,
		client:      &http.Client{Timeout: 30 * time.Second},
		newSKU:      func() string { return "CLX-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Platform identifies this adapter.
func (c *SellClient) Platform() domain.Platform {
	return domain.PlatformEbay
}

// Publish runs the three-step Sell Inventory sequence and returns the
// live listing's id and URL.
func (c *SellClient) Publish(
	ctx context.Context,
	snap domain.Snapshot,
	cred *domain.Credential,
) (*marketplace.Placement, error) {
	if cred == nil || cred.AccessToken == "" {
		return nil, &marketplace.AdapterError{
			Platform: domain.PlatformEbay,
			Message:  "eBay account not connected",
		}
	}

	sku := c.newSKU()

	// Step 1: register the inventory item under the fresh SKU.
	itemPath := "/sell/inventory/v1/inventory_item/" + sku
	if _, err := c.call(ctx, http.MethodPut, itemPath, cred.AccessToken, newInventoryItem(snap)); err != nil {
		return nil, &marketplace.AdapterError{
			Platform: domain.PlatformEbay,
			Message:  fmt.Sprintf("creating inventory item: %s", apiMessage(err)),
		}
	}

	// Step 2: create a priced offer for the SKU. From here on a failure
	// leaves the unpublished inventory item behind.
	offerBody, err := c.call(ctx, http.MethodPost, "/sell/inventory/v1/offer", cred.AccessToken, c.newOffer(sku, snap))
	if err != nil {
		return nil, &marketplace.AdapterError{
			Platform:  domain.PlatformEbay,
			Message:   fmt.Sprintf("creating offer: %s", apiMessage(err)),
			OrphanSKU: sku,
		}
	}

	var offer offerResponse
	if err := json.Unmarshal(offerBody, &offer); err != nil || offer.OfferID == "" {
		return nil, &marketplace.AdapterError{
			Platform:  domain.PlatformEbay,
			Message:   "creating offer: malformed response",
			OrphanSKU: sku,
		}
	}

	// Step 3: publish the offer to obtain the public listing id.
	publishPath := "/sell/inventory/v1/offer/" + offer.OfferID + "/publish"
	publishBody, err := c.call(ctx, http.MethodPost, publishPath, cred.AccessToken, nil)
	if err != nil {
		return nil, &marketplace.AdapterError{
			Platform:  domain.PlatformEbay,
			Message:   fmt.Sprintf("publishing offer: %s", apiMessage(err)),
			OrphanSKU: sku,
		}
	}

	var published publishResponse
	if err := json.Unmarshal(publishBody, &published); err != nil || published.ListingID == "" {
		return nil, &marketplace.AdapterError{
			Platform:  domain.PlatformEbay,
			Message:   "publishing offer: malformed response",
			OrphanSKU: sku,
		}
	}

	return &marketplace.Placement{
		ExternalID: published.ListingID,
		URL:        fmt.Sprintf(itemURLFormat, published.ListingID),
	}, nil
}

// call executes one Sell API request and returns the response body.
func (c *SellClient) call(
	ctx context.Context,
	method, path, token string,
	payload any,
) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayAPICallsTotal.Inc()
		metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Language", "en-US")
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{status: resp.StatusCode, body: respBody}
	}

	return respBody, nil
}

// newInventoryItem builds the step-1 payload from a listing snapshot.
// The snapshot already enforces the 80-character title and 12-image cap.
func newInventoryItem(snap domain.Snapshot) inventoryItem {
	return inventoryItem{
		Product: product{
			Title:       snap.Title,
			Description: snap.Description,
			ImageURLs:   snap.Images,
		},
		Condition: ConditionID(snap.Condition),
		Availability: availability{
			ShipToLocationAvailability: shipToLocation{Quantity: snap.Quantity},
		},
	}
}

// newOffer builds the step-2 payload referencing the registered SKU.
func (c *SellClient) newOffer(sku string, snap domain.Snapshot) offerRequest {
	return offerRequest{
		SKU:                sku,
		MarketplaceID:      c.marketplace,
		Format:             "FIXED_PRICE",
		AvailableQuantity:  snap.Quantity,
		CategoryID:         CategoryID(snap.Category),
		ListingDescription: snap.Description,
		ListingPolicies: listingPolicies{
			FulfillmentPolicyID: c.policies.FulfillmentPolicyID,
			PaymentPolicyID:     c.policies.PaymentPolicyID,
			ReturnPolicyID:      c.policies.ReturnPolicyID,
		},
		PricingSummary: pricingSummary{
			Price: money{
				Value:    fmt.Sprintf("%.2f", snap.Price),
				Currency: snap.Currency,
			},
		},
		MerchantLocationKey: c.policies.MerchantLocationKey,
	}
}

// statusError is a non-2xx Sell API response.
type statusError struct {
	status int
	body   []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("eBay API error (status %d): %s", e.status, apiErrorMessage(e.body))
}

// apiMessage extracts a human-readable message from a call error.
func apiMessage(err error) string {
	var se *statusError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}

// apiErrorMessage pulls the first error message out of an eBay error
// envelope, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var envelope apiErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return envelope.Errors[0].Message
	}
	return string(body)
}
