package ebay

// Wire types for the Sell Inventory API.

type inventoryItem struct {
	Product      product      `json:"product"`
	Condition    string       `json:"condition"`
	Availability availability `json:"availability"`
}

type product struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ImageURLs   []string            `json:"imageUrls,omitempty"`
	Aspects     map[string][]string `json:"aspects,omitempty"`
}

type availability struct {
	ShipToLocationAvailability shipToLocation `json:"shipToLocationAvailability"`
}

type shipToLocation struct {
	Quantity int `json:"quantity"`
}

type offerRequest struct {
	SKU                 string          `json:"sku"`
	MarketplaceID       string          `json:"marketplaceId"`
	Format              string          `json:"format"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CategoryID          string          `json:"categoryId"`
	ListingDescription  string          `json:"listingDescription,omitempty"`
	ListingPolicies     listingPolicies `json:"listingPolicies"`
	PricingSummary      pricingSummary  `json:"pricingSummary"`
	MerchantLocationKey string          `json:"merchantLocationKey"`
}

type listingPolicies struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
	PaymentPolicyID     string `json:"paymentPolicyId"`
	ReturnPolicyID      string `json:"returnPolicyId"`
}

type pricingSummary struct {
	Price money `json:"price"`
}

type money struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type offerResponse struct {
	OfferID string `json:"offerId"`
}

type publishResponse struct {
	ListingID string `json:"listingId"`
}

type apiErrorResponse struct {
	Errors []struct {
		ErrorID int    `json:"errorId"`
		Message string `json:"message"`
	} `json:"errors"`
}
