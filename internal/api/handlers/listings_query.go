package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Katos24/crosslist-pro/internal/store"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// ListingQueryHandler serves the read side of the listings API through
// huma, which also publishes the OpenAPI document for these routes.
type ListingQueryHandler struct {
	store store.Store
}

// NewListingQueryHandler creates a new ListingQueryHandler.
func NewListingQueryHandler(s store.Store) *ListingQueryHandler {
	return &ListingQueryHandler{store: s}
}

// ListListingsInput is the input for listing queries.
type ListListingsInput struct {
	UserID string `query:"user_id" required:"true" doc:"Owner of the listings"`
	Limit  int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Page size"`
	Offset int    `query:"offset" default:"0" minimum:"0" doc:"Rows to skip"`
}

// ListListingsOutput is the output for listing queries.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for fetching one listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// GetListingOutput is the output for fetching one listing.
type GetListingOutput struct {
	Body domain.Listing
}

// List returns a page of the user's listings with the total row count.
func (h *ListingQueryHandler) List(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	listings, total, err := h.store.ListListings(ctx, input.UserID, input.Limit, input.Offset)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing listings", err)
	}

	out := &ListListingsOutput{}
	out.Body.Listings = listings
	out.Body.Total = total
	out.Body.Limit = input.Limit
	out.Body.Offset = input.Offset
	return out, nil
}

// Get returns one listing by id.
func (h *ListingQueryHandler) Get(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	l, err := h.store.GetListing(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("listing not found")
		}
		return nil, huma.Error500InternalServerError("fetching listing", err)
	}
	return &GetListingOutput{Body: *l}, nil
}

// RegisterListingRoutes registers the read-only listing operations on a
// huma API.
func RegisterListingRoutes(api huma.API, h *ListingQueryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns a page of the user's listings.",
		Tags:        []string{"Listings"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing",
		Description: "Returns a single listing with its per-platform publish state.",
		Tags:        []string{"Listings"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)
}
