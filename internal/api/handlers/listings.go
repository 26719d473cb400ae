package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/Katos24/crosslist-pro/internal/store"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// ListingsHandler handles listing mutations: create, delete, mark sold.
// Read endpoints live in the huma-registered query API.
type ListingsHandler struct {
	store store.Store
	now   func() time.Time
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s, now: time.Now}
}

type createListingRequest struct {
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Images      []string `json:"images"`
	Quantity    int      `json:"quantity"`
}

// Create inserts a new listing for a user. Both platforms start out
// unpublished.
func (h *ListingsHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must not be negative"})
	}

	l := &domain.Listing{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Condition:   domain.Condition(req.Condition),
		Images:      req.Images,
		Quantity:    req.Quantity,
	}
	if l.Currency == "" {
		l.Currency = "USD"
	}
	if l.Condition == "" {
		l.Condition = domain.ConditionUsedGood
	}
	if l.Quantity <= 0 {
		l.Quantity = 1
	}

	if err := h.store.CreateListing(c.Request().Context(), l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "creating listing"})
	}

	return c.JSON(http.StatusCreated, l)
}

// Delete removes a listing. The listing must belong to the requesting
// user.
func (h *ListingsHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	l, err := h.store.GetListing(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "fetching listing"})
	}
	if l.UserID != requestUserID(c) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "listing belongs to another user"})
	}

	if err := h.store.DeleteListing(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "deleting listing"})
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkSold records a sale. Every platform currently active flips to
// sold; platforms that never published are left alone.
func (h *ListingsHandler) MarkSold(c echo.Context) error {
	id := c.Param("id")

	l, err := h.store.GetListing(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "fetching listing"})
	}
	if l.UserID != requestUserID(c) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "listing belongs to another user"})
	}

	soldAt := h.now().UTC()
	if err := h.store.MarkListingSold(c.Request().Context(), id, soldAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "marking listing sold"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"listing_id": id,
		"sold_at":    soldAt,
	})
}

// requestUserID extracts the calling user's id from the X-User-ID
// header, falling back to the user_id query parameter.
func requestUserID(c echo.Context) string {
	if id := c.Request().Header.Get("X-User-ID"); id != "" {
		return id
	}
	return c.QueryParam("user_id")
}
