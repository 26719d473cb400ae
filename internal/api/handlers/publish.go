package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katos24/crosslist-pro/internal/publish"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Publisher runs the cross-platform publish pipeline for one listing.
type Publisher interface {
	Publish(ctx context.Context, userID, listingID string) (*domain.PublishResult, error)
}

// PublishHandler exposes the publish pipeline over HTTP.
type PublishHandler struct {
	publisher Publisher
}

// NewPublishHandler creates a new PublishHandler.
func NewPublishHandler(p Publisher) *PublishHandler {
	return &PublishHandler{publisher: p}
}

// Publish triggers publishing a listing to every connected marketplace.
// The response is 200 whenever the pipeline ran, even if individual
// platforms failed; per-platform outcomes are in the body.
func (h *PublishHandler) Publish(c echo.Context) error {
	listingID := c.Param("id")
	userID := requestUserID(c)
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	result, err := h.publisher.Publish(c.Request().Context(), userID, listingID)
	if err != nil {
		switch {
		case errors.Is(err, publish.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
		case errors.Is(err, publish.ErrNotOwner):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "listing belongs to another user"})
		case errors.Is(err, publish.ErrNoCredentials):
			return c.JSON(http.StatusPreconditionFailed, map[string]string{"error": "no marketplace accounts connected"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "publishing listing"})
		}
	}

	return c.JSON(http.StatusOK, result)
}
