package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/Katos24/crosslist-pro/internal/marketplace/ebay"
	"github.com/Katos24/crosslist-pro/internal/store"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// EbayAuthHandler drives the eBay account connection flow: redirect to
// the consent page, exchange the callback code for tokens, and report
// connection status.
type EbayAuthHandler struct {
	store        store.Store
	oauth        *ebay.OAuth
	limiter      *ebay.RateLimiter
	dashboardURL string
	log          *slog.Logger
}

// NewEbayAuthHandler creates a new EbayAuthHandler. dashboardURL is
// where the browser lands after the callback; limiter may be nil when
// quota reporting is not wanted.
func NewEbayAuthHandler(
	s store.Store,
	oauth *ebay.OAuth,
	limiter *ebay.RateLimiter,
	dashboardURL string,
	log *slog.Logger,
) *EbayAuthHandler {
	return &EbayAuthHandler{
		store:        s,
		oauth:        oauth,
		limiter:      limiter,
		dashboardURL: dashboardURL,
		log:          log,
	}
}

// Connect redirects the user to the eBay consent page. The user id
// rides along as the OAuth state so the callback knows whose tokens to
// store.
func (h *EbayAuthHandler) Connect(c echo.Context) error {
	userID := requestUserID(c)
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}
	return c.Redirect(http.StatusFound, h.oauth.AuthURL(userID))
}

// Callback receives the authorization code from eBay, mints tokens, and
// stores them. The browser always ends up back at the dashboard, with
// ?ebay=connected or ?ebay=error telling it how things went.
func (h *EbayAuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	userID := c.QueryParam("state")
	if code == "" || userID == "" {
		return c.Redirect(http.StatusFound, h.dashboardURL+"?ebay=error")
	}

	token, err := h.oauth.Exchange(c.Request().Context(), code)
	if err != nil {
		h.log.Error("ebay code exchange failed", "error", err)
		return c.Redirect(http.StatusFound, h.dashboardURL+"?ebay=error")
	}

	cred := &domain.Credential{
		UserID:       userID,
		Platform:     domain.PlatformEbay,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    &token.ExpiresAt,
	}
	if err := h.store.UpsertCredential(c.Request().Context(), cred); err != nil {
		h.log.Error("storing ebay credential failed", "error", err, "user_id", userID)
		return c.Redirect(http.StatusFound, h.dashboardURL+"?ebay=error")
	}

	h.log.Info("ebay account connected", "user_id", userID)
	return c.Redirect(http.StatusFound, h.dashboardURL+"?ebay=connected")
}

type ebayStatusResponse struct {
	Connected bool            `json:"connected"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Quota     *ebayQuotaUsage `json:"quota,omitempty"`
}

type ebayQuotaUsage struct {
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Status reports whether the user has an eBay account connected, plus
// the remaining daily API quota when a limiter is configured.
func (h *EbayAuthHandler) Status(c echo.Context) error {
	userID := requestUserID(c)
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	resp := ebayStatusResponse{}
	cred, err := h.store.GetCredential(c.Request().Context(), userID, domain.PlatformEbay)
	switch {
	case err == nil:
		resp.Connected = true
		resp.ExpiresAt = cred.ExpiresAt
	case errors.Is(err, pgx.ErrNoRows):
		// not connected
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "fetching credential"})
	}

	if h.limiter != nil {
		resp.Quota = &ebayQuotaUsage{
			Remaining: h.limiter.Remaining(),
			ResetAt:   h.limiter.ResetAt(),
		}
	}

	return c.JSON(http.StatusOK, resp)
}
