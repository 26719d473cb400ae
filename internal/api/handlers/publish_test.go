package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Katos24/crosslist-pro/internal/api/handlers"
	"github.com/Katos24/crosslist-pro/internal/publish"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

type stubPublisher struct {
	result *domain.PublishResult
	err    error

	gotUserID    string
	gotListingID string
}

func (s *stubPublisher) Publish(_ context.Context, userID, listingID string) (*domain.PublishResult, error) {
	s.gotUserID = userID
	s.gotListingID = listingID
	return s.result, s.err
}

func TestPublishHandler_Publish(t *testing.T) {
	partial := &domain.PublishResult{
		ListingID: "listing-1",
		Platforms: map[domain.Platform]domain.PlatformResult{
			domain.PlatformEbay: {Success: true, ExternalID: "110554231096"},
			domain.PlatformFacebook: {
				Success: false,
				Error:   "facebook: platform requires an interactive browser session, unsupported in this environment",
			},
		},
	}

	tests := []struct {
		name       string
		publisher  *stubPublisher
		wantStatus int
		wantBody   string
	}{
		{
			name:       "partial failure still returns 200",
			publisher:  &stubPublisher{result: partial},
			wantStatus: http.StatusOK,
			wantBody:   "interactive browser session",
		},
		{
			name:       "missing listing",
			publisher:  &stubPublisher{err: publish.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantBody:   "listing not found",
		},
		{
			name:       "someone else's listing",
			publisher:  &stubPublisher{err: publish.ErrNotOwner},
			wantStatus: http.StatusForbidden,
			wantBody:   "belongs to another user",
		},
		{
			name:       "no connected accounts",
			publisher:  &stubPublisher{err: publish.ErrNoCredentials},
			wantStatus: http.StatusPreconditionFailed,
			wantBody:   "no marketplace accounts connected",
		},
		{
			name:       "unexpected error",
			publisher:  &stubPublisher{err: errors.New("pool closed")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "publishing listing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handlers.NewPublishHandler(tt.publisher)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/listing-1/publish", http.NoBody)
			req.Header.Set("X-User-ID", "user-1")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("listing-1")

			require.NoError(t, h.Publish(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, "user-1", tt.publisher.gotUserID)
			assert.Equal(t, "listing-1", tt.publisher.gotListingID)
		})
	}
}

func TestPublishHandler_RequiresUser(t *testing.T) {
	h := handlers.NewPublishHandler(&stubPublisher{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/listing-1/publish", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("listing-1")

	require.NoError(t, h.Publish(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_id is required")
}
