package tokens_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Katos24/crosslist-pro/internal/marketplace/ebay"
	storeMocks "github.com/Katos24/crosslist-pro/internal/store/mocks"
	"github.com/Katos24/crosslist-pro/internal/tokens"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

func TestRefresher_Sweep(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		_, _ = w.Write([]byte(`{"access_token": "fresh-token", "expires_in": 7200}`))
	}))
	defer srv.Close()

	oauth := ebay.NewOAuth("app", "cert", "RuName",
		ebay.WithTokenURL(srv.URL),
		ebay.WithOAuthHTTPClient(srv.Client()),
	)

	soon := time.Now().Add(30 * time.Minute)
	expiring := []domain.Credential{
		{UserID: "u-1", Platform: domain.PlatformEbay, AccessToken: "stale", RefreshToken: "ref-1", ExpiresAt: &soon},
		{UserID: "u-2", Platform: domain.PlatformFacebook, AccessToken: "fb", RefreshToken: "ref-2", ExpiresAt: &soon},
	}

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().ListExpiringCredentials(mock.Anything, time.Hour).Return(expiring, nil)

	var stored *domain.Credential
	mockStore.EXPECT().UpsertCredential(mock.Anything, mock.Anything).
		Run(func(_ context.Context, c *domain.Credential) { stored = c }).
		Return(nil).
		Once() // the facebook credential is skipped

	r, err := tokens.NewRefresher(mockStore, oauth, time.Minute, time.Hour, slog.Default())
	require.NoError(t, err)

	require.NoError(t, r.Sweep(context.Background()))

	require.NotNil(t, stored)
	assert.Equal(t, "u-1", stored.UserID)
	assert.Equal(t, "fresh-token", stored.AccessToken)
	assert.Equal(t, "ref-1", stored.RefreshToken, "eBay keeps the original refresh token")
}

func TestRefresher_Sweep_RefreshFailureDoesNotAbort(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer srv.Close()

	oauth := ebay.NewOAuth("app", "cert", "RuName",
		ebay.WithTokenURL(srv.URL),
		ebay.WithOAuthHTTPClient(srv.Client()),
	)

	soon := time.Now().Add(30 * time.Minute)
	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().ListExpiringCredentials(mock.Anything, time.Hour).Return([]domain.Credential{
		{UserID: "u-1", Platform: domain.PlatformEbay, RefreshToken: "dead", ExpiresAt: &soon},
	}, nil)

	r, err := tokens.NewRefresher(mockStore, oauth, time.Minute, time.Hour, slog.Default())
	require.NoError(t, err)

	// The sweep itself succeeds; the failed credential is only logged.
	assert.NoError(t, r.Sweep(context.Background()))
}
