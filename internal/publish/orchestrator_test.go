package publish_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Katos24/crosslist-pro/internal/marketplace"
	"github.com/Katos24/crosslist-pro/internal/publish"
	"github.com/Katos24/crosslist-pro/internal/store"
	storeMocks "github.com/Katos24/crosslist-pro/internal/store/mocks"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// fakeAdapter is a scripted marketplace.Adapter.
type fakeAdapter struct {
	platform  domain.Platform
	placement *marketplace.Placement
	err       error
	onPublish func()
	calls     int
}

func (f *fakeAdapter) Platform() domain.Platform { return f.platform }

func (f *fakeAdapter) Publish(
	_ context.Context,
	_ domain.Snapshot,
	_ *domain.Credential,
) (*marketplace.Placement, error) {
	f.calls++
	if f.onPublish != nil {
		f.onPublish()
	}
	return f.placement, f.err
}

func unpublishedListing() *domain.Listing {
	return &domain.Listing{
		ID:        "l-1",
		UserID:    "u-1",
		Title:     "Test Item",
		Price:     25.00,
		Currency:  "USD",
		Category:  "99",
		Condition: domain.ConditionUsedGood,
		Images:    []string{"https://x/1.jpg"},
		Quantity:  1,
		Ebay:      domain.PlatformState{Status: domain.StatusUnpublished},
		Facebook:  domain.PlatformState{Status: domain.StatusUnpublished},
	}
}

func bothCredentials() []domain.Credential {
	return []domain.Credential{
		{UserID: "u-1", Platform: domain.PlatformEbay, AccessToken: "tok-ebay"},
		{UserID: "u-1", Platform: domain.PlatformFacebook, AccessToken: "tok-fb"},
	}
}

func TestOrchestrator_Publish_ListingNotFound(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "missing").Return(nil, pgx.ErrNoRows)

	o := publish.New(mockStore, nil)

	_, err := o.Publish(context.Background(), "u-1", "missing")
	assert.ErrorIs(t, err, publish.ErrNotFound)
}

func TestOrchestrator_Publish_NotOwner(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)

	o := publish.New(mockStore, nil)

	_, err := o.Publish(context.Background(), "intruder", "l-1")
	assert.ErrorIs(t, err, publish.ErrNotOwner)
}

func TestOrchestrator_Publish_NoCredentials(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").Return(nil, nil)

	ebay := &fakeAdapter{platform: domain.PlatformEbay}
	o := publish.New(mockStore, []marketplace.Adapter{ebay})

	_, err := o.Publish(context.Background(), "u-1", "l-1")
	assert.ErrorIs(t, err, publish.ErrNoCredentials)
	assert.Zero(t, ebay.calls, "no remote call without credentials")
}

func TestOrchestrator_Publish_PartialFailure(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").Return(bothCredentials(), nil)
	mockStore.EXPECT().
		MarkPlatformActive(mock.Anything, "l-1", domain.PlatformEbay,
			"110555123456", "https://www.ebay.com/itm/110555123456").
		Return(nil)
	mockStore.EXPECT().
		MarkPlatformError(mock.Anything, "l-1", domain.PlatformFacebook, mock.Anything).
		Return(nil)

	ebay := &fakeAdapter{
		platform: domain.PlatformEbay,
		placement: &marketplace.Placement{
			ExternalID: "110555123456",
			URL:        "https://www.ebay.com/itm/110555123456",
		},
	}
	facebook := &fakeAdapter{
		platform: domain.PlatformFacebook,
		err: &marketplace.AdapterError{
			Platform: domain.PlatformFacebook,
			Message:  "platform requires an interactive browser session, unsupported in this environment",
		},
	}

	o := publish.New(mockStore, []marketplace.Adapter{ebay, facebook})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err, "partial platform failure never fails the call")

	assert.Equal(t, "l-1", result.ListingID)
	require.Len(t, result.Platforms, 2)

	ebayResult := result.Platforms[domain.PlatformEbay]
	assert.True(t, ebayResult.Success)
	assert.Equal(t, "110555123456", ebayResult.ExternalID)

	fbResult := result.Platforms[domain.PlatformFacebook]
	assert.False(t, fbResult.Success)
	assert.Contains(t, fbResult.Error, "interactive browser session")
}

func TestOrchestrator_Publish_SkipsTerminalPlatforms(t *testing.T) {
	t.Parallel()

	l := unpublishedListing()
	l.Ebay = domain.PlatformState{
		Status:     domain.StatusActive,
		ExternalID: "110555123456",
		URL:        "https://www.ebay.com/itm/110555123456",
	}

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(l, nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").
		Return(bothCredentials()[:1], nil)

	ebay := &fakeAdapter{platform: domain.PlatformEbay}
	o := publish.New(mockStore, []marketplace.Adapter{ebay})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err)

	// The active platform is reported as-is without a remote call, so
	// a redundant publish never downgrades it.
	assert.Zero(t, ebay.calls)
	got := result.Platforms[domain.PlatformEbay]
	assert.True(t, got.Success)
	assert.Equal(t, "110555123456", got.ExternalID)
}

func TestOrchestrator_Publish_ReattemptsErroredPlatform(t *testing.T) {
	t.Parallel()

	l := unpublishedListing()
	l.Ebay = domain.PlatformState{Status: domain.StatusError, Error: "first try failed"}

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(l, nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").
		Return(bothCredentials()[:1], nil)
	mockStore.EXPECT().
		MarkPlatformActive(mock.Anything, "l-1", domain.PlatformEbay, "ext-2", "https://x").
		Return(nil)

	ebay := &fakeAdapter{
		platform:  domain.PlatformEbay,
		placement: &marketplace.Placement{ExternalID: "ext-2", URL: "https://x"},
	}
	o := publish.New(mockStore, []marketplace.Adapter{ebay})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ebay.calls)
	assert.True(t, result.Platforms[domain.PlatformEbay].Success)
}

func TestOrchestrator_Publish_OrphanedSKUSurfacedInError(t *testing.T) {
	t.Parallel()

	var recorded string
	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").
		Return(bothCredentials()[:1], nil)
	mockStore.EXPECT().
		MarkPlatformError(mock.Anything, "l-1", domain.PlatformEbay, mock.Anything).
		Run(func(_ context.Context, _ string, _ domain.Platform, message string) {
			recorded = message
		}).
		Return(nil)

	ebay := &fakeAdapter{
		platform: domain.PlatformEbay,
		err: &marketplace.AdapterError{
			Platform:  domain.PlatformEbay,
			Message:   "creating offer: eBay API error (status 400): offer rejected",
			OrphanSKU: "CLX-orphan",
		},
	}
	o := publish.New(mockStore, []marketplace.Adapter{ebay})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err)

	got := result.Platforms[domain.PlatformEbay]
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "sku=CLX-orphan")
	assert.Contains(t, recorded, "sku=CLX-orphan")
}

func TestOrchestrator_Publish_LateFailureNeverDowngrades(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").
		Return(bothCredentials()[:1], nil)
	// The guarded write reports the no-op: a concurrent publish already
	// went live, so the failure must not be recorded.
	mockStore.EXPECT().
		MarkPlatformError(mock.Anything, "l-1", domain.PlatformEbay, mock.Anything).
		Return(store.ErrNoRowsUpdated)

	ebay := &fakeAdapter{
		platform: domain.PlatformEbay,
		err:      &marketplace.AdapterError{Platform: domain.PlatformEbay, Message: "timeout"},
	}
	o := publish.New(mockStore, []marketplace.Adapter{ebay})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err)
	assert.False(t, result.Platforms[domain.PlatformEbay].Success)
}

func TestOrchestrator_Publish_CancellationStopsNewAttempts(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var writeCtxErr error
	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").Return(bothCredentials(), nil)
	mockStore.EXPECT().
		MarkPlatformActive(mock.Anything, "l-1", domain.PlatformEbay, "ext-1", "https://x").
		Run(func(ctx context.Context, _ string, _ domain.Platform, _, _ string) {
			writeCtxErr = ctx.Err()
		}).
		Return(nil)

	// The caller goes away while the first attempt is in flight.
	ebay := &fakeAdapter{
		platform:  domain.PlatformEbay,
		placement: &marketplace.Placement{ExternalID: "ext-1", URL: "https://x"},
		onPublish: cancel,
	}
	facebook := &fakeAdapter{platform: domain.PlatformFacebook}

	o := publish.New(mockStore, []marketplace.Adapter{ebay, facebook})

	result, err := o.Publish(ctx, "u-1", "l-1")
	require.NoError(t, err)

	// The in-flight attempt completed and its status write landed on a
	// context untouched by the cancellation.
	assert.Equal(t, 1, ebay.calls)
	assert.NoError(t, writeCtxErr)
	assert.True(t, result.Platforms[domain.PlatformEbay].Success)

	// No further attempt starts once the caller has cancelled.
	assert.Zero(t, facebook.calls)
	assert.NotContains(t, result.Platforms, domain.PlatformFacebook)
}

func TestOrchestrator_Publish_DuplicateActiveWriteIsBenign(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").
		Return(bothCredentials()[:1], nil)
	// A concurrent publish already marked the platform active; the
	// guarded write reports the no-op and the row keeps its placement.
	mockStore.EXPECT().
		MarkPlatformActive(mock.Anything, "l-1", domain.PlatformEbay, "ext-1", "https://x").
		Return(store.ErrNoRowsUpdated)

	ebay := &fakeAdapter{
		platform:  domain.PlatformEbay,
		placement: &marketplace.Placement{ExternalID: "ext-1", URL: "https://x"},
	}
	o := publish.New(mockStore, []marketplace.Adapter{ebay})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err)
	assert.True(t, result.Platforms[domain.PlatformEbay].Success)
}

func TestOrchestrator_Publish_SkipsPlatformsWithoutCredential(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().GetListing(mock.Anything, "l-1").Return(unpublishedListing(), nil)
	mockStore.EXPECT().ListCredentials(mock.Anything, "u-1").
		Return(bothCredentials()[:1], nil) // eBay only
	mockStore.EXPECT().
		MarkPlatformActive(mock.Anything, "l-1", domain.PlatformEbay, "ext-1", "https://x").
		Return(nil)

	ebay := &fakeAdapter{
		platform:  domain.PlatformEbay,
		placement: &marketplace.Placement{ExternalID: "ext-1", URL: "https://x"},
	}
	facebook := &fakeAdapter{platform: domain.PlatformFacebook}

	o := publish.New(mockStore, []marketplace.Adapter{ebay, facebook})

	result, err := o.Publish(context.Background(), "u-1", "l-1")
	require.NoError(t, err)

	assert.Zero(t, facebook.calls)
	assert.NotContains(t, result.Platforms, domain.PlatformFacebook)
	assert.Contains(t, result.Platforms, domain.PlatformEbay)
}
