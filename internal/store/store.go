// Package store defines the datastore abstraction for crosslist-pro.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Store defines all data access operations for crosslist-pro.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// Listings
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, userID string, limit, offset int) ([]domain.Listing, int, error)
	DeleteListing(ctx context.Context, id string) error
	MarkListingSold(ctx context.Context, id string, at time.Time) error

	// Per-platform publish state. Both writes are guarded so a stale or
	// duplicate publish attempt can never downgrade an active or sold
	// platform, nor overwrite a live placement.
	MarkPlatformActive(ctx context.Context, listingID string, p domain.Platform, externalID, url string) error
	MarkPlatformError(ctx context.Context, listingID string, p domain.Platform, message string) error

	// Marketplace credentials
	UpsertCredential(ctx context.Context, c *domain.Credential) error
	GetCredential(ctx context.Context, userID string, p domain.Platform) (*domain.Credential, error)
	ListCredentials(ctx context.Context, userID string) ([]domain.Credential, error)
	ListExpiringCredentials(ctx context.Context, within time.Duration) ([]domain.Credential, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
