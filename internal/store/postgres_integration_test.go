//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Katos24/crosslist-pro/internal/store"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("clx_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func createTestUser(t *testing.T, s *store.PostgresStore, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:         "Test Seller",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func testListing(userID string) *domain.Listing {
	return &domain.Listing{
		UserID:      userID,
		Title:       "Fender Stratocaster Neck Maple",
		Description: "Lightly used, straight, no fret wear.",
		Price:       249.99,
		Currency:    "USD",
		Category:    "Guitar Parts",
		Condition:   domain.ConditionUsedExcellent,
		Images:      []string{"https://img.example.com/neck-front.jpg"},
		Quantity:    1,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_Users(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("create and fetch", func(t *testing.T) {
		u := createTestUser(t, s, "seller@example.com")
		assert.NotEmpty(t, u.ID)

		byEmail, err := s.GetUserByEmail(ctx, "seller@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		byID, err := s.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "seller@example.com", byID.Email)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		createTestUser(t, s, "dup@example.com")
		err := s.CreateUser(ctx, &domain.User{
			Name: "Other", Email: "dup@example.com", PasswordHash: "x",
		})
		require.Error(t, err)
	})
}

func TestPostgresStore_Listings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	u := createTestUser(t, s, "listings@example.com")

	t.Run("create starts unpublished everywhere", func(t *testing.T) {
		l := testListing(u.ID)
		require.NoError(t, s.CreateListing(ctx, l))
		assert.NotEmpty(t, l.ID)

		got, err := s.GetListing(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnpublished, got.Ebay.Status)
		assert.Equal(t, domain.StatusUnpublished, got.Facebook.Status)
		assert.Nil(t, got.SoldAt)
	})

	t.Run("list newest first with total", func(t *testing.T) {
		owner := createTestUser(t, s, "pager@example.com")
		for range 3 {
			require.NoError(t, s.CreateListing(ctx, testListing(owner.ID)))
		}

		page, total, err := s.ListListings(ctx, owner.ID, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, page, 2)
	})

	t.Run("delete missing returns no rows", func(t *testing.T) {
		err := s.DeleteListing(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestPostgresStore_PlatformStatus(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	u := createTestUser(t, s, "status@example.com")

	t.Run("active records placement and clears error", func(t *testing.T) {
		l := testListing(u.ID)
		require.NoError(t, s.CreateListing(ctx, l))
		require.NoError(t, s.MarkPlatformError(ctx, l.ID, domain.PlatformEbay, "first try failed"))

		require.NoError(t, s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay,
			"offer-123", "https://www.ebay.com/itm/offer-123"))

		got, err := s.GetListing(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, got.Ebay.Status)
		assert.Equal(t, "offer-123", got.Ebay.ExternalID)
		assert.Empty(t, got.Ebay.Error)
	})

	t.Run("error never downgrades active", func(t *testing.T) {
		l := testListing(u.ID)
		require.NoError(t, s.CreateListing(ctx, l))
		require.NoError(t, s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay, "ext-1", "https://x"))

		err := s.MarkPlatformError(ctx, l.ID, domain.PlatformEbay, "late failure")
		assert.ErrorIs(t, err, store.ErrNoRowsUpdated)

		got, err := s.GetListing(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, got.Ebay.Status)
	})

	t.Run("second activation never overwrites the live placement", func(t *testing.T) {
		l := testListing(u.ID)
		require.NoError(t, s.CreateListing(ctx, l))
		require.NoError(t, s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay,
			"ext-first", "https://www.ebay.com/itm/ext-first"))

		err := s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay,
			"ext-second", "https://www.ebay.com/itm/ext-second")
		assert.ErrorIs(t, err, store.ErrNoRowsUpdated)

		got, err := s.GetListing(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, got.Ebay.Status)
		assert.Equal(t, "ext-first", got.Ebay.ExternalID)
		assert.Equal(t, "https://www.ebay.com/itm/ext-first", got.Ebay.URL)
	})

	t.Run("platforms are independent", func(t *testing.T) {
		l := testListing(u.ID)
		require.NoError(t, s.CreateListing(ctx, l))
		require.NoError(t, s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay, "ext-2", "https://x"))
		require.NoError(t, s.MarkPlatformError(ctx, l.ID, domain.PlatformFacebook, "unsupported"))

		got, err := s.GetListing(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, got.Ebay.Status)
		assert.Equal(t, domain.StatusError, got.Facebook.Status)
		assert.Equal(t, "unsupported", got.Facebook.Error)
	})

	t.Run("mark sold closes active platforms only", func(t *testing.T) {
		l := testListing(u.ID)
		require.NoError(t, s.CreateListing(ctx, l))
		require.NoError(t, s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay, "ext-3", "https://x"))

		require.NoError(t, s.MarkListingSold(ctx, l.ID, time.Now()))

		got, err := s.GetListing(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSold, got.Ebay.Status)
		assert.Equal(t, domain.StatusUnpublished, got.Facebook.Status)
		assert.NotNil(t, got.SoldAt)

		// Sold is final: neither write touches it.
		assert.ErrorIs(t,
			s.MarkPlatformActive(ctx, l.ID, domain.PlatformEbay, "ext-4", "https://y"),
			store.ErrNoRowsUpdated)
		assert.ErrorIs(t,
			s.MarkPlatformError(ctx, l.ID, domain.PlatformEbay, "nope"),
			store.ErrNoRowsUpdated)
	})
}

func TestPostgresStore_Credentials(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	u := createTestUser(t, s, "creds@example.com")

	t.Run("upsert replaces tokens", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Microsecond)
		c := &domain.Credential{
			UserID:       u.ID,
			Platform:     domain.PlatformEbay,
			AccessToken:  "tok-1",
			RefreshToken: "ref-1",
			ExpiresAt:    &exp,
		}
		require.NoError(t, s.UpsertCredential(ctx, c))
		firstID := c.ID

		c2 := &domain.Credential{
			UserID:      u.ID,
			Platform:    domain.PlatformEbay,
			AccessToken: "tok-2",
		}
		require.NoError(t, s.UpsertCredential(ctx, c2))
		assert.Equal(t, firstID, c2.ID)

		got, err := s.GetCredential(ctx, u.ID, domain.PlatformEbay)
		require.NoError(t, err)
		assert.Equal(t, "tok-2", got.AccessToken)
	})

	t.Run("expiring sweep finds refreshable tokens", func(t *testing.T) {
		owner := createTestUser(t, s, "sweep@example.com")
		soon := time.Now().Add(10 * time.Minute)
		require.NoError(t, s.UpsertCredential(ctx, &domain.Credential{
			UserID: owner.ID, Platform: domain.PlatformEbay,
			AccessToken: "tok", RefreshToken: "ref", ExpiresAt: &soon,
		}))

		creds, err := s.ListExpiringCredentials(ctx, time.Hour)
		require.NoError(t, err)

		var found bool
		for _, c := range creds {
			if c.UserID == owner.ID {
				found = true
			}
		}
		assert.True(t, found)
	})
}
