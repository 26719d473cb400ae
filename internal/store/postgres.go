package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

const defaultPoolSize = 10

// ErrNoRowsUpdated is returned by the guarded per-platform status
// writes when the WHERE clause matched nothing, i.e. the listing is
// gone or already in a state the write must not touch.
var ErrNoRowsUpdated = errors.New("no rows updated")

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateUser inserts a new user.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
	}

	return s.pool.QueryRow(ctx, queryCreateUser, args).Scan(
		&u.ID, &u.CreatedAt, &u.UpdatedAt,
	)
}

// GetUserByEmail retrieves a user by email address.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUserByEmail, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByID retrieves a user by its internal UUID.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUserByID, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateListing inserts a new listing. Every platform starts unpublished.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"user_id":     l.UserID,
		"title":       l.Title,
		"description": l.Description,
		"price":       l.Price,
		"currency":    l.Currency,
		"category":    l.Category,
		"condition":   string(l.Condition),
		"images":      l.Images,
		"quantity":    l.Quantity,
	}

	if err := s.pool.QueryRow(ctx, queryCreateListing, args).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return err
	}

	l.Ebay = domain.PlatformState{Status: domain.StatusUnpublished}
	l.Facebook = domain.PlatformState{Status: domain.StatusUnpublished}
	return nil
}

// GetListing retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings returns one user's listings, newest first, with total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]domain.Listing, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, queryCountListings, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryListListings, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// DeleteListing removes a listing by its ID.
func (s *PostgresStore) DeleteListing(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteListing, id)
	if err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkListingSold records the sale time and closes every active platform.
func (s *PostgresStore) MarkListingSold(ctx context.Context, id string, at time.Time) error {
	tag, err := s.pool.Exec(ctx, queryMarkListingSold, id, at)
	if err != nil {
		return fmt.Errorf("marking listing sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkPlatformActive records a successful publish for one platform.
// The write is skipped if the platform is already sold.
func (s *PostgresStore) MarkPlatformActive(
	ctx context.Context,
	listingID string,
	p domain.Platform,
	externalID, url string,
) error {
	prefix, err := platformPrefix(p)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(queryMarkPlatformActiveTpl, prefix)
	tag, err := s.pool.Exec(ctx, query, listingID, externalID, url)
	if err != nil {
		return fmt.Errorf("marking %s active: %w", p, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsUpdated
	}
	return nil
}

// MarkPlatformError records a failed publish attempt for one platform.
// The write is skipped if the platform is already active or sold, so a
// late failure never downgrades a listing that went live.
func (s *PostgresStore) MarkPlatformError(
	ctx context.Context,
	listingID string,
	p domain.Platform,
	message string,
) error {
	prefix, err := platformPrefix(p)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(queryMarkPlatformErrorTpl, prefix)
	tag, err := s.pool.Exec(ctx, query, listingID, message)
	if err != nil {
		return fmt.Errorf("marking %s error: %w", p, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsUpdated
	}
	return nil
}

// UpsertCredential inserts or replaces a user's tokens for one platform.
func (s *PostgresStore) UpsertCredential(ctx context.Context, c *domain.Credential) error {
	args := pgx.NamedArgs{
		"user_id":       c.UserID,
		"platform":      string(c.Platform),
		"access_token":  c.AccessToken,
		"refresh_token": c.RefreshToken,
		"expires_at":    c.ExpiresAt,
	}

	return s.pool.QueryRow(ctx, queryUpsertCredential, args).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	)
}

// GetCredential retrieves one user's tokens for one platform.
func (s *PostgresStore) GetCredential(
	ctx context.Context,
	userID string,
	p domain.Platform,
) (*domain.Credential, error) {
	c := &domain.Credential{}
	err := scanCredential(s.pool.QueryRow(ctx, queryGetCredential, userID, string(p)), c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCredentials returns all of a user's marketplace credentials.
func (s *PostgresStore) ListCredentials(
	ctx context.Context,
	userID string,
) ([]domain.Credential, error) {
	return s.queryCredentials(ctx, queryListCredentials, userID)
}

// ListExpiringCredentials returns refreshable credentials expiring
// within the given window.
func (s *PostgresStore) ListExpiringCredentials(
	ctx context.Context,
	within time.Duration,
) ([]domain.Credential, error) {
	cutoff := time.Now().Add(within)
	return s.queryCredentials(ctx, queryListExpiringCredentials, cutoff)
}

// queryCredentials is a helper for credential queries.
func (s *PostgresStore) queryCredentials(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Credential, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		var c domain.Credential
		if err := scanCredential(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}
		creds = append(creds, c)
	}

	return creds, rows.Err()
}

// platformPrefix maps a platform to its listings column prefix. Only
// known platforms are accepted — the prefix is interpolated into SQL.
func platformPrefix(p domain.Platform) (string, error) {
	switch p {
	case domain.PlatformEbay:
		return "ebay", nil
	case domain.PlatformFacebook:
		return "fb", nil
	default:
		return "", fmt.Errorf("unknown platform %q", p)
	}
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.UserID, &l.Title, &l.Description, &l.Price, &l.Currency,
		&l.Category, &l.Condition, &l.Images, &l.Quantity,
		&l.Ebay.Status, &l.Ebay.ExternalID, &l.Ebay.URL, &l.Ebay.Error,
		&l.Facebook.Status, &l.Facebook.ExternalID, &l.Facebook.URL, &l.Facebook.Error,
		&l.SoldAt, &l.CreatedAt, &l.UpdatedAt,
	)
}

// scanCredential scans a full credential row.
func scanCredential(row scannable, c *domain.Credential) error {
	return row.Scan(
		&c.ID, &c.UserID, &c.Platform, &c.AccessToken, &c.RefreshToken,
		&c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	)
}
