// Package publish implements the cross-platform publish pipeline: load
// a listing, attempt each connected marketplace independently, persist
// per-platform status as each attempt finishes, and aggregate the
// outcomes for the caller.
package publish

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Katos24/crosslist-pro/internal/marketplace"
	"github.com/Katos24/crosslist-pro/internal/metrics"
	"github.com/Katos24/crosslist-pro/internal/store"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Failure modes that abort the whole call before any platform is
// attempted.
var (
	// ErrNotFound means the listing does not exist.
	ErrNotFound = errors.New("listing not found")

	// ErrNotOwner means the caller does not own the listing.
	ErrNotOwner = errors.New("listing not owned by caller")

	// ErrNoCredentials means the user has no marketplace connected at
	// all, so there is nothing to publish to.
	ErrNoCredentials = errors.New("no marketplace credentials configured")
)

const defaultAttemptTimeout = 30 * time.Second

// Orchestrator coordinates per-platform publish attempts. Adapter
// invocations are independent: one platform failing never prevents or
// rolls back the others, and each outcome is written to the store
// immediately so a crash mid-call loses at most the in-flight attempt.
type Orchestrator struct {
	store    store.Store
	adapters map[domain.Platform]marketplace.Adapter
	order    []domain.Platform
	logger   *slog.Logger
	timeout  time.Duration
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithAttemptTimeout bounds each adapter call. There is no retry: a
// timed-out attempt is reported as that platform's failure.
func WithAttemptTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = d
	}
}

// New creates an Orchestrator over the given adapters. Attempt order
// follows the adapter slice order.
func New(s store.Store, adapters []marketplace.Adapter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    s,
		adapters: make(map[domain.Platform]marketplace.Adapter, len(adapters)),
		logger:   slog.Default(),
		timeout:  defaultAttemptTimeout,
	}
	for _, a := range adapters {
		o.adapters[a.Platform()] = a
		o.order = append(o.order, a.Platform())
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Publish loads the listing and attempts every platform the user has a
// stored credential for. The returned result maps platform to outcome;
// the call itself succeeds whenever the listing loaded and publishing
// was attempted, even if every platform failed.
func (o *Orchestrator) Publish(
	ctx context.Context,
	userID, listingID string,
) (*domain.PublishResult, error) {
	l, err := o.store.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if l.UserID != userID {
		return nil, ErrNotOwner
	}

	creds, err := o.store.ListCredentials(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(creds) == 0 {
		return nil, ErrNoCredentials
	}

	byPlatform := make(map[domain.Platform]*domain.Credential, len(creds))
	for i := range creds {
		byPlatform[creds[i].Platform] = &creds[i]
	}

	snap := domain.NewSnapshot(l)
	result := &domain.PublishResult{
		ListingID: listingID,
		Platforms: make(map[domain.Platform]domain.PlatformResult),
	}

	for _, p := range o.order {
		cred, connected := byPlatform[p]
		if !connected {
			continue
		}

		state := l.State(p)
		if state.Status.Terminal() {
			// Already live (or sold): report the existing placement
			// without touching the marketplace again.
			result.Platforms[p] = domain.PlatformResult{
				Success:    true,
				ExternalID: state.ExternalID,
				URL:        state.URL,
			}
			continue
		}

		// Once the caller cancels, stop issuing new attempts. Attempts
		// already issued run to completion below.
		if ctx.Err() != nil {
			o.logger.Warn("publish cancelled before attempting platform",
				"listing_id", listingID, "platform", p)
			break
		}

		result.Platforms[p] = o.attempt(ctx, l.ID, p, snap, cred)
	}

	return result, nil
}

// attempt publishes to one platform and durably records the outcome.
// The attempt context is detached from the caller's cancellation so an
// in-flight remote call completes and its status write lands even when
// the original request goes away; only the timeout bounds it.
func (o *Orchestrator) attempt(
	ctx context.Context,
	listingID string,
	p domain.Platform,
	snap domain.Snapshot,
	cred *domain.Credential,
) domain.PlatformResult {
	detached := context.WithoutCancel(ctx)
	attemptCtx, cancel := context.WithTimeout(detached, o.timeout)
	defer cancel()

	start := time.Now()
	placement, err := o.adapters[p].Publish(attemptCtx, snap, cred)
	metrics.PublishDuration.WithLabelValues(string(p)).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.PublishAttemptsTotal.WithLabelValues(string(p), "error").Inc()

		msg := err.Error()
		var adapterErr *marketplace.AdapterError
		if errors.As(err, &adapterErr) {
			msg = adapterErr.Error()
			if adapterErr.OrphanSKU != "" {
				o.logger.Warn("publish left orphaned inventory item",
					"listing_id", listingID, "platform", p, "sku", adapterErr.OrphanSKU)
			}
		}

		o.logger.Error("publish attempt failed",
			"listing_id", listingID, "platform", p, "error", msg)

		if werr := o.store.MarkPlatformError(detached, listingID, p, msg); werr != nil &&
			!errors.Is(werr, store.ErrNoRowsUpdated) {
			o.logger.Error("recording publish failure",
				"listing_id", listingID, "platform", p, "error", werr)
		}

		return domain.PlatformResult{Error: msg}
	}

	metrics.PublishAttemptsTotal.WithLabelValues(string(p), "success").Inc()
	o.logger.Info("publish attempt succeeded",
		"listing_id", listingID, "platform", p, "external_id", placement.ExternalID)

	if werr := o.store.MarkPlatformActive(detached, listingID, p,
		placement.ExternalID, placement.URL); werr != nil &&
		!errors.Is(werr, store.ErrNoRowsUpdated) {
		o.logger.Error("recording publish success",
			"listing_id", listingID, "platform", p, "error", werr)
	}

	return domain.PlatformResult{
		Success:    true,
		ExternalID: placement.ExternalID,
		URL:        placement.URL,
	}
}
