// Package tokens keeps stored marketplace credentials fresh. A periodic
// sweep finds credentials nearing expiry that carry a refresh token and
// mints new access tokens before the publish pipeline would hit a 401.
package tokens

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Katos24/crosslist-pro/internal/marketplace/ebay"
	"github.com/Katos24/crosslist-pro/internal/metrics"
	"github.com/Katos24/crosslist-pro/internal/store"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Refresher sweeps expiring credentials on a schedule.
type Refresher struct {
	cron   *cron.Cron
	store  store.Store
	oauth  *ebay.OAuth
	window time.Duration
	log    *slog.Logger
}

// NewRefresher creates a Refresher that runs every interval and
// refreshes credentials expiring within window.
func NewRefresher(
	s store.Store,
	oauth *ebay.OAuth,
	interval, window time.Duration,
	log *slog.Logger,
) (*Refresher, error) {
	c := cron.New()

	r := &Refresher{
		cron:   c,
		store:  s,
		oauth:  oauth,
		window: window,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), r.runSweep); err != nil {
		return nil, err
	}

	return r, nil
}

// Start begins the periodic sweep.
func (r *Refresher) Start() {
	r.log.Info("credential refresher started", "window", r.window)
	r.cron.Start()
}

// Stop gracefully stops the sweep, waiting for a running sweep to finish.
func (r *Refresher) Stop() context.Context {
	r.log.Info("credential refresher stopping")
	return r.cron.Stop()
}

func (r *Refresher) runSweep() {
	if err := r.Sweep(context.Background()); err != nil {
		r.log.Error("credential sweep failed", "error", err)
	}
}

// Sweep refreshes every credential expiring within the window. A
// failure on one credential is logged and does not stop the sweep.
func (r *Refresher) Sweep(ctx context.Context) error {
	creds, err := r.store.ListExpiringCredentials(ctx, r.window)
	if err != nil {
		return err
	}

	for i := range creds {
		c := &creds[i]
		if c.Platform != domain.PlatformEbay {
			// Only eBay issues refresh tokens today.
			continue
		}
		r.refreshOne(ctx, c)
	}

	return nil
}

func (r *Refresher) refreshOne(ctx context.Context, c *domain.Credential) {
	metrics.TokenRefreshTotal.Inc()

	tok, err := r.oauth.Refresh(ctx, c.RefreshToken)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		r.log.Error("refreshing credential",
			"user_id", c.UserID, "platform", c.Platform, "error", err)
		return
	}

	c.AccessToken = tok.AccessToken
	c.RefreshToken = tok.RefreshToken
	c.ExpiresAt = &tok.ExpiresAt

	if err := r.store.UpsertCredential(ctx, c); err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		r.log.Error("storing refreshed credential",
			"user_id", c.UserID, "platform", c.Platform, "error", err)
		return
	}

	r.log.Info("credential refreshed",
		"user_id", c.UserID, "platform", c.Platform, "expires_at", tok.ExpiresAt)
}
