// Package facebook is the Facebook Marketplace adapter. Facebook has no
// public listing API; the only way to post is to drive a logged-in
// browser session, which cannot run inside this service. The adapter
// therefore reports every publish attempt as unsupported.
package facebook

import (
	"context"

	"github.com/Katos24/crosslist-pro/internal/marketplace"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

const unsupportedMessage = "platform requires an interactive browser session, unsupported in this environment"

// Adapter implements marketplace.Adapter for Facebook Marketplace.
type Adapter struct{}

// New creates the Facebook adapter.
func New() *Adapter {
	return &Adapter{}
}

// Platform identifies this adapter.
func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformFacebook
}

// Publish always fails with an AdapterError explaining why.
func (a *Adapter) Publish(
	_ context.Context,
	_ domain.Snapshot,
	_ *domain.Credential,
) (*marketplace.Placement, error) {
	return nil, &marketplace.AdapterError{
		Platform: domain.PlatformFacebook,
		Message:  unsupportedMessage,
	}
}
