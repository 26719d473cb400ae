// Package marketplace defines the adapter contract every marketplace
// integration implements, abstracted behind interfaces for testability.
package marketplace

import (
	"context"
	"fmt"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Placement is the successful outcome of publishing to one platform:
// the remote listing's identifier and public URL.
type Placement struct {
	ExternalID string
	URL        string
}

// Adapter translates a listing snapshot into one marketplace's publish
// protocol. Implementations must not retry internally; a failed attempt
// is reported once and the caller decides what to do.
type Adapter interface {
	Platform() domain.Platform
	Publish(ctx context.Context, snap domain.Snapshot, cred *domain.Credential) (*Placement, error)
}

// AdapterError is a failed publish attempt on one platform. It carries
// the upstream message and, when the eBay sequence died after the
// inventory item was registered, the orphaned SKU so an operator can
// clean it up. There is no automatic rollback.
type AdapterError struct {
	Platform  domain.Platform
	Message   string
	OrphanSKU string
}

func (e *AdapterError) Error() string {
	if e.OrphanSKU != "" {
		return fmt.Sprintf("%s: %s (orphaned inventory item sku=%s)", e.Platform, e.Message, e.OrphanSKU)
	}
	return fmt.Sprintf("%s: %s", e.Platform, e.Message)
}
