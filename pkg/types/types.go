// Package domain defines the core business types for crosslist-pro.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Platform identifies a marketplace a listing can be published to.
type Platform string

// Platform constants.
const (
	PlatformEbay     Platform = "ebay"
	PlatformFacebook Platform = "facebook"
)

// Platforms lists every marketplace the service knows about, in the
// order publish attempts are made.
var Platforms = []Platform{PlatformEbay, PlatformFacebook}

// Condition represents the normalized item condition of a listing.
type Condition string

// Condition constants.
const (
	ConditionNew           Condition = "NEW"
	ConditionLikeNew       Condition = "LIKE_NEW"
	ConditionUsedExcellent Condition = "USED_EXCELLENT"
	ConditionUsedGood      Condition = "USED_GOOD"
	ConditionAcceptable    Condition = "ACCEPTABLE"
)

// Status represents the per-platform lifecycle state of a listing.
type Status string

// Status constants. Transitions only move forward:
// unpublished -> active -> sold, with error reachable from
// unpublished and active. An active or sold platform is never
// downgraded by a later publish attempt.
const (
	StatusUnpublished Status = "unpublished"
	StatusActive      Status = "active"
	StatusError       Status = "error"
	StatusSold        Status = "sold"
)

// Terminal reports whether a platform in this status should be skipped
// by subsequent publish attempts.
func (s Status) Terminal() bool {
	return s == StatusActive || s == StatusSold
}

// PlatformState holds one marketplace's view of a listing.
type PlatformState struct {
	Status     Status `json:"status"`
	ExternalID string `json:"external_id,omitempty"`
	URL        string `json:"url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Listing represents a product listing owned by a single user.
type Listing struct {
	ID          string    `json:"id"          db:"id"`
	UserID      string    `json:"user_id"     db:"user_id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price"       db:"price"`
	Currency    string    `json:"currency"    db:"currency"`
	Category    string    `json:"category"    db:"category"`
	Condition   Condition `json:"condition"   db:"condition"`
	Images      []string  `json:"images"      db:"images"`
	Quantity    int       `json:"quantity"    db:"quantity"`

	// Per-platform publish state.
	Ebay     PlatformState `json:"ebay"`
	Facebook PlatformState `json:"facebook"`

	SoldAt    *time.Time `json:"sold_at,omitempty" db:"sold_at"`
	CreatedAt time.Time  `json:"created_at"        db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"        db:"updated_at"`
}

// State returns the platform state for p. Unknown platforms report
// unpublished.
func (l *Listing) State(p Platform) PlatformState {
	switch p {
	case PlatformEbay:
		return l.Ebay
	case PlatformFacebook:
		return l.Facebook
	default:
		return PlatformState{Status: StatusUnpublished}
	}
}

// MaxTitleLen is the longest title any marketplace accepts (eBay caps
// titles at 80 characters).
const MaxTitleLen = 80

// MaxImages is the most images any marketplace accepts per listing.
const MaxImages = 12

// Snapshot is the read-only projection of a listing's publishable
// fields handed to marketplace adapters. Building a snapshot enforces
// the cross-platform limits: title truncated to MaxTitleLen, images
// filtered to fully-qualified URLs and capped at MaxImages, quantity
// defaulted to 1.
type Snapshot struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	Category    string
	Condition   Condition
	Images      []string
	Quantity    int
}

// NewSnapshot builds a Snapshot from a listing.
func NewSnapshot(l *Listing) Snapshot {
	s := Snapshot{
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Currency:    l.Currency,
		Category:    l.Category,
		Condition:   l.Condition,
		Images:      publishableImages(l.Images),
		Quantity:    l.Quantity,
	}
	if utf8.RuneCountInString(s.Title) > MaxTitleLen {
		runes := []rune(s.Title)
		s.Title = string(runes[:MaxTitleLen])
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
	if s.Quantity <= 0 {
		s.Quantity = 1
	}
	return s
}

// publishableImages drops client-local blob references and anything
// else that is not a fully-qualified URL, then caps at MaxImages.
func publishableImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, u := range images {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			continue
		}
		out = append(out, u)
		if len(out) == MaxImages {
			break
		}
	}
	return out
}

// Credential holds one user's OAuth tokens for one marketplace.
type Credential struct {
	ID           string     `json:"id"                   db:"id"`
	UserID       string     `json:"user_id"              db:"user_id"`
	Platform     Platform   `json:"platform"             db:"platform"`
	AccessToken  string     `json:"-"                    db:"access_token"`
	RefreshToken string     `json:"-"                    db:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"           db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"           db:"updated_at"`
}

// Expired reports whether the access token is past its expiry at time t.
func (c *Credential) Expired(t time.Time) bool {
	return c.ExpiresAt != nil && t.After(*c.ExpiresAt)
}

// PlatformResult is one marketplace's outcome within a publish attempt.
type PlatformResult struct {
	Success    bool   `json:"success"`
	ExternalID string `json:"external_id,omitempty"`
	URL        string `json:"url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PublishResult aggregates per-platform outcomes of a single publish
// call. The call as a whole succeeds when the listing loaded and
// publishing was attempted; callers inspect Platforms for the truth.
type PublishResult struct {
	ListingID string                      `json:"listing_id"`
	Platforms map[Platform]PlatformResult `json:"platforms"`
}

// User represents a registered seller.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Name         string    `json:"name"       db:"name"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
