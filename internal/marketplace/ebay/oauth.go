package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAuthURL  = "https://auth.ebay.com/oauth2/authorize"
	sellScope       = "https://api.ebay.com/oauth/api_scope/sell.inventory"
)

// OAuth handles the eBay user authorization-code flow: building the
// consent URL, exchanging the callback code for tokens, and refreshing
// tokens near expiry. Thread-safe; it holds no mutable state.
type OAuth struct {
	appID       string
	certID      string
	redirectURI string // the RuName registered with eBay
	tokenURL    string
	authURL     string
	scopes      string
	client      *http.Client
	nowFunc     func() time.Time
}

// OAuthOption configures the OAuth flow.
type OAuthOption func(*OAuth)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(o *OAuth) {
		o.tokenURL = u
	}
}

// WithAuthURL overrides the default eBay consent page URL.
func WithAuthURL(u string) OAuthOption {
	return func(o *OAuth) {
		o.authURL = u
	}
}

// WithOAuthHTTPClient overrides the default HTTP client.
func WithOAuthHTTPClient(c *http.Client) OAuthOption {
	return func(o *OAuth) {
		o.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(o *OAuth) {
		o.nowFunc = f
	}
}

// NewOAuth creates the eBay OAuth flow for one application.
func NewOAuth(appID, certID, redirectURI string, opts ...OAuthOption) *OAuth {
	o := &OAuth{
		appID:       appID,
		certID:      certID,
		redirectURI: redirectURI,
		tokenURL:    defaultTokenURL,
		authURL:     defaultAuthURL,
		scopes:      sellScope,
		client:      &http.Client{Timeout: 10 * time.Second},
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Token is a minted user token pair.
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthURL returns the consent page URL the user is sent to. The state
// value is round-tripped through eBay back to the callback.
func (o *OAuth) AuthURL(state string) string {
	params := url.Values{
		"client_id":     {o.appID},
		"response_type": {"code"},
		"redirect_uri":  {o.redirectURI},
		"scope":         {o.scopes},
	}
	if state != "" {
		params.Set("state", state)
	}
	return o.authURL + "?" + params.Encode()
}

// Exchange trades an authorization code from the OAuth callback for a
// token pair.
func (o *OAuth) Exchange(ctx context.Context, code string) (*Token, error) {
	return o.requestToken(ctx, url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {o.redirectURI},
	})
}

// Refresh mints a fresh access token from a refresh token. eBay does
// not rotate refresh tokens, so the returned Token carries the one
// passed in.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	t, err := o.requestToken(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"scope":         {o.scopes},
	})
	if err != nil {
		return nil, err
	}
	if t.RefreshToken == "" {
		t.RefreshToken = refreshToken
	}
	return t, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (o *OAuth) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(o.appID + ":" + o.certID),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return nil, fmt.Errorf(
			"token request failed (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			errResp.ErrorDescription,
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	return &Token{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ExpiresAt:    o.nowFunc().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}
