package client

import "context"

type authResponse struct {
	UserID string `json:"user_id"`
}

// Register creates an account and returns the new user's id.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	var resp authResponse
	if err := c.post(ctx, "/api/v1/auth/register", body, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Login verifies credentials and returns the user's id.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp authResponse
	if err := c.post(ctx, "/api/v1/auth/login", body, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}
