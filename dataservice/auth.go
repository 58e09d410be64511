package dataservice

import (
	"context"
	"fmt"

	"github.com/carlmjohnson/requests"
)

// Auth exposes the authentication endpoints of the data service.
type Auth struct {
	client *Client
}

// User is the authenticated identity resolved from the client's credentials.
type User struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Role     string         `json:"role"`
	Metadata map[string]any `json:"user_metadata,omitempty"`
}

// User resolves the identity behind the client's Authorization credential.
// Fails when the credential is missing, expired, or revoked.
func (a *Auth) User(ctx context.Context) (*User, error) {
	cfg := a.client.cfg

	var user User
	err := requests.
		URL(cfg.BaseURL).
		Path("/auth/v1/user").
		Header("apikey", cfg.APIKey).
		Header("Authorization", cfg.Authorization).
		Client(cfg.HTTPClient).
		ToJSON(&user).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataservice: resolve user: %w", err)
	}
	return &user, nil
}
