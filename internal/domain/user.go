package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const ClientStatusActive = "active"

// Client é o tenant dono das contas de anúncio
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	AccessToken string    `json:"-"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

type Claims struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	ClientSlug string `json:"client_slug"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	AccessToken string `json:"access_token"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Client    *Client   `json:"client"`
}
