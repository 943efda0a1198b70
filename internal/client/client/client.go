package client

import (
	"context"

	"github.com/ifti227i/RideShareX/internal/client/models"
)

// TokenSource supplies the bearer token for authenticated calls and
// clears the session when the server rejects it.
type TokenSource interface {
	Token(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Client interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Register(ctx context.Context, username, email, password string) error
	GetUser(ctx context.Context, id models.ID) (models.User, error)
	UpdateUser(ctx context.Context, id models.ID, update models.ProfileUpdate) (models.User, error)
	AvailableRides(ctx context.Context) ([]models.Rider, error)
	Ping(ctx context.Context) error
	OAuthURL(provider string) string
}
