package authenticator

import (
	"context"
	"time"
)

// TokenEngine signs and verifies JWT tokens carrying an arbitrary object
// in their claims.
type TokenEngine interface {
	Generate(expiration time.Duration, obj any) (string, error)
	Verify(token string, obj any) error
}

// OAuth2User is the user identity returned by the OAuth2 provider.
type OAuth2User struct {
	ID       int64
	Nickname string
}

type IOAuth2Service interface {
	Service() string

	// AuthCodeURL returns the provider authorization page to redirect the
	// user to.
	AuthCodeURL(state string) string

	// VerifyAuthorizationCode exchanges the callback code for an access
	// token and fetches the user identity with it.
	VerifyAuthorizationCode(ctx context.Context, code string) (OAuth2User, error)
}
