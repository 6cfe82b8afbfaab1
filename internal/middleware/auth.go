package middleware

import (
	"context"
	"strings"

	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/router"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

// AuthVerifier resolves the requesting user from the access token and
// stores the user id into the context.
type AuthVerifier struct {
	useAccessToken bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (a *AuthVerifier) WithAccessToken() *AuthVerifier {
	a.useAccessToken = true
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if a.useAccessToken {
			token := getAccessToken(ctx)
			if token != "" {
				var info model.AccessToken
				if err := xcontext.TokenEngine(ctx).Verify(token, &info); err == nil {
					return xcontext.WithRequestUserID(ctx, info.ID), nil
				}

				xcontext.Logger(ctx).Debugf("Cannot verify the access token")
			}
		}

		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}
}

// getAccessToken reads the bearer token from the Authorization header,
// falling back to the access token cookie.
func getAccessToken(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)

	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessTokenName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	return cookie.Value
}
