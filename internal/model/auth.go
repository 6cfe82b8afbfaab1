package model

import (
	"context"
	"net/http"
	"time"

	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

// Access Token and Refresh Token
type AccessToken struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}

type RefreshToken struct {
	Family  string
	Counter uint64
}

// Kakao Login
type LoginRequest struct{}

type LoginResponse struct {
	RedirectURL string `json:"-"`
	State       string `json:"-"`
}

func (r LoginResponse) RedirectInfo() (int, string) {
	return http.StatusTemporaryRedirect, r.RedirectURL
}

func (r LoginResponse) SessionInfo() map[string]any {
	return map[string]any{"state": r.State}
}

// OAuth2 Callback
type OAuth2CallbackRequest struct {
	State string `form:"state"`
	Code  string `form:"code"`
}

type OAuth2CallbackResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r OAuth2CallbackResponse) CookieInfo(ctx context.Context) []http.Cookie {
	cfg := xcontext.Configs(ctx)
	return []http.Cookie{
		{
			Name:     cfg.Auth.AccessTokenName,
			Value:    r.AccessToken,
			Path:     "/",
			Expires:  time.Now().Add(cfg.Auth.AccessToken.Expiration.Duration),
			Secure:   true,
			HttpOnly: false,
		},
	}
}

// Refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
