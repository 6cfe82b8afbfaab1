package authenticator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gamzalab/lotto-backend/config"
	"golang.org/x/oauth2"
)

const (
	kakaoAuthURL  = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL = "https://kauth.kakao.com/oauth/token"
	kakaoAPIURL   = "https://kapi.kakao.com"
)

type kakaoService struct {
	name      string
	apiURL    string
	oauth2Cfg oauth2.Config
	client    *http.Client
}

// NewKakaoService creates the Kakao login service. Kakao is plain OAuth2
// with a REST user-info endpoint; there is no OIDC discovery involved. A
// nil client falls back to http.DefaultClient.
func NewKakaoService(cfg config.OAuth2Configs, client *http.Client) IOAuth2Service {
	if client == nil {
		client = http.DefaultClient
	}

	return &kakaoService{
		name:   cfg.Name,
		apiURL: kakaoAPIURL,
		oauth2Cfg: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  kakaoAuthURL,
				TokenURL: kakaoTokenURL,
			},
		},
		client: client,
	}
}

func (s *kakaoService) Service() string {
	return s.name
}

func (s *kakaoService) AuthCodeURL(state string) string {
	return s.oauth2Cfg.AuthCodeURL(state)
}

func (s *kakaoService) VerifyAuthorizationCode(ctx context.Context, code string) (OAuth2User, error) {
	// The oauth2 package picks its http client up from the context.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := s.oauth2Cfg.Exchange(ctx, code)
	if err != nil {
		return OAuth2User{}, err
	}

	return s.fetchUser(ctx, token.AccessToken)
}

// fetchUser resolves the identity behind an access token through the
// /v2/user/me endpoint.
func (s *kakaoService) fetchUser(ctx context.Context, accessToken string) (OAuth2User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"/v2/user/me", nil)
	if err != nil {
		return OAuth2User{}, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return OAuth2User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OAuth2User{}, fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}

	var info struct {
		ID         int64 `json:"id"`
		Properties struct {
			// The nickname is optional in the consent screen.
			Nickname string `json:"nickname"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return OAuth2User{}, err
	}

	if info.ID == 0 {
		return OAuth2User{}, fmt.Errorf("user info response has no id")
	}

	return OAuth2User{ID: info.ID, Nickname: info.Properties.Nickname}, nil
}
