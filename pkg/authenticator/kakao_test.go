package authenticator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamzalab/lotto-backend/config"
	"github.com/stretchr/testify/require"
)

func Test_kakaoService_AuthCodeURL(t *testing.T) {
	service := NewKakaoService(config.OAuth2Configs{
		Name:        "kakao",
		ClientID:    "client-id",
		RedirectURL: "http://localhost:8080/oauth2/callback",
	}, nil)

	require.Equal(t, "kakao", service.Service())

	url := service.AuthCodeURL("some-state")
	require.Contains(t, url, kakaoAuthURL)
	require.Contains(t, url, "client-id")
	require.Contains(t, url, "some-state")
}

func Test_kakaoService_fetchUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/user/me", r.URL.Path)
		require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id": 1001, "properties": {"nickname": "gamza"}}`))
	}))
	defer server.Close()

	service := &kakaoService{apiURL: server.URL, client: server.Client()}

	user, err := service.fetchUser(context.Background(), "token")
	require.NoError(t, err)
	require.Equal(t, int64(1001), user.ID)
	require.Equal(t, "gamza", user.Nickname)
}

func Test_kakaoService_fetchUser_badStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := &kakaoService{apiURL: server.URL, client: server.Client()}

	_, err := service.fetchUser(context.Background(), "token")
	require.Error(t, err)
}
